// Package host holds process-wide setup shared by the life front ends.
package host

import (
	"log"
	"os"
	"runtime/debug"
	"sync"
)

var initOnce sync.Once

// Init configures the standard logger for the host process. It is safe to
// call more than once; only the first call has an effect.
func Init() {
	initOnce.Do(func() {
		log.SetPrefix("torus-life: ")
		log.SetFlags(log.LstdFlags | log.Lmsgprefix)
		log.Printf("installing panic reporter (pid %d)", os.Getpid())
	})
}

// ReportPanic logs a recovered panic with its stack and re-raises it. Mains
// defer it directly.
func ReportPanic() {
	if r := recover(); r != nil {
		log.Printf("panic: %v\n%s", r, debug.Stack())
		panic(r)
	}
}

package app

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"torus-life/internal/render"
	"torus-life/pkg/sims/life"
)

func quietLog(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })
}

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg, err := ParseConfig(flag.NewFlagSet("test", flag.ContinueOnError), args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Sim != "life" || cfg.Width != life.DefaultWidth || cfg.Height != life.DefaultHeight {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Fill != string(life.FillPattern) || cfg.Seed != 42 || cfg.TPS <= 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("LIFE_WIDTH", "20")
	t.Setenv("LIFE_HEIGHT", "10")
	t.Setenv("LIFE_FILL", "random")

	cfg := parse(t, "-h", "12", "-paused")
	if cfg.Width != 20 {
		t.Fatalf("width = %d, want env value 20", cfg.Width)
	}
	if cfg.Height != 12 {
		t.Fatalf("height = %d, want flag value 12", cfg.Height)
	}
	if cfg.Fill != "random" || !cfg.Paused {
		t.Fatalf("unexpected config %+v", cfg)
	}
	opts := cfg.SimOptions()
	if opts["w"] != "20" || opts["h"] != "12" || opts["fill"] != "random" {
		t.Fatalf("sim options = %v", opts)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := ParseConfig(fs, []string{"-w", "0", "-fill", "soup", "-scale", "0"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"must be positive", "unknown fill", "scale 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}

	t.Setenv("LIFE_TPS", "fast")
	if _, err := ParseConfig(flag.NewFlagSet("env", flag.ContinueOnError), nil); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected env error, got %v", err)
	}
}

func TestSessionStampsCenteredPattern(t *testing.T) {
	quietLog(t)
	cfg := parse(t, "-w", "7", "-h", "7", "-fill", "dead", "-pattern", "blinker")

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	world := s.Sim().(worldProvider).World()
	for col := uint32(2); col <= 4; col++ {
		if world.Get(3, col) != life.Alive {
			t.Fatalf("blinker cell (3,%d) should be alive", col)
		}
	}
	if world.Population() != 3 {
		t.Fatalf("population = %d, want 3", world.Population())
	}

	s.Step()
	if !s.Toggle(0, 0) {
		t.Fatal("life sim should accept toggles")
	}
	if world.Population() != 4 {
		t.Fatalf("population after toggle = %d, want 4", world.Population())
	}

	if err := s.Reset(7); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if world.Population() != 3 || world.Get(3, 2) != life.Alive || s.Seed() != 7 {
		t.Fatal("reset should restore the stamped pattern")
	}

	if !s.Clear() || world.Population() != 0 {
		t.Fatal("clear should empty the world")
	}
}

func TestSessionUnknownPattern(t *testing.T) {
	quietLog(t)
	cfg := parse(t, "-pattern", "does-not-exist.yaml")
	if _, err := NewSession(cfg); err == nil {
		t.Fatal("expected pattern error")
	}
	cfg = parse(t, "-sim", "nope")
	if _, err := NewSession(cfg); err == nil {
		t.Fatal("expected unknown sim error")
	}
}

func TestRunTerminalPrintsFrames(t *testing.T) {
	quietLog(t)
	cfg := parse(t, "-w", "5", "-h", "5", "-fill", "dead", "-pattern", "blinker")
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	var out bytes.Buffer
	err = RunTerminal(context.Background(), &out, s, TermOptions{
		Generations: 2,
		TPS:         1000,
		Style:       render.TextStyle{Alive: '#', Dead: '.'},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	horizontal := ".....\n.....\n.###.\n.....\n.....\n"
	vertical := ".....\n..#..\n..#..\n..#..\n.....\n"
	want := horizontal + "life 5x5  gen 0  pop 3\n" +
		vertical + "life 5x5  gen 1  pop 3\n" +
		horizontal + "life 5x5  gen 2  pop 3\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunTerminalStopsMidInterval(t *testing.T) {
	quietLog(t)
	s, err := NewSession(parse(t, "-w", "3", "-h", "3", "-tps", "1"))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = RunTerminal(ctx, io.Discard, s, TermOptions{TPS: 1, Style: render.DefaultTextStyle()})
	if err != context.DeadlineExceeded {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 900*time.Millisecond {
		t.Fatalf("run outlived its context by %v", elapsed)
	}
}

func TestPatternUsageListsBuiltins(t *testing.T) {
	fs := flag.NewFlagSet("usage", flag.ContinueOnError)
	NewConfig().Bind(fs)
	usage := fs.Lookup("pattern").Usage
	for _, name := range []string{"glider", "blinker", "lwss"} {
		if !strings.Contains(usage, name) {
			t.Fatalf("pattern usage %q does not mention %s", usage, name)
		}
	}
}

func TestRunTerminalStopsOnCancel(t *testing.T) {
	quietLog(t)
	s, err := NewSession(parse(t, "-w", "3", "-h", "3"))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := RunTerminal(ctx, io.Discard, s, TermOptions{TPS: 1000, Style: render.DefaultTextStyle()}); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

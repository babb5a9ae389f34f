//go:build ebiten

package app

import (
	"log"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Ebiten's TPS paces
// the generations; clicks toggle cells.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	grid     bool
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	size := session.Sim().Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(session.Sim()),
		scale:   cfg.Scale,
		grid:    cfg.Grid,
		paused:  cfg.Paused,
	}
}

func (g *Game) reset(seed int64) {
	if err := g.session.Reset(seed); err != nil {
		log.Printf("reset: %v", err)
	}
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.grid = !g.grid
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.painter.CellAt(x, y, g.scale); ok {
			g.session.Toggle(row, col)
		}
	}

	if !g.paused || g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current generation and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.scale, g.grid)
	s := g.session.Sim().Size()
	g.hud.Draw(screen, s.H*g.scale, s.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W * g.scale, s.H*g.scale + ui.BarHeight
}

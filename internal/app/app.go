//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"
	"time"

	"lifelog/internal/engine"
	"lifelog/internal/render"
	"lifelog/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	eng     *engine.Engine
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	steps    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided engine.
func New(ctx context.Context, eng *engine.Engine, cfg *Config) *Game {
	return &Game{
		ctx:      ctx,
		eng:      eng,
		painter:  render.NewGridPainter(eng.Current().Bounds()),
		hud:      ui.NewHUD(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		steps:    cfg.StepsPerFrame,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	g.hud.Update()

	if g.paused && !g.tickOnce {
		return nil
	}
	steps := g.steps
	if g.tickOnce {
		steps = 1
	}
	g.tickOnce = false
	return g.eng.Simulate(g.ctx, steps)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.eng.Current()
	g.painter.Blit(screen, cur, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, ui.Status{
		Generation: g.eng.Generation(),
		Population: cur.Population(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

// RunWindow opens a window and advances the engine once per frame, one frame
// every cfg.Delay.
func RunWindow(ctx context.Context, eng *engine.Engine, cfg *Config) error {
	game := New(ctx, eng, cfg)
	w, h := game.painter.Size()

	ebiten.SetWindowTitle("lifelog — " + eng.Current().ID())
	ebiten.SetTPS(framesPerSecond(cfg.Delay))
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func framesPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.DefaultTPS
	}
	tps := int(time.Second / delay)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Package ebitenrun drives a tweener.Loop from an Ebitengine game and provides
// sprites that tweens can animate.
package ebitenrun

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hynessight/tweener"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowOverlay draws an Overlay with TPS, FPS and the running tween count
	// on top of every frame.
	ShowOverlay bool
	// Update runs once per tick before the tweens advance. Returning
	// ebiten.Termination ends the game cleanly.
	Update func() error
	// Draw renders the frame. Sprites draw themselves with their Draw method.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and ticks loop once per Ebitengine update with a delta
// of 1/TPS seconds. It blocks until the game ends.
func Run(loop *tweener.Loop, cfg RunConfig) error {
	g := newGame(loop, cfg)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(g)
}

type game struct {
	loop    *tweener.Loop
	cfg     RunConfig
	overlay *Overlay
	tps     func() int
}

func newGame(loop *tweener.Loop, cfg RunConfig) *game {
	g := &game{loop: loop, cfg: cfg, tps: ebiten.TPS}
	if cfg.ShowOverlay {
		g.overlay = NewOverlay(loop.Scheduler)
	}
	return g
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	dt := 1.0 / float64(g.tps())
	g.loop.Tick(dt)
	if g.overlay != nil {
		g.overlay.Update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

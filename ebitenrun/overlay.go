package ebitenrun

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hynessight/tweener"
)

const overlayRefresh = 0.5 // seconds

// Overlay prints TPS, FPS and the number of running tweens in the top-left
// corner. The text is refreshed every half second.
type Overlay struct {
	scheduler *tweener.Scheduler
	text      string
	elapsed   float64

	fps func() float64
	tps func() float64
}

// NewOverlay creates an overlay reporting on s.
func NewOverlay(s *tweener.Scheduler) *Overlay {
	o := &Overlay{scheduler: s, fps: ebiten.ActualFPS, tps: ebiten.ActualTPS}
	o.refresh()
	return o
}

// Update accumulates dt and refreshes the text when due.
func (o *Overlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.refresh()
}

func (o *Overlay) refresh() {
	o.text = fmt.Sprintf("TPS: %.1f\nFPS: %.1f\nTweens: %d", o.tps(), o.fps(), o.scheduler.Count())
}

// Text returns the text drawn by the last refresh.
func (o *Overlay) Text() string {
	return o.text
}

// Draw prints the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}

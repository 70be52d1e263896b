package tweener

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-6

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func approxVec(a, b mgl64.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

// recorder is an applier that remembers every value it was given.
type recorder struct {
	dead   bool
	values []float64
}

func (r *recorder) alive() bool     { return !r.dead }
func (r *recorder) apply(v float64) { r.values = append(r.values, v) }
func (r *recorder) last() float64   { return r.values[len(r.values)-1] }

// counter counts the invocations of the three boundary events.
type counter struct {
	tweenEnd, pingEnd, pongEnd int
}

func (c *counter) callbacks() Callbacks {
	return Callbacks{
		OnTweenEnd: NewEvent(func() { c.tweenEnd++ }),
		OnPingEnd:  NewEvent(func() { c.pingEnd++ }),
		OnPongEnd:  NewEvent(func() { c.pongEnd++ }),
	}
}

// stubGraphic is a Graphic that stores the last color set.
type stubGraphic struct {
	dead  bool
	color Color
	sets  int
}

func (g *stubGraphic) Alive() bool      { return !g.dead }
func (g *stubGraphic) SetColor(c Color) { g.color = c; g.sets++ }

// stubRenderer is a Renderer with a fixed number of material slots.
type stubRenderer struct {
	dead   bool
	colors map[int]Color
}

func newStubRenderer() *stubRenderer { return &stubRenderer{colors: make(map[int]Color)} }

func (r *stubRenderer) Alive() bool                     { return !r.dead }
func (r *stubRenderer) SetMaterialColor(i int, c Color) { r.colors[i] = c }

// nonComparable is a Graphic whose dynamic type cannot key a map.
type nonComparable []int

func (nonComparable) Alive() bool    { return true }
func (nonComparable) SetColor(Color) {}

package tweener

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 3D transform a scheduler can animate. Implementations must be
// comparable (typically a pointer) because the scheduler keys tweens by them.
// Alive reports false once the underlying object has been destroyed; the
// scheduler then finishes its tweens without touching the transform again.
type Transform interface {
	Alive() bool
	Position(space Space) mgl64.Vec3
	SetPosition(space Space, p mgl64.Vec3)
	// EulerAngles and SetEulerAngles use degrees.
	EulerAngles(space Space) mgl64.Vec3
	SetEulerAngles(space Space, e mgl64.Vec3)
	LocalScale() mgl64.Vec3
	SetLocalScale(s mgl64.Vec3)
}

// Renderer is a surface with indexed material slots, each carrying a color.
type Renderer interface {
	Alive() bool
	SetMaterialColor(index int, c Color)
}

// Graphic is a surface with a single color.
type Graphic interface {
	Alive() bool
	SetColor(c Color)
}

// applier writes an interpolated value to one target. Each tween kind has its
// own applier; the shared timing logic lives in task.
type applier interface {
	alive() bool
	apply(v float64)
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// keepMuted copies the muted components of current into v.
func keepMuted(v, current mgl64.Vec3, mute Axes) mgl64.Vec3 {
	if mute.Has(AxisX) {
		v[0] = current[0]
	}
	if mute.Has(AxisY) {
		v[1] = current[1]
	}
	if mute.Has(AxisZ) {
		v[2] = current[2]
	}
	return v
}

type positionApplier struct {
	target   Transform
	from, to mgl64.Vec3
	space    Space
	mute     Axes
}

func (a *positionApplier) alive() bool { return a.target.Alive() }

func (a *positionApplier) apply(v float64) {
	p := lerpVec3(a.from, a.to, v)
	if a.mute != AxesNone {
		p = keepMuted(p, a.target.Position(a.space), a.mute)
	}
	a.target.SetPosition(a.space, p)
}

type rotationApplier struct {
	target   Transform
	from, to mgl64.Vec3
	space    Space
	mute     Axes
}

func (a *rotationApplier) alive() bool { return a.target.Alive() }

func (a *rotationApplier) apply(v float64) {
	e := lerpVec3(a.from, a.to, v)
	if a.mute != AxesNone {
		e = keepMuted(e, a.target.EulerAngles(a.space), a.mute)
	}
	a.target.SetEulerAngles(a.space, e)
}

type scaleApplier struct {
	target   Transform
	from, to mgl64.Vec3
	mute     Axes
}

func (a *scaleApplier) alive() bool { return a.target.Alive() }

func (a *scaleApplier) apply(v float64) {
	s := lerpVec3(a.from, a.to, v)
	if a.mute != AxesNone {
		s = keepMuted(s, a.target.LocalScale(), a.mute)
	}
	a.target.SetLocalScale(s)
}

type rendererColorApplier struct {
	target   Renderer
	material int
	from, to Color
	space    ColorSpace
}

func (a *rendererColorApplier) alive() bool { return a.target.Alive() }

func (a *rendererColorApplier) apply(v float64) {
	a.target.SetMaterialColor(a.material, LerpColor(a.from, a.to, v, a.space))
}

type graphicColorApplier struct {
	target   Graphic
	from, to Color
	space    ColorSpace
}

func (a *graphicColorApplier) alive() bool { return a.target.Alive() }

func (a *graphicColorApplier) apply(v float64) {
	a.target.SetColor(LerpColor(a.from, a.to, v, a.space))
}

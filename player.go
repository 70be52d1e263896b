package tweener

import "github.com/go-gl/mathgl/mgl64"

// Vec3Source yields a vector when a Player starts, so endpoints can track the
// scene instead of being fixed up front.
type Vec3Source func() mgl64.Vec3

// Vector returns a source that always yields v.
func Vector(v mgl64.Vec3) Vec3Source {
	return func() mgl64.Vec3 { return v }
}

// CurrentPosition returns a source reading t's position at play time.
func CurrentPosition(t Transform, space Space) Vec3Source {
	return func() mgl64.Vec3 { return t.Position(space) }
}

// CurrentEulerAngles returns a source reading t's rotation at play time.
func CurrentEulerAngles(t Transform, space Space) Vec3Source {
	return func() mgl64.Vec3 { return t.EulerAngles(space) }
}

// CurrentScale returns a source reading t's local scale at play time.
func CurrentScale(t Transform) Vec3Source {
	return func() mgl64.Vec3 { return t.LocalScale() }
}

// Player is a reusable tween bound to one target, for objects that own a
// canned animation and replay it on demand. Play starts it (or resumes it
// when paused), Stop cancels it. The playing and paused flags mirror what the
// caller asked for; IsPlaying also consults the scheduler, so a tween that ran
// out of loops reports false.
type Player struct {
	scheduler *Scheduler
	ref       Ref
	opts      Options
	start     func(opts Options)
	phase     Phase // phase of the tween started by the last Play
	task      *task // that tween; another start on the same slot replaces it

	playing bool
	paused  bool
}

func (s *Scheduler) newPlayer(ref Ref, opts Options, start func(Options)) *Player {
	return &Player{scheduler: s, ref: ref, opts: opts, start: start}
}

// PositionPlayer returns a Player tweening t's position between the values
// from and to yield at play time.
func (s *Scheduler) PositionPlayer(t Transform, from, to Vec3Source, opts Options) *Player {
	return s.newPlayer(PositionOf(t), opts, func(o Options) {
		s.TweenPosition(t, from(), to(), o)
	})
}

// RotationPlayer returns a Player tweening t's Euler angles.
func (s *Scheduler) RotationPlayer(t Transform, from, to Vec3Source, opts Options) *Player {
	return s.newPlayer(RotationOf(t), opts, func(o Options) {
		s.TweenRotation(t, from(), to(), o)
	})
}

// ScalePlayer returns a Player tweening t's local scale.
func (s *Scheduler) ScalePlayer(t Transform, from, to Vec3Source, opts Options) *Player {
	return s.newPlayer(ScaleOf(t), opts, func(o Options) {
		s.TweenScale(t, from(), to(), o)
	})
}

// GraphicColorPlayer returns a Player tweening g's color.
func (s *Scheduler) GraphicColorPlayer(g Graphic, from, to Color, opts Options) *Player {
	return s.newPlayer(GraphicColorOf(g), opts, func(o Options) {
		s.TweenGraphicColor(g, from, to, o)
	})
}

// RendererColorPlayer returns a Player tweening material slot material of r.
func (s *Scheduler) RendererColorPlayer(r Renderer, material int, from, to Color, opts Options) *Player {
	return s.newPlayer(RendererColorOf(r, material), opts, func(o Options) {
		s.TweenRendererColor(r, material, from, to, o)
	})
}

// Options returns the options the player starts its tween with.
func (p *Player) Options() Options {
	return p.opts
}

// SetOptions replaces the options used by the next Play.
func (p *Player) SetOptions(opts Options) {
	p.opts = opts
}

// Play starts the tween from the beginning, replacing any tween of the same
// kind on the target, or resumes it if it is paused and still running.
func (p *Player) Play() {
	p.playing = true
	if p.paused {
		if p.owned() != nil {
			p.Resume()
			return
		}
		p.paused = false
	}
	p.phase = resolvePhase(p.opts.Phase)
	p.start(p.opts)
	p.task = p.scheduler.lookup(p.ref, p.phase)
}

// owned returns the player's tween while it still occupies its slot and has
// not finished.
func (p *Player) owned() *task {
	if p.task == nil || p.task.finished {
		return nil
	}
	if p.scheduler.lookup(p.ref, p.phase) != p.task {
		return nil
	}
	return p.task
}

// Pause freezes a playing tween.
func (p *Player) Pause() {
	if !p.playing {
		return
	}
	if t := p.owned(); t != nil {
		p.paused = true
		t.paused = true
	}
}

// Resume continues a paused tween.
func (p *Player) Resume() {
	if !p.playing || !p.paused {
		return
	}
	p.paused = false
	if t := p.owned(); t != nil {
		t.paused = false
	}
}

// Stop cancels the tween; its OnTweenEnd fires before Stop returns. A tween
// another caller started on the same slot is left alone.
func (p *Player) Stop() {
	if !p.playing {
		return
	}
	p.playing = false
	p.paused = false
	if p.owned() != nil {
		p.scheduler.Stop(p.ref, p.phase, false)
	}
	p.task = nil
}

// IsPlaying reports whether the player was started, not stopped, and its tween
// is still running (paused tweens count).
func (p *Player) IsPlaying() bool {
	return p.playing && p.owned() != nil
}

// IsPaused reports whether the player is paused.
func (p *Player) IsPaused() bool {
	return p.paused
}

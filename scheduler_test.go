package tweener

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newQuietScheduler() (*Scheduler, *bytes.Buffer) {
	var buf bytes.Buffer
	s := New()
	s.SetLogOutput(&buf)
	return s, &buf
}

func tick(s *Scheduler, dt float64) {
	clk := StepTime(dt)
	s.Advance(PhaseUpdate, clk)
	s.Advance(PhaseLateUpdate, clk)
	s.Advance(PhaseFixedUpdate, clk)
	s.Cleanup()
}

func TestSchedulerPositionScenario(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")
	var c counter
	opts := Lerp(1, 2)
	opts.Callbacks = c.callbacks()
	s.TweenPosition(n, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}, opts)

	for i, want := range []float64{5, 10, 5, 10} {
		tick(s, 0.5)
		if got := n.Position(SpaceWorld)[0]; !approx(got, want) {
			t.Errorf("tick %d: x = %v, want %v", i, got, want)
		}
	}
	if c.pingEnd != 2 || c.tweenEnd != 1 {
		t.Errorf("pingEnd = %d tweenEnd = %d, want 2 and 1", c.pingEnd, c.tweenEnd)
	}
	if s.IsRunning(PositionOf(n), PhaseUpdate) {
		t.Error("still running after last loop")
	}
	if !s.Idle() {
		t.Error("scheduler not idle after cleanup")
	}
}

func TestSchedulerRestartFinalizesPrevious(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")
	var first, second counter

	opts := Lerp(1, 1)
	opts.Callbacks = first.callbacks()
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, opts)
	tick(s, 0.25)

	opts.Callbacks = second.callbacks()
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{0, 10, 0}, opts)
	if first.tweenEnd != 1 {
		t.Fatalf("first tweenEnd = %d, want 1", first.tweenEnd)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}

	tick(s, 0.5)
	if got := n.Position(SpaceWorld); !approxVec(got, mgl64.Vec3{0, 5, 0}) {
		t.Errorf("position = %v, want [0 5 0]", got)
	}
	if second.tweenEnd != 0 {
		t.Errorf("second tweenEnd = %d, want 0", second.tweenEnd)
	}
}

func TestSchedulerKindsAndPhasesIndependent(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")

	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, Lerp(1, 0))
	s.TweenScale(n, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2}, Lerp(1, 0))
	late := Lerp(1, 0)
	late.Phase = PhaseLateUpdate
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, late)

	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}
	s.Stop(PositionOf(n), PhaseUpdate, true)
	if s.IsRunning(PositionOf(n), PhaseUpdate) {
		t.Error("update position still running")
	}
	if !s.IsRunning(PositionOf(n), PhaseLateUpdate) {
		t.Error("late position stopped by update Stop")
	}
	if !s.IsRunning(ScaleOf(n), PhaseUpdate) {
		t.Error("scale stopped by position Stop")
	}
}

func TestSchedulerStop(t *testing.T) {
	s, _ := newQuietScheduler()
	g := &stubGraphic{}
	var c counter
	opts := Lerp(1, 0)
	opts.Callbacks = c.callbacks()
	s.TweenGraphicColor(g, Color{}, ColorWhite, opts)

	s.Stop(GraphicColorOf(g), PhaseUpdate, false)
	if c.tweenEnd != 1 {
		t.Errorf("tweenEnd = %d after Stop, want 1", c.tweenEnd)
	}
	if s.IsRunning(GraphicColorOf(g), PhaseUpdate) {
		t.Error("IsRunning true after Stop")
	}
	s.Cleanup()
	if c.tweenEnd != 1 {
		t.Errorf("tweenEnd = %d after cleanup, want 1", c.tweenEnd)
	}

	// Stopping again is a no-op.
	s.Stop(GraphicColorOf(g), PhaseUpdate, true)
	if c.tweenEnd != 1 {
		t.Errorf("tweenEnd = %d after second Stop, want 1", c.tweenEnd)
	}
}

func TestSchedulerPauseResume(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")
	s.TweenScale(n, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 4}, Lerp(1, 1))

	tick(s, 0.25)
	s.Pause(ScaleOf(n), PhaseUpdate)
	tick(s, 0.5)
	if got := n.LocalScale(); !approxVec(got, mgl64.Vec3{1, 1, 1}) {
		t.Errorf("scale while paused = %v, want [1 1 1]", got)
	}
	if !s.IsRunning(ScaleOf(n), PhaseUpdate) {
		t.Error("paused tween not running")
	}

	s.Resume(ScaleOf(n), PhaseUpdate)
	tick(s, 0.25)
	if got := n.LocalScale(); !approxVec(got, mgl64.Vec3{2, 2, 2}) {
		t.Errorf("scale after resume = %v, want [2 2 2]", got)
	}

	// No entry: silent no-op.
	s.Pause(PositionOf(n), PhaseUpdate)
	s.Resume(PositionOf(n), PhaseUpdate)
}

func TestSchedulerStopAll(t *testing.T) {
	s, _ := newQuietScheduler()
	var c counter
	cb := c.callbacks()

	for i := 0; i < 3; i++ {
		opts := Lerp(1, 0)
		opts.Callbacks = cb
		opts.Phase = Phase(i)
		s.TweenRotation(NewNode3D("n"), mgl64.Vec3{}, mgl64.Vec3{0, 90, 0}, opts)
	}
	r := newStubRenderer()
	opts := Lerp(1, 0)
	opts.Callbacks = cb
	s.TweenRendererColor(r, 0, Color{}, ColorWhite, opts)
	s.TweenRendererColor(r, 1, Color{}, ColorWhite, opts)

	s.StopAll(true)
	if c.tweenEnd != 5 {
		t.Errorf("tweenEnd = %d, want 5", c.tweenEnd)
	}
	if s.Count() != 0 || !s.Idle() {
		t.Errorf("Count = %d Idle = %v, want 0 and true", s.Count(), s.Idle())
	}
}

func TestSchedulerRendererMaterialsIndependent(t *testing.T) {
	s, _ := newQuietScheduler()
	r := newStubRenderer()
	s.TweenRendererColor(r, 0, Color{}, Color{R: 1, A: 1}, Lerp(1, 1))
	s.TweenRendererColor(r, 2, Color{}, Color{B: 1, A: 1}, Lerp(1, 1))

	tick(s, 1)
	if r.colors[0] != (Color{R: 1, A: 1}) || r.colors[2] != (Color{B: 1, A: 1}) {
		t.Errorf("colors = %+v", r.colors)
	}
	if _, ok := r.colors[1]; ok {
		t.Error("material 1 was written")
	}
}

func TestSchedulerDeadTargetFinishes(t *testing.T) {
	s, _ := newQuietScheduler()
	g := &stubGraphic{}
	var c counter
	opts := Lerp(1, 0)
	opts.Callbacks = c.callbacks()
	s.TweenGraphicColor(g, Color{}, ColorWhite, opts)

	tick(s, 0.1)
	sets := g.sets
	g.dead = true
	tick(s, 0.1)
	if g.sets != sets {
		t.Error("dead target was written")
	}
	if c.tweenEnd != 1 || s.Count() != 0 {
		t.Errorf("tweenEnd = %d Count = %d, want 1 and 0", c.tweenEnd, s.Count())
	}
}

func TestSchedulerCallbackRestartsSameTarget(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")
	restarts := 0

	var start func()
	start = func() {
		opts := Lerp(0.5, 1)
		opts.Callbacks.OnTweenEnd = NewEvent(func() {
			if restarts < 2 {
				restarts++
				start()
			}
		})
		s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, opts)
	}
	start()

	tick(s, 0.5)
	// The replacement started inside the tick survives cleanup.
	if restarts != 1 || !s.IsRunning(PositionOf(n), PhaseUpdate) {
		t.Fatalf("restarts = %d running = %v, want 1 and true", restarts, s.IsRunning(PositionOf(n), PhaseUpdate))
	}
	// ...and did not advance in the tick that started it.
	if got := n.Position(SpaceWorld)[0]; !approx(got, 1) {
		t.Errorf("x = %v, want 1 from the first tween only", got)
	}

	tick(s, 0.25)
	if got := n.Position(SpaceWorld)[0]; !approx(got, 0.5) {
		t.Errorf("x = %v, want 0.5", got)
	}
	tick(s, 0.25)
	tick(s, 0.5)
	if restarts != 2 || s.Count() != 0 {
		t.Errorf("restarts = %d Count = %d, want 2 and 0", restarts, s.Count())
	}
}

func TestSchedulerCallbackStartsOtherTarget(t *testing.T) {
	s, _ := newQuietScheduler()
	a, b := NewNode3D("a"), NewNode3D("b")

	opts := Lerp(0.5, 1)
	opts.Callbacks.OnPingEnd = NewEvent(func() {
		s.TweenPosition(b, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, Lerp(1, 1))
	})
	s.TweenPosition(a, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, opts)

	tick(s, 0.5)
	if got := b.Position(SpaceWorld)[0]; got != 0 {
		t.Errorf("b advanced in its start tick: x = %v", got)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
	tick(s, 0.5)
	if got := b.Position(SpaceWorld)[0]; !approx(got, 0.5) {
		t.Errorf("b x = %v, want 0.5", got)
	}
}

func TestSchedulerStopInsideAdvanceDefersCleanup(t *testing.T) {
	s, _ := newQuietScheduler()
	a, b := NewNode3D("a"), NewNode3D("b")
	var bc counter

	bopts := Lerp(10, 0)
	bopts.Callbacks = bc.callbacks()
	s.TweenPosition(b, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, bopts)

	aopts := Lerp(10, 0)
	aopts.Callbacks.OnPingEnd = NewEvent(func() { s.Stop(PositionOf(b), PhaseUpdate, true) })
	aopts.PingDuration = 0.1
	s.TweenPosition(a, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, aopts)

	s.Advance(PhaseUpdate, StepTime(0.1))
	if bc.tweenEnd != 1 {
		t.Fatalf("b tweenEnd = %d, want 1", bc.tweenEnd)
	}
	if s.phases[PhaseUpdate].position.size() != 2 {
		t.Error("registry mutated during advance")
	}
	s.Cleanup()
	if s.phases[PhaseUpdate].position.size() != 1 {
		t.Errorf("size after cleanup = %d, want 1", s.phases[PhaseUpdate].position.size())
	}
}

func TestSchedulerIdleSkipsAdvance(t *testing.T) {
	s, _ := newQuietScheduler()
	if !s.Idle() {
		t.Fatal("new scheduler not idle")
	}
	n := NewNode3D("n")
	opts := Lerp(1, 0)
	opts.Phase = PhaseFixedUpdate
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, opts)
	if s.Idle() || !s.phases[PhaseFixedUpdate].dirty || s.phases[PhaseUpdate].dirty {
		t.Error("only the fixed phase should be dirty")
	}
	s.StopAll(true)
	if !s.Idle() {
		t.Error("not idle after StopAll")
	}
}

func TestSchedulerWarnings(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Scheduler)
		want string
	}{
		{"nil transform", func(s *Scheduler) {
			s.TweenPosition(nil, mgl64.Vec3{}, mgl64.Vec3{}, Lerp(1, 1))
		}, "nil target"},
		{"nil pointer", func(s *Scheduler) {
			var n *Node3D
			s.TweenScale(n, mgl64.Vec3{}, mgl64.Vec3{}, Lerp(1, 1))
		}, "nil *tweener.Node3D target"},
		{"non-comparable", func(s *Scheduler) {
			s.TweenGraphicColor(nonComparable{1}, Color{}, Color{}, Lerp(1, 1))
		}, "not comparable"},
		{"negative material", func(s *Scheduler) {
			s.TweenRendererColor(newStubRenderer(), -1, Color{}, Color{}, Lerp(1, 1))
		}, "negative material index"},
		{"negative duration", func(s *Scheduler) {
			s.TweenPosition(NewNode3D("n"), mgl64.Vec3{}, mgl64.Vec3{}, Lerp(-1, 1))
		}, "negative ping duration"},
		{"unknown phase", func(s *Scheduler) {
			s.Advance(Phase(7), StepTime(1))
		}, "unknown phase 7"},
		{"unknown color space", func(s *Scheduler) {
			opts := Lerp(1, 1)
			opts.ColorSpace = ColorSpace(9)
			s.TweenGraphicColor(&stubGraphic{}, Color{}, Color{}, opts)
		}, "unknown color space 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newQuietScheduler()
			tt.run(s)
			out := buf.String()
			if !strings.HasPrefix(out, "[tweener] warning: ") || !strings.Contains(out, tt.want) {
				t.Errorf("log = %q, want warning containing %q", out, tt.want)
			}
		})
	}
}

func TestSchedulerInvalidTargetNotRegistered(t *testing.T) {
	s, _ := newQuietScheduler()
	s.TweenPosition(nil, mgl64.Vec3{}, mgl64.Vec3{}, Lerp(1, 1))
	s.TweenRendererColor(newStubRenderer(), -3, Color{}, Color{}, Lerp(1, 1))
	if s.Count() != 0 || !s.Idle() {
		t.Errorf("Count = %d Idle = %v, want 0 and true", s.Count(), s.Idle())
	}
}

func TestSchedulerReentrantAdvanceIgnored(t *testing.T) {
	s, buf := newQuietScheduler()
	n := NewNode3D("n")
	opts := Lerp(1, 0)
	opts.Callbacks.OnPingEnd = NewEvent(func() { s.Advance(PhaseUpdate, StepTime(1)) })
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, opts)

	s.Advance(PhaseUpdate, StepTime(1))
	if !strings.Contains(buf.String(), "re-entrant") {
		t.Errorf("log = %q, want re-entrant warning", buf.String())
	}
	if s.advancing {
		t.Error("advancing flag left set")
	}
}

func TestSchedulerDebugStats(t *testing.T) {
	s, buf := newQuietScheduler()
	s.SetDebugMode(true)
	s.TweenPosition(NewNode3D("n"), mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, Lerp(1, 1))

	tick(s, 1)
	out := buf.String()
	if !strings.Contains(out, "[tweener] advanced: 1 | finished: 1 | removed: 1 | running: 0") {
		t.Errorf("debug log = %q", out)
	}

	buf.Reset()
	tick(s, 1)
	if buf.Len() != 0 {
		t.Errorf("idle tick logged %q", buf.String())
	}
}

func TestSchedulerClose(t *testing.T) {
	s, _ := newQuietScheduler()
	var c counter
	opts := Lerp(1, 0)
	opts.Callbacks = c.callbacks()
	s.TweenGraphicColor(&stubGraphic{}, Color{}, ColorWhite, opts)

	s.Close()
	if c.tweenEnd != 1 || s.Count() != 0 {
		t.Errorf("tweenEnd = %d Count = %d, want 1 and 0", c.tweenEnd, s.Count())
	}

	// Still usable.
	s.TweenGraphicColor(&stubGraphic{}, Color{}, ColorWhite, Lerp(1, 1))
	if s.Count() != 1 {
		t.Errorf("Count after reuse = %d, want 1", s.Count())
	}
}

func TestSchedulersAreIndependent(t *testing.T) {
	a, _ := newQuietScheduler()
	b, _ := newQuietScheduler()
	n := NewNode3D("n")
	a.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, Lerp(1, 0))
	if b.Count() != 0 || b.IsRunning(PositionOf(n), PhaseUpdate) {
		t.Error("tween leaked across schedulers")
	}
}

func TestRefKind(t *testing.T) {
	n := NewNode3D("n")
	tests := []struct {
		ref  Ref
		want Kind
	}{
		{PositionOf(n), KindPosition},
		{RotationOf(n), KindRotation},
		{ScaleOf(n), KindScale},
		{GraphicColorOf(&stubGraphic{}), KindGraphicColor},
		{RendererColorOf(newStubRenderer(), 0), KindRendererColor},
	}
	for _, tt := range tests {
		if got := tt.ref.Kind(); got != tt.want {
			t.Errorf("Kind() = %s, want %s", got, tt.want)
		}
	}
}

func TestSchedulerRestartFinalizesChainedTween(t *testing.T) {
	s, _ := newQuietScheduler()
	n := NewNode3D("n")
	var chained, outer counter

	first := Lerp(1, 0)
	first.Callbacks.OnTweenEnd = NewEvent(func() {
		opts := Lerp(1, 0)
		opts.Callbacks = chained.callbacks()
		s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, opts)
	})
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, first)

	opts := Lerp(1, 0)
	opts.Callbacks = outer.callbacks()
	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, opts)

	// The tween started by the end callback was replaced too.
	if chained.tweenEnd != 1 {
		t.Errorf("chained tweenEnd = %d, want 1", chained.tweenEnd)
	}
	if outer.tweenEnd != 0 || s.Count() != 1 {
		t.Errorf("outer tweenEnd = %d Count = %d, want 0 and 1", outer.tweenEnd, s.Count())
	}

	tick(s, 0.5)
	if got := n.Position(SpaceWorld); !approxVec(got, mgl64.Vec3{0, 0, 0.5}) {
		t.Errorf("position = %v, want [0 0 0.5]", got)
	}
	s.StopAll(true)
	if chained.tweenEnd != 1 || outer.tweenEnd != 1 || s.Count() != 0 {
		t.Errorf("chained = %d outer = %d Count = %d, want 1, 1 and 0", chained.tweenEnd, outer.tweenEnd, s.Count())
	}
}

func TestSchedulerRestartChainIsBounded(t *testing.T) {
	s, buf := newQuietScheduler()
	n := NewNode3D("n")
	ends := 0

	var start func()
	start = func() {
		opts := Lerp(1, 0)
		opts.Callbacks.OnTweenEnd = NewEvent(func() {
			ends++
			start()
		})
		s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, opts)
	}
	start()

	s.TweenPosition(n, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, Lerp(1, 1))
	if ends != maxReplaceChain {
		t.Errorf("ends = %d, want %d", ends, maxReplaceChain)
	}
	if !strings.Contains(buf.String(), "giving up") {
		t.Errorf("log = %q, want restart chain warning", buf.String())
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

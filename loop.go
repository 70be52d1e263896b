package tweener

import "math"

const (
	defaultFixedStep     = 0.02
	defaultMaxFixedSteps = 8
)

// Loop turns real elapsed time into phase ticks for a Scheduler. Each Tick
// runs as many fixed steps as the accumulated scaled time allows (capped at
// MaxFixedSteps), then the update and late-update phases, then one cleanup
// pass.
type Loop struct {
	Scheduler *Scheduler

	// TimeScale multiplies real time for scaled clocks. Zero freezes scaled
	// tweens and the fixed phase; unscaled update and late-update tweens keep
	// running.
	TimeScale float64
	// FixedStep is the simulated length of one fixed step in seconds.
	FixedStep float64
	// MaxFixedSteps bounds fixed steps per tick; leftover time is dropped.
	MaxFixedSteps int

	accumulator float64
	frame       uint64
}

// NewLoop creates a loop with a time scale of 1 and 50 fixed steps per
// simulated second.
func NewLoop(s *Scheduler) *Loop {
	return &Loop{
		Scheduler:     s,
		TimeScale:     1,
		FixedStep:     defaultFixedStep,
		MaxFixedSteps: defaultMaxFixedSteps,
	}
}

// Frame returns the number of completed ticks.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Tick advances every phase by dt seconds of real time.
func (l *Loop) Tick(dt float64) {
	s := l.Scheduler
	if dt < 0 || math.IsNaN(dt) {
		s.warnf("loop: invalid delta %v, using 0", dt)
		dt = 0
	}
	scale := l.TimeScale
	if scale < 0 {
		s.warnf("loop: negative time scale %v, using 0", scale)
		scale = 0
	}
	scaled := dt * scale

	step := l.FixedStep
	if step <= 0 {
		step = defaultFixedStep
	}
	maxSteps := l.MaxFixedSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxFixedSteps
	}
	fixedUnscaled := step
	if scale > 0 {
		fixedUnscaled = step / scale
	}

	clk := Time{
		Delta:              scaled,
		UnscaledDelta:      dt,
		FixedDelta:         step,
		FixedUnscaledDelta: fixedUnscaled,
	}

	l.accumulator += scaled
	steps := 0
	for l.accumulator >= step && steps < maxSteps {
		s.Advance(PhaseFixedUpdate, clk)
		l.accumulator -= step
		steps++
	}
	if l.accumulator >= step {
		l.accumulator = math.Mod(l.accumulator, step)
	}

	s.Advance(PhaseUpdate, clk)
	s.Advance(PhaseLateUpdate, clk)
	s.Cleanup()
	l.frame++
}

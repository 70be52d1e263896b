package tweener

// task is the timing state shared by every tween kind. It advances through
// ping legs (start to end) and, when a pong leg is configured, pong legs (end
// back to start), counting loops at the end of each full iteration. Paused is
// orthogonal to the leg state.
type task struct {
	elapsed      float64
	pingDuration float64
	pongDuration float64
	loops        int

	unscaled bool
	fixed    bool

	pinging  bool
	paused   bool
	finished bool

	pingCurve Curve
	pongCurve Curve
	callbacks Callbacks

	target applier
}

func newTask(target applier, opts Options) *task {
	t := &task{
		pingDuration: opts.PingDuration,
		pongDuration: opts.PongDuration,
		loops:        opts.Loops,
		unscaled:     opts.Unscaled,
		fixed:        opts.Phase == PhaseFixedUpdate,
		pinging:      true,
		pingCurve:    opts.PingCurve,
		pongCurve:    opts.PongCurve,
		callbacks:    opts.Callbacks,
		target:       target,
	}
	if t.pingCurve == nil {
		t.pingCurve = Linear
	}
	if t.pongCurve == nil {
		t.pongCurve = Linear
	}
	return t
}

// advance moves the task forward by one tick of its clock and applies the
// interpolated value. It reports whether the task is done: the loop count ran
// out or the target is gone. Infinite tasks only report done for a dead
// target.
func (t *task) advance(clk Time) bool {
	if !t.target.alive() {
		return true
	}
	if t.paused {
		return false
	}

	t.elapsed += clk.step(t.unscaled, t.fixed)

	leg := t.pingDuration
	curve := t.pingCurve
	if !t.pinging {
		leg = t.pongDuration
		curve = t.pongCurve
	}

	frac := 1.0
	if leg > 0 {
		frac = clamp01(t.elapsed / leg)
	}
	if !t.pinging {
		frac = 1 - frac
	}
	t.target.apply(curve(frac))

	if t.elapsed < leg {
		return false
	}
	t.elapsed = 0

	done := false
	if t.pongDuration > 0 {
		if t.pinging {
			t.callbacks.OnPingEnd.Invoke()
		} else {
			t.callbacks.OnPongEnd.Invoke()
			done = t.countLoop()
		}
		t.pinging = !t.pinging
	} else {
		t.callbacks.OnPingEnd.Invoke()
		done = t.countLoop()
	}
	return done
}

func (t *task) countLoop() bool {
	if t.loops <= 0 {
		return false
	}
	t.loops--
	return t.loops == 0
}

// finish marks the task finished and fires OnTweenEnd. Only the first call has
// any effect; it reports whether this call was that one.
func (t *task) finish() bool {
	if t.finished {
		return false
	}
	t.finished = true
	t.callbacks.OnTweenEnd.Invoke()
	return true
}

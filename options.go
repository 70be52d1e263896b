package tweener

// Options configures one tween. The zero value is a one-leg tween with zero
// duration that loops forever in PhaseUpdate, so callers normally set at
// least PingDuration and Loops.
type Options struct {
	// Phase selects the scheduling phase. Tweens in PhaseFixedUpdate read the
	// fixed-step deltas.
	Phase Phase

	// PingDuration is the length in seconds of the start-to-end leg.
	// PongDuration is the length of the end-to-start leg; zero disables
	// ping-pong so every loop replays the ping leg.
	PingDuration float64
	PongDuration float64

	// Loops is the number of iterations (a ping-pong iteration is ping plus
	// pong). Zero or negative loops until stopped.
	Loops int

	// Unscaled reads the unscaled deltas, ignoring the loop's time scale.
	Unscaled bool

	// PingCurve and PongCurve remap the leg fraction; nil means Linear.
	PingCurve Curve
	PongCurve Curve

	Callbacks Callbacks

	// Space applies to position and rotation tweens.
	Space Space
	// Mute keeps the target's current value on the masked axes. Applies to
	// position, rotation and scale tweens.
	Mute Axes
	// ColorSpace applies to color tweens.
	ColorSpace ColorSpace
}

// Lerp returns Options for a one-way tween of the given duration and loop
// count in PhaseUpdate.
func Lerp(duration float64, loops int) Options {
	return Options{PingDuration: duration, Loops: loops}
}

// PingPong returns Options for a there-and-back tween in PhaseUpdate.
func PingPong(ping, pong float64, loops int) Options {
	return Options{PingDuration: ping, PongDuration: pong, Loops: loops}
}

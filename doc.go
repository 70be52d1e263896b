// Package tweener animates values on external targets over time: positions,
// Euler rotations and scales of 3D transforms, and colors of renderers and
// graphics.
//
// A [Scheduler] owns every running tween. Each tween is keyed by its target
// and kind within one of three scheduling phases, so starting a position tween
// on a transform that is already moving replaces the old tween (firing its
// end event) instead of fighting it.
//
// # Quick start
//
// Drive the scheduler with a [Loop], which turns real elapsed time into
// fixed-step, update and late-update ticks:
//
//	s := tweener.New()
//	loop := tweener.NewLoop(s)
//
//	node := tweener.NewNode3D("crate")
//	s.TweenPosition(node, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 2, 0}, tweener.PingPong(0.5, 0.5, 3))
//
//	for running {
//		loop.Tick(dt)
//	}
//
// With Ebitengine, ebitenrun.Run wires the loop into a game for you.
//
// # Tween lifecycle
//
// A tween runs a ping leg from start to end and, when [Options.PongDuration]
// is positive, a pong leg back. [Options.Loops] counts full iterations; zero
// or less repeats until stopped. Legs are shaped by [Curve]s, including every
// gween easing via [Ease] and [CurveByName].
//
// [Callbacks] fire at leg ends and exactly once when the tween ends, whether
// it completed, was stopped, was replaced, or lost its target. Callbacks may
// start and stop tweens; removal is deferred to [Scheduler.Cleanup] so this is
// safe mid-tick.
//
// # Presets
//
// [PresetLibrary] loads named tween settings from YAML and [PresetStore]
// persists them in the user's app data directory.
//
// ECS users can publish tween events into a Donburi world with package
// tweener/ecs.
package tweener

package tweener

import (
	"fmt"
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the identity tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFrom converts any color.Color to a straight-alpha Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// ToRGBA returns the premultiplied 8-bit form of c, clamping out-of-range
// components.
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Phase selects which per-frame callback advances a tween.
type Phase uint8

const (
	PhaseUpdate      Phase = iota // variable-step update
	PhaseLateUpdate               // variable-step, after every update
	PhaseFixedUpdate              // fixed-step; tasks read the fixed deltas

	phaseCount = 3
)

var phaseNames = [phaseCount]string{"update", "late_update", "fixed_update"}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// resolvePhase maps unknown phases to PhaseUpdate, where the scheduler runs
// them.
func resolvePhase(p Phase) Phase {
	if p >= phaseCount {
		return PhaseUpdate
	}
	return p
}

// ParsePhase returns the Phase named by s ("update", "late_update",
// "fixed_update"). An empty string selects PhaseUpdate.
func ParsePhase(s string) (Phase, error) {
	if s == "" {
		return PhaseUpdate, nil
	}
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return PhaseUpdate, fmt.Errorf("unknown phase %q", s)
}

// Kind identifies which quantity a tween drives.
type Kind uint8

const (
	KindRendererColor Kind = iota // color of one material slot on a Renderer
	KindGraphicColor              // color of a Graphic
	KindPosition                  // Transform position
	KindRotation                  // Transform Euler angles
	KindScale                     // Transform local scale

	kindCount = 5
)

var kindNames = [kindCount]string{"renderer_color", "graphic_color", "position", "rotation", "scale"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Space selects world or local coordinates for position and rotation tweens.
type Space uint8

const (
	SpaceWorld Space = iota
	SpaceLocal
)

// Axes is a bitmask of 3D axes. Values can be combined with bitwise OR.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AxesNone Axes = 0
)

// Has reports whether every axis in other is set in a.
func (a Axes) Has(other Axes) bool {
	return a&other == other
}

// ParseAxes parses a string such as "xz" into an Axes mask.
func ParseAxes(s string) (Axes, error) {
	var a Axes
	for _, r := range s {
		switch r {
		case 'x', 'X':
			a |= AxisX
		case 'y', 'Y':
			a |= AxisY
		case 'z', 'Z':
			a |= AxisZ
		default:
			return AxesNone, fmt.Errorf("unknown axis %q in %q", r, s)
		}
	}
	return a, nil
}

// Time carries the elapsed-time values a phase tick hands to its tasks.
// Variable-step tasks read Delta or UnscaledDelta; fixed-step tasks read
// FixedDelta or FixedUnscaledDelta.
type Time struct {
	Delta              float64
	UnscaledDelta      float64
	FixedDelta         float64
	FixedUnscaledDelta float64
}

// StepTime returns a Time whose four deltas all equal dt.
func StepTime(dt float64) Time {
	return Time{Delta: dt, UnscaledDelta: dt, FixedDelta: dt, FixedUnscaledDelta: dt}
}

func (t Time) step(unscaled, fixed bool) float64 {
	switch {
	case fixed && unscaled:
		return t.FixedUnscaledDelta
	case fixed:
		return t.FixedDelta
	case unscaled:
		return t.UnscaledDelta
	default:
		return t.Delta
	}
}

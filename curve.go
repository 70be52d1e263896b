package tweener

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve remaps a normalized fraction in [0, 1]. The result is usually in
// [0, 1] too, but easings such as back and elastic overshoot on purpose.
type Curve func(t float64) float64

// Linear is the identity curve, used whenever a tween is given no curve.
func Linear(t float64) float64 { return t }

// Ease adapts a gween easing function to a Curve.
func Ease(fn ease.TweenFunc) Curve {
	if fn == nil {
		return Linear
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var namedCurves = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
}

// CurveByName returns the named easing curve ("linear", "out_bounce",
// "in_out_cubic", ...). An empty name selects Linear.
func CurveByName(name string) (Curve, error) {
	if name == "" || name == "linear" {
		return Linear, nil
	}
	fn, ok := namedCurves[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q", name)
	}
	return Ease(fn), nil
}

// CurveNames returns every name accepted by CurveByName, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Key is one control point of a keyframed curve.
type Key struct {
	Time, Value float64
}

// Keyframes returns a piecewise-linear curve through keys. Fractions before
// the first key or after the last one hold that key's value. With no keys the
// curve is Linear.
func Keyframes(keys ...Key) Curve {
	if len(keys) == 0 {
		return Linear
	}
	ks := make([]Key, len(keys))
	copy(ks, keys)
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].Time < ks[j].Time })

	return func(t float64) float64 {
		if t <= ks[0].Time {
			return ks[0].Value
		}
		last := ks[len(ks)-1]
		if t >= last.Time {
			return last.Value
		}
		i := sort.Search(len(ks), func(i int) bool { return ks[i].Time > t })
		a, b := ks[i-1], ks[i]
		span := b.Time - a.Time
		if span <= 0 {
			return b.Value
		}
		return a.Value + (b.Value-a.Value)*(t-a.Time)/span
	}
}

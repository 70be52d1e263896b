package tweener

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound is returned when a named preset or stored library does not
// exist.
var ErrPresetNotFound = errors.New("tween preset not found")

// Preset is the serializable form of Options, minus callbacks. A preset with a
// zero PongDuration is a lerp; otherwise it ping-pongs.
//
//	presets:
//	  pulse:
//	    duration: 0.4
//	    pong_duration: 0.4
//	    loops: 0
//	    curve: out_quad
//	    pong_curve: in_quad
//	  slide_in:
//	    phase: late_update
//	    duration: 0.25
//	    curve: out_back
//	    mute: z
type Preset struct {
	Phase        string  `yaml:"phase,omitempty"`         // update (default), late_update, fixed_update
	Duration     float64 `yaml:"duration"`                // ping leg, seconds
	PongDuration float64 `yaml:"pong_duration,omitempty"` // 0 = lerp only
	Loops        *int    `yaml:"loops,omitempty"`         // nil = 1, <=0 = forever
	Unscaled     bool    `yaml:"unscaled,omitempty"`
	Curve        string  `yaml:"curve,omitempty"`      // see CurveNames
	PongCurve    string  `yaml:"pong_curve,omitempty"` // see CurveNames
	Space        string  `yaml:"space,omitempty"`      // world (default), local
	Mute         string  `yaml:"mute,omitempty"`       // any of "xyz"
	ColorSpace   string  `yaml:"color_space,omitempty"`
}

// Options converts the preset, validating every named field.
func (p Preset) Options() (Options, error) {
	var opts Options
	var err error

	if opts.Phase, err = ParsePhase(p.Phase); err != nil {
		return Options{}, err
	}
	if p.Duration < 0 || p.PongDuration < 0 {
		return Options{}, fmt.Errorf("negative duration (%v, %v)", p.Duration, p.PongDuration)
	}
	opts.PingDuration = p.Duration
	opts.PongDuration = p.PongDuration

	opts.Loops = 1
	if p.Loops != nil {
		opts.Loops = *p.Loops
	}
	opts.Unscaled = p.Unscaled

	if opts.PingCurve, err = CurveByName(p.Curve); err != nil {
		return Options{}, err
	}
	if opts.PongCurve, err = CurveByName(p.PongCurve); err != nil {
		return Options{}, err
	}

	switch p.Space {
	case "", "world":
		opts.Space = SpaceWorld
	case "local":
		opts.Space = SpaceLocal
	default:
		return Options{}, fmt.Errorf("unknown space %q", p.Space)
	}

	if opts.Mute, err = ParseAxes(p.Mute); err != nil {
		return Options{}, err
	}
	if opts.ColorSpace, err = ParseColorSpace(p.ColorSpace); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// PresetLibrary is a named collection of presets, typically loaded from YAML.
type PresetLibrary struct {
	Presets map[string]Preset `yaml:"presets"`
}

// ParsePresets decodes a YAML preset library and validates every preset.
func ParsePresets(data []byte) (*PresetLibrary, error) {
	var lib PresetLibrary
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if lib.Presets == nil {
		lib.Presets = make(map[string]Preset)
	}
	for _, name := range lib.Names() {
		if _, err := lib.Presets[name].Options(); err != nil {
			return nil, fmt.Errorf("parse presets: preset %q: %w", name, err)
		}
	}
	return &lib, nil
}

// Marshal encodes the library as YAML.
func (l *PresetLibrary) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal presets: %w", err)
	}
	return data, nil
}

// Names returns the preset names, sorted.
func (l *PresetLibrary) Names() []string {
	names := make([]string, 0, len(l.Presets))
	for name := range l.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set adds or replaces a preset.
func (l *PresetLibrary) Set(name string, p Preset) {
	if l.Presets == nil {
		l.Presets = make(map[string]Preset)
	}
	l.Presets[name] = p
}

// Options returns the Options of the named preset with cb attached.
func (l *PresetLibrary) Options(name string, cb Callbacks) (Options, error) {
	p, ok := l.Presets[name]
	if !ok {
		return Options{}, fmt.Errorf("preset %q: %w", name, ErrPresetNotFound)
	}
	opts, err := p.Options()
	if err != nil {
		return Options{}, fmt.Errorf("preset %q: %w", name, err)
	}
	opts.Callbacks = cb
	return opts, nil
}

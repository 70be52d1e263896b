package tweener

import (
	"io"
	"os"
	"reflect"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type rendererKey struct {
	renderer Renderer
	material int
}

// phaseRegistries holds the five registries of one phase. dirty is set when a
// tween starts in the phase and recomputed at cleanup, so idle phases skip
// their walk.
type phaseRegistries struct {
	rendererColor registry[rendererKey]
	graphicColor  registry[Graphic]
	position      registry[Transform]
	rotation      registry[Transform]
	scale         registry[Transform]
	dirty         bool
}

// all returns the registries indexed by Kind.
func (p *phaseRegistries) all() [kindCount]tweenRegistry {
	return [kindCount]tweenRegistry{
		KindRendererColor: &p.rendererColor,
		KindGraphicColor:  &p.graphicColor,
		KindPosition:      &p.position,
		KindRotation:      &p.rotation,
		KindScale:         &p.scale,
	}
}

func (p *phaseRegistries) transforms(k Kind) *registry[Transform] {
	switch k {
	case KindPosition:
		return &p.position
	case KindRotation:
		return &p.rotation
	case KindScale:
		return &p.scale
	default:
		return nil
	}
}

// Scheduler owns every running tween. It is driven from a single goroutine:
// call Advance once per tick of each phase, then Cleanup once the phases of
// the tick have run (Loop does this). Callbacks may start and stop tweens
// freely; structural changes are deferred to Cleanup.
type Scheduler struct {
	phases       [phaseCount]phaseRegistries
	needsCleanup bool
	advancing    bool

	logOut io.Writer
	debug  bool
	stats  tickStats
}

// New creates an empty scheduler that logs warnings to os.Stderr.
func New() *Scheduler {
	return &Scheduler{logOut: os.Stderr}
}

// SetLogOutput redirects warnings and debug stats. A nil writer discards them.
func (s *Scheduler) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.logOut = w
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick counts
// and timings are logged at every Cleanup that has work to report.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Close stops every tween, firing their OnTweenEnd events, and removes them.
// The scheduler stays usable afterwards.
func (s *Scheduler) Close() {
	s.StopAll(true)
}

// --- Starting tweens ---

// TweenPosition moves t from one position to another. Space and Mute in opts
// apply.
func (s *Scheduler) TweenPosition(t Transform, from, to mgl64.Vec3, opts Options) {
	s.startTransform(KindPosition, t, opts, &positionApplier{target: t, from: from, to: to, space: opts.Space, mute: opts.Mute})
}

// TweenRotation rotates t between two sets of Euler angles in degrees. Each
// angle is interpolated independently, so 0 to 270 turns the long way round.
// Space and Mute in opts apply.
func (s *Scheduler) TweenRotation(t Transform, from, to mgl64.Vec3, opts Options) {
	s.startTransform(KindRotation, t, opts, &rotationApplier{target: t, from: from, to: to, space: opts.Space, mute: opts.Mute})
}

// TweenScale scales t between two local scales. Mute in opts applies.
func (s *Scheduler) TweenScale(t Transform, from, to mgl64.Vec3, opts Options) {
	s.startTransform(KindScale, t, opts, &scaleApplier{target: t, from: from, to: to, mute: opts.Mute})
}

// TweenRendererColor blends the color of material slot material on r.
// ColorSpace in opts applies.
func (s *Scheduler) TweenRendererColor(r Renderer, material int, from, to Color, opts Options) {
	if !s.validTarget(KindRendererColor, r) {
		return
	}
	if material < 0 {
		s.warnf("renderer color tween: negative material index %d ignored", material)
		return
	}
	opts = s.sanitize(KindRendererColor, opts)
	key := rendererKey{renderer: r, material: material}
	p := &s.phases[opts.Phase]
	replaceTask(s, KindRendererColor, &p.rendererColor, key)
	p.rendererColor.insert(key, newTask(&rendererColorApplier{target: r, material: material, from: from, to: to, space: opts.ColorSpace}, opts))
	p.dirty = true
}

// TweenGraphicColor blends the color of g. ColorSpace in opts applies.
func (s *Scheduler) TweenGraphicColor(g Graphic, from, to Color, opts Options) {
	if !s.validTarget(KindGraphicColor, g) {
		return
	}
	opts = s.sanitize(KindGraphicColor, opts)
	p := &s.phases[opts.Phase]
	replaceTask(s, KindGraphicColor, &p.graphicColor, g)
	p.graphicColor.insert(g, newTask(&graphicColorApplier{target: g, from: from, to: to, space: opts.ColorSpace}, opts))
	p.dirty = true
}

func (s *Scheduler) startTransform(k Kind, t Transform, opts Options, a applier) {
	if !s.validTarget(k, t) {
		return
	}
	opts = s.sanitize(k, opts)
	p := &s.phases[opts.Phase]
	reg := p.transforms(k)
	replaceTask(s, k, reg, t)
	reg.insert(t, newTask(a, opts))
	p.dirty = true
}

// maxReplaceChain bounds how many tweens replaceTask finalizes for one key
// when end callbacks keep restarting it.
const maxReplaceChain = 64

// replaceTask finalizes and removes the task under key, if any, before a new
// one takes its place. Finalizing fires OnTweenEnd, which may start another
// tween on the same key; that one is finalized too, until the key is free or
// holds only finished tasks.
func replaceTask[K comparable](s *Scheduler, k Kind, r *registry[K], key K) {
	for i := 0; ; i++ {
		old := r.get(key)
		if old == nil || old.finished {
			break
		}
		if i == maxReplaceChain {
			s.warnf("%s tween: end callbacks restarted the target %d times, giving up", k, i)
			break
		}
		r.stop(key)
		s.needsCleanup = true
	}
	s.cleanup()
}

// validTarget rejects nil and non-comparable targets, which cannot key a map.
func (s *Scheduler) validTarget(k Kind, target any) bool {
	if target == nil {
		s.warnf("%s tween: nil target ignored", k)
		return false
	}
	if v := reflect.ValueOf(target); v.Kind() == reflect.Pointer && v.IsNil() {
		s.warnf("%s tween: nil %T target ignored", k, target)
		return false
	}
	if !reflect.TypeOf(target).Comparable() {
		s.warnf("%s tween: target type %T is not comparable, ignored", k, target)
		return false
	}
	return true
}

// sanitize replaces out-of-range options with their fallbacks, warning once
// per problem.
func (s *Scheduler) sanitize(k Kind, opts Options) Options {
	if opts.Phase >= phaseCount {
		s.warnf("%s tween: unknown phase %d, using %s", k, opts.Phase, PhaseUpdate)
		opts.Phase = resolvePhase(opts.Phase)
	}
	if opts.PingDuration < 0 {
		s.warnf("%s tween: negative ping duration %v, using 0", k, opts.PingDuration)
		opts.PingDuration = 0
	}
	if opts.PongDuration < 0 {
		s.warnf("%s tween: negative pong duration %v, using 0", k, opts.PongDuration)
		opts.PongDuration = 0
	}
	if opts.ColorSpace >= colorSpaceCount {
		s.warnf("%s tween: unknown color space %d, using %s", k, opts.ColorSpace, ColorSpaceRGB)
		opts.ColorSpace = ColorSpaceRGB
	}
	return opts
}

// --- Driving ---

// Advance steps every tween registered in phase by one tick of clk. Tweens
// that finish fire OnTweenEnd and are queued for the next Cleanup. Calling
// Advance from inside a tween callback is ignored.
func (s *Scheduler) Advance(phase Phase, clk Time) {
	if phase >= phaseCount {
		s.warnf("advance: unknown phase %d ignored", phase)
		return
	}
	if s.advancing {
		s.warnf("advance: re-entrant call for %s ignored", phase)
		return
	}
	p := &s.phases[phase]
	if !p.dirty {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.advancing = true
	defer func() { s.advancing = false }()
	finishedBefore := s.stats.finished
	for _, r := range p.all() {
		r.advance(clk, &s.stats)
	}

	if s.stats.finished != finishedBefore {
		s.needsCleanup = true
	}
	if s.debug {
		s.stats.advanceTime += time.Since(t0)
	}
}

// Cleanup erases finished and stopped tweens and recomputes which phases have
// work. Drivers call it once per tick after every phase has advanced. A call
// made while Advance is running is deferred to the next Cleanup.
func (s *Scheduler) Cleanup() {
	if s.advancing {
		return
	}
	s.cleanup()
	s.flushStats()
}

// cleanup does the work of Cleanup without flushing debug stats, so removals
// made mid-tick by Stop or a restart are reported with the tick they belong
// to.
func (s *Scheduler) cleanup() {
	if s.advancing || !s.needsCleanup {
		return
	}
	s.needsCleanup = false

	for i := range s.phases {
		p := &s.phases[i]
		regs := p.all()
		live := false
		for _, r := range regs {
			s.stats.removed += r.cleanup()
			if r.size() > 0 {
				live = true
			}
		}
		p.dirty = live
	}
}

// --- Control ---

// Ref identifies a tween slot: a target together with the kind of tween
// running on it. Build one with PositionOf, RotationOf, ScaleOf,
// GraphicColorOf or RendererColorOf.
type Ref struct {
	kind      Kind
	transform Transform
	graphic   Graphic
	renderer  rendererKey
}

// PositionOf refers to the position tween on t.
func PositionOf(t Transform) Ref { return Ref{kind: KindPosition, transform: t} }

// RotationOf refers to the rotation tween on t.
func RotationOf(t Transform) Ref { return Ref{kind: KindRotation, transform: t} }

// ScaleOf refers to the scale tween on t.
func ScaleOf(t Transform) Ref { return Ref{kind: KindScale, transform: t} }

// GraphicColorOf refers to the color tween on g.
func GraphicColorOf(g Graphic) Ref { return Ref{kind: KindGraphicColor, graphic: g} }

// RendererColorOf refers to the color tween on material slot material of r.
func RendererColorOf(r Renderer, material int) Ref {
	return Ref{kind: KindRendererColor, renderer: rendererKey{renderer: r, material: material}}
}

// Kind returns the kind of tween ref refers to.
func (ref Ref) Kind() Kind { return ref.kind }

func (s *Scheduler) lookup(ref Ref, phase Phase) *task {
	if phase >= phaseCount {
		s.warnf("%s lookup: unknown phase %d", ref.kind, phase)
		return nil
	}
	p := &s.phases[phase]
	switch ref.kind {
	case KindRendererColor:
		return p.rendererColor.get(ref.renderer)
	case KindGraphicColor:
		return p.graphicColor.get(ref.graphic)
	case KindPosition, KindRotation, KindScale:
		return p.transforms(ref.kind).get(ref.transform)
	default:
		s.warnf("lookup: unknown kind %d", ref.kind)
		return nil
	}
}

// Pause freezes the tween ref refers to in phase. It does nothing if there is
// no such tween.
func (s *Scheduler) Pause(ref Ref, phase Phase) {
	if t := s.lookup(ref, phase); t != nil {
		t.paused = true
	}
}

// Resume unfreezes a paused tween. It does nothing if there is no such tween.
func (s *Scheduler) Resume(ref Ref, phase Phase) {
	if t := s.lookup(ref, phase); t != nil {
		t.paused = false
	}
}

// IsRunning reports whether ref has an unfinished tween in phase. Paused
// tweens count as running. A tween that finished or was stopped reports false
// at once, even while its entry waits for the next Cleanup.
func (s *Scheduler) IsRunning(ref Ref, phase Phase) bool {
	t := s.lookup(ref, phase)
	return t != nil && !t.finished
}

// Stop finishes the tween ref refers to in phase, firing its OnTweenEnd
// before returning, and queues it for removal. With cleanupNow the removal
// happens immediately unless a tick is in progress, in which case it happens
// at that tick's Cleanup.
func (s *Scheduler) Stop(ref Ref, phase Phase, cleanupNow bool) {
	if phase >= phaseCount {
		s.warnf("%s stop: unknown phase %d", ref.kind, phase)
		return
	}
	p := &s.phases[phase]
	var stopped bool
	switch ref.kind {
	case KindRendererColor:
		stopped = p.rendererColor.stop(ref.renderer)
	case KindGraphicColor:
		stopped = p.graphicColor.stop(ref.graphic)
	case KindPosition, KindRotation, KindScale:
		stopped = p.transforms(ref.kind).stop(ref.transform)
	default:
		s.warnf("stop: unknown kind %d", ref.kind)
	}
	if !stopped {
		return
	}
	s.needsCleanup = true
	if cleanupNow {
		s.cleanup()
	}
}

// StopAll stops every tween in every phase.
func (s *Scheduler) StopAll(cleanupNow bool) {
	for i := range s.phases {
		for _, r := range s.phases[i].all() {
			if r.stopAll() {
				s.needsCleanup = true
			}
		}
	}
	if cleanupNow {
		s.cleanup()
	}
}

// Count returns the number of unfinished tweens across all phases and kinds.
func (s *Scheduler) Count() int {
	n := 0
	for i := range s.phases {
		for _, r := range s.phases[i].all() {
			n += r.running()
		}
	}
	return n
}

// Idle reports whether no phase has tweens to advance.
func (s *Scheduler) Idle() bool {
	for i := range s.phases {
		if s.phases[i].dirty {
			return false
		}
	}
	return true
}

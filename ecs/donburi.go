package ecs

import (
	"github.com/hynessight/tweener"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Boundary identifies which tween boundary produced an event.
type Boundary uint8

const (
	BoundaryTweenEnd Boundary = iota // the tween finished, was stopped or was replaced
	BoundaryPingEnd                  // a ping leg completed
	BoundaryPongEnd                  // a pong leg completed
)

func (b Boundary) String() string {
	switch b {
	case BoundaryTweenEnd:
		return "tween_end"
	case BoundaryPingEnd:
		return "ping_end"
	case BoundaryPongEnd:
		return "pong_end"
	default:
		return "unknown"
	}
}

// TweenEvent is published for every boundary of a bound tween.
type TweenEvent struct {
	Tag      string
	Entity   donburi.Entity
	Boundary Boundary
}

// TweenEventType is the Donburi event type for tween boundaries. Subscribe to
// it in your systems and drain it with ProcessEvents.
var TweenEventType = events.NewEventType[TweenEvent]()

// Bind returns a copy of cb whose events also publish TweenEvents into world.
// Nil events in cb are created, so the result always has all three set. The
// events in cb are shared, not copied: handlers already on them keep firing.
func Bind(world donburi.World, entity donburi.Entity, tag string, cb tweener.Callbacks) tweener.Callbacks {
	publish := func(b Boundary) func() {
		return func() {
			TweenEventType.Publish(world, TweenEvent{Tag: tag, Entity: entity, Boundary: b})
		}
	}
	cb.OnTweenEnd = withHandler(cb.OnTweenEnd, publish(BoundaryTweenEnd))
	cb.OnPingEnd = withHandler(cb.OnPingEnd, publish(BoundaryPingEnd))
	cb.OnPongEnd = withHandler(cb.OnPongEnd, publish(BoundaryPongEnd))
	return cb
}

func withHandler(e *tweener.Event, fn func()) *tweener.Event {
	if e == nil {
		e = &tweener.Event{}
	}
	e.Add(fn)
	return e
}

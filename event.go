package tweener

// Event is a multi-subscriber invocation list. The zero value is ready to use.
// Invoke, Len and Clear are safe on a nil *Event.
type Event struct {
	handlers []func()
}

// NewEvent returns an Event with the given handlers subscribed.
func NewEvent(handlers ...func()) *Event {
	e := &Event{}
	for _, fn := range handlers {
		e.Add(fn)
	}
	return e
}

// Add subscribes fn. Nil handlers are ignored.
func (e *Event) Add(fn func()) {
	if fn == nil {
		return
	}
	e.handlers = append(e.handlers, fn)
}

// Clear removes every handler.
func (e *Event) Clear() {
	if e == nil {
		return
	}
	clear(e.handlers)
	e.handlers = e.handlers[:0]
}

// Len returns the number of subscribed handlers.
func (e *Event) Len() int {
	if e == nil {
		return 0
	}
	return len(e.handlers)
}

// Invoke calls every handler in subscription order. Handlers added while the
// event is being invoked run on the next Invoke.
func (e *Event) Invoke() {
	if e == nil {
		return
	}
	n := len(e.handlers)
	for i := 0; i < n && i < len(e.handlers); i++ {
		e.handlers[i]()
	}
}

// Callbacks groups the events a tween fires at its boundaries. Any field may
// be nil.
type Callbacks struct {
	OnTweenEnd *Event // once, when the tween finishes or is stopped
	OnPingEnd  *Event // after every ping leg (every loop for lerp-only tweens)
	OnPongEnd  *Event // after every pong leg
}

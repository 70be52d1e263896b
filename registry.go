package tweener

import "slices"

type entry[K comparable] struct {
	key  K
	task *task
}

// registry holds the tasks of one (phase, kind) pair. live maps a target key
// to its current task; entries keeps the same tasks in start order so ticks
// advance them deterministically. Removal is deferred: finished tasks are
// queued in pending and only erased by cleanup, and cleanup erases a key only
// while it still maps to the queued task, so a replacement started in the
// meantime survives.
type registry[K comparable] struct {
	live    map[K]*task
	entries []entry[K]
	pending []entry[K]
	scratch []entry[K]
}

func (r *registry[K]) get(k K) *task {
	return r.live[k]
}

func (r *registry[K]) insert(k K, t *task) {
	if r.live == nil {
		r.live = make(map[K]*task)
	}
	r.live[k] = t
	r.entries = append(r.entries, entry[K]{key: k, task: t})
}

// stop finalizes the task under k and queues it for removal. It reports
// whether there was a task to stop.
func (r *registry[K]) stop(k K) bool {
	t := r.live[k]
	if t == nil {
		return false
	}
	t.finish()
	r.pending = append(r.pending, entry[K]{key: k, task: t})
	return true
}

// advance steps every live, unfinished task against a snapshot of the
// registry. Tasks started by callbacks during the walk are not in the snapshot
// and first advance on the next tick.
func (r *registry[K]) advance(clk Time, st *tickStats) {
	if len(r.entries) == 0 {
		return
	}
	r.scratch = append(r.scratch[:0], r.entries...)
	for _, e := range r.scratch {
		if e.task.finished || r.live[e.key] != e.task {
			continue
		}
		st.advanced++
		if e.task.advance(clk) {
			e.task.finish()
			r.pending = append(r.pending, e)
			st.finished++
		}
	}
	clear(r.scratch)
	r.scratch = r.scratch[:0]
}

// cleanup erases the queued tasks and reports how many keys were removed.
func (r *registry[K]) cleanup() int {
	if len(r.pending) == 0 {
		return 0
	}
	removed := 0
	for _, e := range r.pending {
		if t, ok := r.live[e.key]; ok && t == e.task {
			delete(r.live, e.key)
			removed++
		}
	}
	clear(r.pending)
	r.pending = r.pending[:0]

	n := 0
	for _, e := range r.entries {
		if r.live[e.key] == e.task {
			r.entries[n] = e
			n++
		}
	}
	clear(r.entries[n:])
	r.entries = r.entries[:n]
	return removed
}

// stopAll stops every live task and reports whether any was stopped.
func (r *registry[K]) stopAll() bool {
	if len(r.entries) == 0 {
		return false
	}
	// Callbacks fired by stop may re-enter the scheduler, possibly while
	// advance owns scratch, so walk a private copy.
	stopped := false
	for _, e := range slices.Clone(r.entries) {
		if r.live[e.key] != e.task || e.task.finished {
			continue
		}
		if r.stop(e.key) {
			stopped = true
		}
	}
	return stopped
}

// size counts live tasks, including finished ones awaiting cleanup.
func (r *registry[K]) size() int {
	return len(r.live)
}

// running counts live tasks that have not finished.
func (r *registry[K]) running() int {
	n := 0
	for _, t := range r.live {
		if !t.finished {
			n++
		}
	}
	return n
}

// tweenRegistry lets a phase walk its five typed registries uniformly.
type tweenRegistry interface {
	advance(clk Time, st *tickStats)
	cleanup() int
	stopAll() bool
	size() int
	running() int
}

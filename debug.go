package tweener

import (
	"fmt"
	"time"
)

// tickStats accumulates per-tick counters between two Cleanup calls. Timing is
// only measured when the scheduler is in debug mode.
type tickStats struct {
	advanced    int
	finished    int
	removed     int
	advanceTime time.Duration
}

// warnf prints a warning line. Warnings mark caller mistakes that the
// scheduler recovered from; they are printed regardless of debug mode.
func (s *Scheduler) warnf(format string, args ...any) {
	if s.logOut == nil {
		return
	}
	_, _ = fmt.Fprintf(s.logOut, "[tweener] warning: "+format+"\n", args...)
}

// flushStats prints the counters gathered since the last flush when debug
// mode is on, then resets them.
func (s *Scheduler) flushStats() {
	st := s.stats
	s.stats = tickStats{}
	if !s.debug || s.logOut == nil || (st.advanced == 0 && st.removed == 0) {
		return
	}
	_, _ = fmt.Fprintf(s.logOut,
		"[tweener] advanced: %d | finished: %d | removed: %d | running: %d | advance: %v\n",
		st.advanced, st.finished, st.removed, s.Count(), st.advanceTime)
}

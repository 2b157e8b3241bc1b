package systems

// deferred is a single pending one-shot action.
type deferred struct {
	key       string
	remaining float64
	fire      func()
}

// Scheduler runs one-shot deferred actions, used for emergency boost
// reverts. Entries are keyed; scheduling an existing key resets its timer
// but keeps the original action, so a re-triggered boost still reverts to
// the state captured when it was first applied.
type Scheduler struct {
	entries []deferred
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers fire to run after delay seconds. If key is already
// pending, only its timer is reset (replace semantics).
func (s *Scheduler) Schedule(key string, delay float64, fire func()) {
	for i := range s.entries {
		if s.entries[i].key == key {
			s.entries[i].remaining = delay
			return
		}
	}
	s.entries = append(s.entries, deferred{key: key, remaining: delay, fire: fire})
}

// Pending reports whether key has a scheduled action.
func (s *Scheduler) Pending(key string) bool {
	for i := range s.entries {
		if s.entries[i].key == key {
			return true
		}
	}
	return false
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Tick advances all timers by dt and fires expired actions. Expired entries
// are removed before firing so an action may schedule its own key again.
func (s *Scheduler) Tick(dt float64) {
	var expired []func()
	kept := s.entries[:0]
	for _, e := range s.entries {
		e.remaining -= dt
		if e.remaining <= 0 {
			expired = append(expired, e.fire)
		} else {
			kept = append(kept, e)
		}
	}
	s.entries = kept

	for _, fire := range expired {
		fire()
	}
}

package state

import "log"

// Change describes one dispatch. Seq increases by one per dispatched action
// so consumers running off the update loop can order changes.
type Change struct {
	Seq    uint64
	Before State
	After  State
	Action Action
}

// ScoreChanged reports whether the dispatch moved the score.
func (c Change) ScoreChanged() bool {
	return c.Before.Score != c.After.Score
}

// Observer is notified after every dispatch.
type Observer func(Change)

// Store is the single owner of State. It is not safe for concurrent use; the
// Bubble Tea update loop is its only caller.
type Store struct {
	current   State
	seq       uint64
	observers []Observer
}

// NewStore returns a store seeded with s.
func NewStore(s State) *Store {
	s.Score = Clamp(s.Score)
	return &Store{current: s}
}

// State returns a copy of the current state.
func (st *Store) State() State {
	return st.current
}

// Observe registers fn for all future dispatches.
func (st *Store) Observe(fn Observer) {
	if fn == nil {
		return
	}
	st.observers = append(st.observers, fn)
}

// Dispatch applies each action in order and returns the resulting state.
func (st *Store) Dispatch(actions ...Action) State {
	for _, a := range actions {
		if a == nil {
			continue
		}
		before := st.current
		st.current = Reduce(before, a)
		st.seq++
		log.Printf("debug: dispatch #%d %s screen=%s score=%d->%d", st.seq, a, st.current.Screen, before.Score, st.current.Score)
		for _, fn := range st.observers {
			fn(Change{Seq: st.seq, Before: before, After: st.current, Action: a})
		}
	}
	return st.current
}

// Navigate mounts id.
func (st *Store) Navigate(id Screen) State {
	return st.Dispatch(Navigate{To: id})
}

// CompleteOnboarding marks onboarding done and mounts home.
func (st *Store) CompleteOnboarding() State {
	return st.Dispatch(CompleteOnboarding{})
}

// ApplyDelta adds n to the score within [0,100].
func (st *Store) ApplyDelta(n int) State {
	return st.Dispatch(ApplyDelta{N: n})
}

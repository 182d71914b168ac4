package usecase

import (
	"sync"

	"jumpnjoy-ops/internal/checklist"
)

// daySession holds the reconciled state of one date plus the per-slot
// in-flight guards. The mutex serializes loads against toggles; it is never
// held across a network round-trip by Toggle, only by Load (toggles are
// rejected while a load rebuilds the state anyway).
type daySession struct {
	mu       sync.Mutex
	loaded   bool
	state    checklist.DayState
	inflight map[checklist.SlotKey]bool
}

// session returns the session for a date, creating it if needed.
func (uc *implUseCase) session(date string) *daySession {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if sess, ok := uc.sessions.Get(date); ok {
		return sess
	}
	sess := &daySession{
		state:    uc.emptyState(date),
		inflight: make(map[checklist.SlotKey]bool),
	}
	uc.sessions.Add(date, sess)
	return sess
}

// reset drops the session back to the all-unmaterialized scaffold.
// Caller holds sess.mu.
func (sess *daySession) reset(scaffold checklist.DayState) {
	sess.loaded = false
	sess.state = scaffold
}

package checklist

import "time"

// ItemDefinition is one canonical checklist row. IDs are unique within
// their checklist type.
type ItemDefinition struct {
	ID    string
	Label string
}

// TypeDefinition is one checklist phase (opening, midday, closing) with
// its ordered items. Immutable, defined at build time.
type TypeDefinition struct {
	Key         string
	Title       string
	Description string
	Color       string // accent color hint for the portal UI
	Items       []ItemDefinition
}

// SlotKey addresses one (checklist type, item) pair within a day.
type SlotKey struct {
	Type   string
	ItemID string
}

// Slot is the reconciled state of one catalog item for one date.
// BackendID == "" means no backend record exists yet; such a slot is
// always Completed == false.
type Slot struct {
	Completed   bool
	CompletedAt *time.Time
	CompletedBy string
	BackendID   string
}

// DayState is the reconciled view of a full catalog for one date. Every
// catalog (type, item) pair has exactly one slot, whether or not a backend
// record exists for it. It is rebuilt from scratch on every load, never
// merged incrementally.
type DayState struct {
	Date       string
	Slots      map[SlotKey]Slot
	LastSyncAt time.Time
}

// Clone returns a deep copy. States handed out of the engine are always
// clones so callers can never alias internal state.
func (s DayState) Clone() DayState {
	out := DayState{
		Date:       s.Date,
		Slots:      make(map[SlotKey]Slot, len(s.Slots)),
		LastSyncAt: s.LastSyncAt,
	}
	for k, v := range s.Slots {
		if v.CompletedAt != nil {
			at := *v.CompletedAt
			v.CompletedAt = &at
		}
		out.Slots[k] = v
	}
	return out
}

// --- UseCase inputs ---

// LoadInput requests the reconciled state for one date. Force discards any
// cached day session and re-reads the backend.
type LoadInput struct {
	Date  string // YYYY-MM-DD; empty means today in park time
	Force bool
}

// ToggleInput mutates exactly one slot.
type ToggleInput struct {
	Date          string // YYYY-MM-DD; empty means today in park time
	ChecklistType string
	ItemID        string
}

// ProgressInput requests per-type completion counts for one date.
type ProgressInput struct {
	Date string
}

// --- UseCase outputs ---

// LoadOutput carries the reconciled day. Initialized reports whether this
// call bootstrapped the day's backend records.
type LoadOutput struct {
	State       DayState
	Initialized bool
}

// ToggleOutput is the slot after the server confirmed the mutation.
// Created reports whether the backend record was materialized by this call.
type ToggleOutput struct {
	Slot    Slot
	Created bool
}

// TypeProgress is the completion summary for one checklist type.
type TypeProgress struct {
	Type      string
	Title     string
	Completed int
	Total     int
	Percent   float64
}

// ProgressOutput is the per-type completion summary for one date.
type ProgressOutput struct {
	Date  string
	Types []TypeProgress
}

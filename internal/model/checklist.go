package model

import "time"

// ChecklistRecord is a backend-owned checklist item row. It exists only
// once a user has initialized the day or toggled the item for the first
// time; before that the logical (date, type, item) slot has no record.
type ChecklistRecord struct {
	ID            string // opaque backend storage key
	ChecklistType string // "opening", "midday", "closing"
	ItemID        string // catalog item id, e.g. "ground_coffee"
	ItemName      string // human label snapshotted at creation
	Date          string // park-local calendar day, YYYY-MM-DD
	Completed     bool
	UpdatedAt     time.Time
	UpdatedBy     string // username of the last editor
}

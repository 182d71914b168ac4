package usecase

import (
	"fmt"
	"time"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/model"
)

const dateLayout = "2006-01-02"

// resolveDate validates a YYYY-MM-DD date. Empty and the literal "today"
// resolve to the current park-local date.
func (uc *implUseCase) resolveDate(raw string) (string, error) {
	if raw == "" || raw == "today" {
		return uc.now().In(uc.loc).Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", fmt.Errorf("%q: %w", raw, checklist.ErrInvalidDate)
	}
	return raw, nil
}

// emptyState builds the all-false scaffold covering the full catalog:
// every (type, item) pair present, nothing materialized.
func (uc *implUseCase) emptyState(date string) checklist.DayState {
	state := checklist.DayState{
		Date:  date,
		Slots: make(map[checklist.SlotKey]checklist.Slot, uc.catalog.Len()),
	}
	for _, t := range uc.catalog.Types() {
		for _, item := range t.Items {
			state.Slots[checklist.SlotKey{Type: t.Key, ItemID: item.ID}] = checklist.Slot{}
		}
	}
	return state
}

// slotFromRecord maps a backend record to slot state. Server values are
// authoritative; completion metadata is only carried for completed items.
func slotFromRecord(rec model.ChecklistRecord) checklist.Slot {
	slot := checklist.Slot{
		Completed: rec.Completed,
		BackendID: rec.ID,
	}
	if rec.Completed {
		if !rec.UpdatedAt.IsZero() {
			at := rec.UpdatedAt
			slot.CompletedAt = &at
		}
		slot.CompletedBy = rec.UpdatedBy
	}
	return slot
}

func cloneSlot(s checklist.Slot) checklist.Slot {
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		s.CompletedAt = &at
	}
	return s
}

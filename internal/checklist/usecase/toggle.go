package usecase

import (
	"context"
	"fmt"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/repository"
	"jumpnjoy-ops/internal/model"
)

// Toggle mutates exactly one slot: snapshot, optimistic flip, backend
// round-trip, then either overwrite with server truth or restore the
// snapshot exactly. Toggles on the same slot are serialized by a per-slot
// in-flight guard; the rollback logic assumes no interleaving mutation.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input checklist.ToggleInput) (checklist.ToggleOutput, error) {
	if sc.IsAnonymous() {
		return checklist.ToggleOutput{}, checklist.ErrNoUser
	}

	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return checklist.ToggleOutput{}, err
	}

	item, ok := uc.catalog.Item(input.ChecklistType, input.ItemID)
	if !ok {
		return checklist.ToggleOutput{}, fmt.Errorf("%s.%s: %w", input.ChecklistType, input.ItemID, checklist.ErrUnknownItem)
	}

	sess := uc.session(date)

	sess.mu.Lock()
	loaded := sess.loaded
	sess.mu.Unlock()
	if !loaded {
		if _, err := uc.Load(ctx, sc, checklist.LoadInput{Date: date}); err != nil {
			return checklist.ToggleOutput{}, err
		}
	}

	key := checklist.SlotKey{Type: input.ChecklistType, ItemID: input.ItemID}

	// Snapshot and optimistic flip, visible to readers before any network
	// round-trip completes.
	sess.mu.Lock()
	if sess.inflight[key] {
		sess.mu.Unlock()
		return checklist.ToggleOutput{}, fmt.Errorf("%s.%s: %w", key.Type, key.ItemID, checklist.ErrToggleInFlight)
	}
	sess.inflight[key] = true

	prev := sess.state.Slots[key]
	next := prev
	next.Completed = !prev.Completed
	if next.Completed {
		at := uc.now()
		next.CompletedAt = &at
		next.CompletedBy = sc.Username
	} else {
		next.CompletedAt = nil
		next.CompletedBy = ""
	}
	sess.state.Slots[key] = next
	sess.mu.Unlock()

	defer func() {
		sess.mu.Lock()
		delete(sess.inflight, key)
		sess.mu.Unlock()
	}()

	rec, created, err := uc.syncSlot(ctx, date, key.Type, item, prev.BackendID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		// Full rollback, never a partial correction.
		sess.state.Slots[key] = prev
		uc.l.Warnf(ctx, "checklist: toggle %s.%s on %s rolled back: %v", key.Type, key.ItemID, date, err)
		return checklist.ToggleOutput{}, fmt.Errorf("toggle %s.%s: %w", key.Type, key.ItemID, err)
	}

	// Server truth wins over the optimistic guess; another user may have
	// toggled the same item in the interim.
	confirmed := slotFromRecord(rec)
	sess.state.Slots[key] = confirmed

	uc.l.Infof(ctx, "checklist: %s toggled %s.%s on %s to %t (created=%t)", sc.Username, key.Type, key.ItemID, date, confirmed.Completed, created)
	return checklist.ToggleOutput{Slot: cloneSlot(confirmed), Created: created}, nil
}

// syncSlot performs the backend mutation. An unmaterialized slot takes the
// two-step path: single-item batch create, then toggle of the created
// record — the backend has no create-and-set-completed primitive.
func (uc *implUseCase) syncSlot(ctx context.Context, date, typeKey string, item checklist.ItemDefinition, backendID string) (model.ChecklistRecord, bool, error) {
	if backendID != "" {
		rec, err := uc.repo.Toggle(ctx, backendID)
		return rec, false, err
	}

	created, err := uc.repo.CreateBatch(ctx, []repository.CreateRecordOptions{{
		ChecklistType: typeKey,
		ItemID:        item.ID,
		ItemName:      item.Label,
		Date:          date,
	}})
	if err != nil {
		return model.ChecklistRecord{}, false, err
	}
	if len(created) == 0 {
		return model.ChecklistRecord{}, false, repository.ErrPartialBatch
	}

	rec, err := uc.repo.Toggle(ctx, created[0].ID)
	return rec, true, err
}

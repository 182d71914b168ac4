package usecase

import (
	"context"
	"fmt"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/repository"
	"jumpnjoy-ops/internal/model"
)

// Load reconciles the catalog against the backend store for one date.
//
// The cycle per date: fetch; if records exist, map them onto a freshly
// built all-false scaffold; if none exist, bootstrap the day with one batch
// create covering the entire catalog, then map the created records. A
// cached loaded session satisfies non-forced loads without touching the
// network; Force discards it and rebuilds the whole state from the server,
// never merging incrementally.
func (uc *implUseCase) Load(ctx context.Context, sc model.Scope, input checklist.LoadInput) (checklist.LoadOutput, error) {
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return checklist.LoadOutput{}, err
	}

	sess := uc.session(date)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.loaded && !input.Force {
		return checklist.LoadOutput{State: sess.state.Clone()}, nil
	}

	records, err := uc.repo.FetchForDate(ctx, date)
	if err != nil {
		sess.reset(uc.emptyState(date))
		return checklist.LoadOutput{}, fmt.Errorf("load checklists for %s: %w", date, err)
	}

	initialized := false
	if len(records) == 0 {
		uc.l.Infof(ctx, "checklist: no records for %s, initializing %d items", date, uc.catalog.Len())
		records, err = uc.repo.CreateBatch(ctx, uc.fullCatalogOptions(date))
		if err != nil {
			sess.reset(uc.emptyState(date))
			return checklist.LoadOutput{}, fmt.Errorf("initialize checklists for %s: %w", date, err)
		}
		initialized = true
	}

	state := uc.emptyState(date)
	uc.applyRecords(ctx, &state, records)
	state.LastSyncAt = uc.now()

	sess.state = state
	sess.loaded = true

	uc.l.Infof(ctx, "checklist: loaded %s (%d records, initialized=%t)", date, len(records), initialized)
	return checklist.LoadOutput{State: state.Clone(), Initialized: initialized}, nil
}

// fullCatalogOptions is the batch payload materializing every catalog item
// of every type for one date.
func (uc *implUseCase) fullCatalogOptions(date string) []repository.CreateRecordOptions {
	opts := make([]repository.CreateRecordOptions, 0, uc.catalog.Len())
	for _, t := range uc.catalog.Types() {
		for _, item := range t.Items {
			opts = append(opts, repository.CreateRecordOptions{
				ChecklistType: t.Key,
				ItemID:        item.ID,
				ItemName:      item.Label,
				Date:          date,
			})
		}
	}
	return opts
}

// applyRecords maps backend records onto their catalog slots. Records with
// no catalog slot are logged and ignored so a catalog revision cannot break
// loading; catalog slots without a record stay unmaterialized.
func (uc *implUseCase) applyRecords(ctx context.Context, state *checklist.DayState, records []model.ChecklistRecord) {
	for _, rec := range records {
		key := checklist.SlotKey{Type: rec.ChecklistType, ItemID: rec.ItemID}
		if _, ok := state.Slots[key]; !ok {
			uc.l.Warnf(ctx, "checklist: record %s (%s.%s) has no catalog slot, ignoring", rec.ID, rec.ChecklistType, rec.ItemID)
			continue
		}
		state.Slots[key] = slotFromRecord(rec)
	}
}

package usecase

import (
	"context"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/model"
)

// Progress summarizes completion per checklist type for one date, loading
// (or bootstrapping) the day first if needed.
func (uc *implUseCase) Progress(ctx context.Context, sc model.Scope, input checklist.ProgressInput) (checklist.ProgressOutput, error) {
	loaded, err := uc.Load(ctx, sc, checklist.LoadInput{Date: input.Date})
	if err != nil {
		return checklist.ProgressOutput{}, err
	}

	out := checklist.ProgressOutput{Date: loaded.State.Date}
	for _, t := range uc.catalog.Types() {
		completed := 0
		for _, item := range t.Items {
			if loaded.State.Slots[checklist.SlotKey{Type: t.Key, ItemID: item.ID}].Completed {
				completed++
			}
		}

		percent := 0.0
		if len(t.Items) > 0 {
			percent = float64(completed) / float64(len(t.Items)) * 100
		}

		out.Types = append(out.Types, checklist.TypeProgress{
			Type:      t.Key,
			Title:     t.Title,
			Completed: completed,
			Total:     len(t.Items),
			Percent:   percent,
		})
	}
	return out, nil
}

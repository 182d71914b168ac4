package checklist

import (
	"context"

	"jumpnjoy-ops/internal/model"
)

// UseCase is the checklist synchronization engine.
type UseCase interface {
	// Load reconciles the catalog against the backend store for one date,
	// bootstrapping the day's records when none exist yet.
	Load(ctx context.Context, sc model.Scope, input LoadInput) (LoadOutput, error)

	// Toggle optimistically flips one slot, materializing its backend
	// record first if needed, and rolls back fully on failure.
	Toggle(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)

	// Progress summarizes completion per checklist type for one date.
	Progress(ctx context.Context, sc model.Scope, input ProgressInput) (ProgressOutput, error)
}

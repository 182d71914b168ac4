package repository

import (
	"context"

	"jumpnjoy-ops/internal/model"
)

// ChecklistRepository is the interface to the portal backend's
// checklist-items resource.
type ChecklistRepository interface {
	// FetchForDate lists every record for one park-local calendar day.
	// An empty slice is a valid success: no records exist for the day yet.
	FetchForDate(ctx context.Context, date string) ([]model.ChecklistRecord, error)

	// CreateBatch materializes backend records for the given slots. It is
	// atomic from the caller's perspective: either every requested record
	// exists afterward or the call fails. A response carrying fewer records
	// than requested is reported as ErrPartialBatch and is retryable.
	CreateBatch(ctx context.Context, opts []CreateRecordOptions) ([]model.ChecklistRecord, error)

	// Toggle flips completion server-side and returns the authoritative
	// record. The result is not assumed to be the logical negation of the
	// prior value; another user may have edited the item concurrently.
	Toggle(ctx context.Context, backendID string) (model.ChecklistRecord, error)
}

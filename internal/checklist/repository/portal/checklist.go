package portal

import (
	"context"
	"fmt"
	"time"

	"jumpnjoy-ops/internal/checklist/repository"
	"jumpnjoy-ops/internal/model"
	pkgLog "jumpnjoy-ops/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a checklist repository backed by the portal API client.
func New(client *Client, l pkgLog.Logger) repository.ChecklistRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) FetchForDate(ctx context.Context, date string) ([]model.ChecklistRecord, error) {
	records, err := r.client.ListItems(ctx, date)
	if err != nil {
		r.l.Errorf(ctx, "portal repository: list for %s failed: %v", date, err)
		return nil, err
	}

	out := make([]model.ChecklistRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, r.toModel(rec))
	}
	return out, nil
}

func (r *implRepository) CreateBatch(ctx context.Context, opts []repository.CreateRecordOptions) ([]model.ChecklistRecord, error) {
	req := CreateBatchRequest{Items: make([]BatchItem, 0, len(opts))}
	for _, opt := range opts {
		req.Items = append(req.Items, BatchItem{
			ChecklistType: opt.ChecklistType,
			ItemID:        opt.ItemID,
			ItemName:      opt.ItemName,
			Date:          opt.Date,
		})
	}

	created, err := r.client.CreateBatch(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "portal repository: batch create of %d items failed: %v", len(opts), err)
		return nil, err
	}

	if len(created) < len(opts) {
		r.l.Errorf(ctx, "portal repository: batch create incomplete: requested %d, created %d", len(opts), len(created))
		return nil, fmt.Errorf("requested %d, got %d: %w", len(opts), len(created), repository.ErrPartialBatch)
	}

	out := make([]model.ChecklistRecord, 0, len(created))
	for _, rec := range created {
		out = append(out, r.toModel(rec))
	}
	return out, nil
}

func (r *implRepository) Toggle(ctx context.Context, backendID string) (model.ChecklistRecord, error) {
	rec, err := r.client.ToggleItem(ctx, backendID)
	if err != nil {
		r.l.Errorf(ctx, "portal repository: toggle %s failed: %v", backendID, err)
		return model.ChecklistRecord{}, err
	}
	return r.toModel(rec), nil
}

func (r *implRepository) toModel(rec Record) model.ChecklistRecord {
	// updated_by_name is the serializer's display name; fall back to
	// whatever shape updated_by arrived in.
	updatedBy := rec.UpdatedByName
	if updatedBy == "" {
		updatedBy = rec.UpdatedBy.Username
	}

	return model.ChecklistRecord{
		ID:            rec.ID.String(),
		ChecklistType: rec.ChecklistType,
		ItemID:        rec.ItemID,
		ItemName:      rec.ItemName,
		Date:          rec.Date,
		Completed:     rec.Completed,
		UpdatedAt:     parseTimestamp(rec.UpdatedAt),
		UpdatedBy:     updatedBy,
	}
}

// parseTimestamp accepts the timestamp shapes the backend has emitted.
// A zero time is returned for blanks and unparseable values; the engine
// treats it as "no completion time recorded".
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

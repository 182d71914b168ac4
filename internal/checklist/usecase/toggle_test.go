package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/catalog"
	"jumpnjoy-ops/internal/checklist/usecase"
	"jumpnjoy-ops/internal/model"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an authenticated user", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		_, err := uc.Toggle(ctx, model.Scope{}, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if !errors.Is(err, checklist.ErrNoUser) {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
		if repo.fetchCalls+repo.createCalls+repo.toggleCalls != 0 {
			t.Error("anonymous toggle must not reach the backend")
		}
	})

	t.Run("rejects items outside the catalog", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		_, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "polish_unicorns",
		})
		if !errors.Is(err, checklist.ErrUnknownItem) {
			t.Errorf("expected ErrUnknownItem, got %v", err)
		}
	})

	t.Run("backed item toggles with a single call", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "ground_coffee", Date: testDate,
		})
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		if _, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created {
			t.Error("backed item must not report Created")
		}
		if repo.createCalls != 0 || repo.toggleCalls != 1 {
			t.Errorf("expected 0 creates / 1 toggle, got %d / %d", repo.createCalls, repo.toggleCalls)
		}
		if !out.Slot.Completed || out.Slot.BackendID != "b-1" {
			t.Errorf("unexpected slot: %+v", out.Slot)
		}
		if out.Slot.CompletedBy != "mock-server" {
			t.Errorf("server truth must win for CompletedBy, got %q", out.Slot.CompletedBy)
		}
	})

	t.Run("lazy materialization creates then toggles", func(t *testing.T) {
		repo := newMockRepo()
		// Day exists but ground_coffee was never materialized.
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "open_cafe_till", Date: testDate,
		})
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		if _, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created {
			t.Error("expected Created=true for lazy materialization")
		}
		if repo.createCalls != 1 || repo.toggleCalls != 1 {
			t.Fatalf("expected exactly 1 create and 1 toggle, got %d / %d", repo.createCalls, repo.toggleCalls)
		}
		if len(repo.batches[0]) != 1 || repo.batches[0][0].ItemID != "ground_coffee" {
			t.Errorf("expected single-item batch for ground_coffee, got %+v", repo.batches[0])
		}
		if repo.batches[0][0].ItemName != "Ground coffee" {
			t.Errorf("batch must carry the catalog label, got %q", repo.batches[0][0].ItemName)
		}
		if !out.Slot.Completed || out.Slot.BackendID == "" {
			t.Errorf("expected completed slot with backend id, got %+v", out.Slot)
		}
	})

	t.Run("rollback restores the exact previous slot", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "ground_coffee",
			Date: testDate, Completed: true, UpdatedAt: serverTime, UpdatedBy: "bob",
		})
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		loaded, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		key := checklist.SlotKey{Type: "opening", ItemID: "ground_coffee"}
		before := loaded.State.Slots[key]

		repo.mu.Lock()
		repo.toggleErr = errors.New("request timed out")
		repo.mu.Unlock()

		if _, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		}); err == nil {
			t.Fatal("expected toggle error")
		}

		after, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(after.State.Slots[key], before) {
			t.Errorf("slot not restored exactly:\nbefore %+v\nafter  %+v", before, after.State.Slots[key])
		}
	})

	t.Run("rollback after create failure leaves slot unmaterialized", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "open_cafe_till", Date: testDate,
		})
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		if _, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.mu.Lock()
		repo.createErr = errors.New("server exploded")
		repo.mu.Unlock()

		if _, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		}); err == nil {
			t.Fatal("expected toggle error")
		}

		after, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		slot := after.State.Slots[checklist.SlotKey{Type: "opening", ItemID: "ground_coffee"}]
		if slot.BackendID != "" || slot.Completed || slot.CompletedAt != nil || slot.CompletedBy != "" {
			t.Errorf("expected pristine slot after rollback, got %+v", slot)
		}

		// Sibling slots untouched.
		sibling := after.State.Slots[checklist.SlotKey{Type: "opening", ItemID: "open_cafe_till"}]
		if sibling.BackendID != "b-1" {
			t.Errorf("sibling slot corrupted: %+v", sibling)
		}
	})

	t.Run("server truth overrides the optimistic flip", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "ground_coffee", Date: testDate,
		})
		// Another user un-completed the item concurrently: the server
		// responds completed=false even though we flipped to true.
		repo.toggleResult = &model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "ground_coffee",
			Date: testDate, Completed: false, UpdatedAt: serverTime, UpdatedBy: "carol",
		}
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		if _, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Slot.Completed {
			t.Error("server completed=false must win over optimistic true")
		}
		if out.Slot.CompletedAt != nil || out.Slot.CompletedBy != "" {
			t.Errorf("uncompleted slot must carry no completion metadata: %+v", out.Slot)
		}
	})

	t.Run("second toggle on the same in-flight item is rejected", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.ChecklistRecord{
			ID: "b-1", ChecklistType: "opening", ItemID: "ground_coffee", Date: testDate,
		})
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		if _, err := uc.Load(ctx, staff, checklist.LoadInput{Date: testDate}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.mu.Lock()
		repo.toggleEntered = make(chan struct{})
		repo.toggleRelease = make(chan struct{})
		repo.mu.Unlock()

		done := make(chan error, 1)
		go func() {
			_, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
				Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
			})
			done <- err
		}()

		<-repo.toggleEntered // first toggle is now blocked mid-flight

		_, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if !errors.Is(err, checklist.ErrToggleInFlight) {
			t.Errorf("expected ErrToggleInFlight, got %v", err)
		}

		close(repo.toggleRelease)
		if err := <-done; err != nil {
			t.Errorf("first toggle should complete: %v", err)
		}
	})

	t.Run("toggle without prior load auto-loads the day", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(&mockLogger{}, catalog.Cafe(), repo, time.UTC)

		out, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
			Date: testDate, ChecklistType: "opening", ItemID: "ground_coffee",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Empty day: the auto-load bootstraps all 22 items, so the toggle
		// finds a backend id and skips the single-item create.
		if repo.createCalls != 1 || len(repo.batches[0]) != 22 {
			t.Errorf("expected one bootstrap batch, got %d calls", repo.createCalls)
		}
		if repo.toggleCalls != 1 {
			t.Errorf("expected 1 toggle, got %d", repo.toggleCalls)
		}
		if !out.Slot.Completed {
			t.Errorf("expected completed slot, got %+v", out.Slot)
		}
	})
}

// TestOpeningScenario walks the concrete two-item flow end to end: empty
// remote store, bootstrap, then one toggle.
func TestOpeningScenario(t *testing.T) {
	ctx := context.Background()

	cat := catalog.New("test-cafe", "0",
		checklist.TypeDefinition{
			Key:   "opening",
			Title: "Opening Checklist",
			Items: []checklist.ItemDefinition{
				{ID: "ground_coffee", Label: "Ground coffee"},
				{ID: "open_till", Label: "Open till"},
			},
		},
	)

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, cat, repo, time.UTC)

	loaded, err := uc.Load(ctx, staff, checklist.LoadInput{Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createCalls != 1 || len(repo.batches[0]) != 2 {
		t.Fatalf("expected one two-item batch create, got %d calls", repo.createCalls)
	}
	for key, slot := range loaded.State.Slots {
		if slot.Completed || slot.BackendID == "" {
			t.Errorf("slot %v: expected materialized and uncompleted, got %+v", key, slot)
		}
	}

	out, err := uc.Toggle(ctx, staff, checklist.ToggleInput{
		Date: "2024-03-01", ChecklistType: "opening", ItemID: "ground_coffee",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.toggleCalls != 1 {
		t.Errorf("expected exactly 1 toggle call, got %d", repo.toggleCalls)
	}
	if !out.Slot.Completed {
		t.Error("ground_coffee should be completed")
	}

	after, err := uc.Load(ctx, staff, checklist.LoadInput{Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	till := after.State.Slots[checklist.SlotKey{Type: "opening", ItemID: "open_till"}]
	if till.Completed {
		t.Error("open_till must be unchanged")
	}
}

package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jumpnjoy-ops/internal/checklist/repository"
	"jumpnjoy-ops/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any) {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any) {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Warn(ctx context.Context, args ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Error(ctx context.Context, args ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any) {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any) {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any) {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// serverTime is the fixed timestamp the mock backend stamps on toggles.
var serverTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

// mockRepo is an in-memory checklist backend.
type mockRepo struct {
	mu     sync.Mutex
	byDate map[string][]model.ChecklistRecord
	nextID int

	fetchErr  error
	createErr error
	toggleErr error

	// toggleResult overrides the record a Toggle call returns, simulating
	// a concurrent edit by another user.
	toggleResult *model.ChecklistRecord

	fetchCalls  int
	createCalls int
	toggleCalls int
	batches     [][]repository.CreateRecordOptions

	// When set, Toggle signals entry and blocks until released. Used to
	// test the per-slot in-flight guard.
	toggleEntered chan struct{}
	toggleRelease chan struct{}
}

func newMockRepo() *mockRepo {
	return &mockRepo{byDate: make(map[string][]model.ChecklistRecord)}
}

// seed inserts a pre-existing backend record.
func (m *mockRepo) seed(rec model.ChecklistRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byDate[rec.Date] = append(m.byDate[rec.Date], rec)
}

func (m *mockRepo) FetchForDate(ctx context.Context, date string) ([]model.ChecklistRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return append([]model.ChecklistRecord{}, m.byDate[date]...), nil
}

func (m *mockRepo) CreateBatch(ctx context.Context, opts []repository.CreateRecordOptions) ([]model.ChecklistRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.batches = append(m.batches, opts)
	if m.createErr != nil {
		return nil, m.createErr
	}

	out := make([]model.ChecklistRecord, 0, len(opts))
	for _, opt := range opts {
		m.nextID++
		rec := model.ChecklistRecord{
			ID:            fmt.Sprintf("cl-%d", m.nextID),
			ChecklistType: opt.ChecklistType,
			ItemID:        opt.ItemID,
			ItemName:      opt.ItemName,
			Date:          opt.Date,
			Completed:     false,
		}
		m.byDate[opt.Date] = append(m.byDate[opt.Date], rec)
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockRepo) Toggle(ctx context.Context, backendID string) (model.ChecklistRecord, error) {
	m.mu.Lock()
	m.toggleCalls++
	entered, release := m.toggleEntered, m.toggleRelease
	m.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.toggleErr != nil {
		return model.ChecklistRecord{}, m.toggleErr
	}
	if m.toggleResult != nil {
		return *m.toggleResult, nil
	}

	for date, recs := range m.byDate {
		for i, rec := range recs {
			if rec.ID == backendID {
				rec.Completed = !rec.Completed
				rec.UpdatedAt = serverTime
				rec.UpdatedBy = "mock-server"
				m.byDate[date][i] = rec
				return rec, nil
			}
		}
	}
	return model.ChecklistRecord{}, fmt.Errorf("no record with id %s", backendID)
}

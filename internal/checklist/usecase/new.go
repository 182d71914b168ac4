package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"jumpnjoy-ops/internal/checklist/catalog"
	"jumpnjoy-ops/internal/checklist/repository"
	pkgLog "jumpnjoy-ops/pkg/log"
)

const (
	// Day sessions are cheap; the cache only needs to hold the handful of
	// dates staff actually look at. TTL slightly beyond a day so a session
	// survives its own calendar date.
	sessionCacheSize = 16
	sessionTTL       = 26 * time.Hour
)

type implUseCase struct {
	l        pkgLog.Logger
	catalog  *catalog.Catalog
	repo     repository.ChecklistRepository
	loc      *time.Location
	now      func() time.Time
	mu       sync.Mutex // guards session get-or-create
	sessions *expirable.LRU[string, *daySession]
}

// New creates a checklist synchronization engine over one catalog and its
// backend resource. loc is the park-local timezone used to resolve "today";
// stored dates are naive calendar days and are never converted.
func New(l pkgLog.Logger, cat *catalog.Catalog, repo repository.ChecklistRepository, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:        l,
		catalog:  cat,
		repo:     repo,
		loc:      loc,
		now:      time.Now,
		sessions: expirable.NewLRU[string, *daySession](sessionCacheSize, nil, sessionTTL),
	}
}

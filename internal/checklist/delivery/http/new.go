package http

import (
	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/catalog"
	pkgLog "jumpnjoy-ops/pkg/log"
)

// Resource bundles one checklist engine with its catalog for presentation.
type Resource struct {
	UseCase checklist.UseCase
	Catalog *catalog.Catalog
}

type handler struct {
	l         pkgLog.Logger
	resources map[string]Resource // keyed by URL segment: "cafe", "marshal"
}

// New creates the HTTP handler serving all checklist resources.
func New(l pkgLog.Logger, resources map[string]Resource) *handler {
	return &handler{
		l:         l,
		resources: resources,
	}
}

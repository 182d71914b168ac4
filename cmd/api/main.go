package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jumpnjoy-ops/config"
	_ "jumpnjoy-ops/docs" // Swagger docs
	"jumpnjoy-ops/internal/checklist/catalog"
	checklistHTTP "jumpnjoy-ops/internal/checklist/delivery/http"
	"jumpnjoy-ops/internal/checklist/repository/portal"
	"jumpnjoy-ops/internal/checklist/usecase"
	"jumpnjoy-ops/internal/httpserver"
	"jumpnjoy-ops/internal/middleware"
	"jumpnjoy-ops/pkg/log"
)

// @title       Jump'n'Joy Ops API
// @description Daily checklist synchronization for trampoline park operations.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jump'n'Joy Ops...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Portal URL: %s", cfg.Portal.BaseURL)

	// 3. Park-local timezone: "today" is resolved in park time, not UTC.
	loc, err := time.LoadLocation(cfg.Checklist.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Checklist.Timezone, err)
		loc = time.UTC
	}

	// 4. Checklist domain: one engine per portal resource.
	cafeClient := portal.NewClient(cfg.Portal.BaseURL, cfg.Portal.CafeResource, cfg.Portal.AuthToken)
	cafeRepo := portal.New(cafeClient, logger)
	cafeCatalog := catalog.Cafe()
	cafeUC := usecase.New(logger, cafeCatalog, cafeRepo, loc)

	marshalClient := portal.NewClient(cfg.Portal.BaseURL, cfg.Portal.MarshalResource, cfg.Portal.AuthToken)
	marshalRepo := portal.New(marshalClient, logger)
	marshalCatalog := catalog.Marshal()
	marshalUC := usecase.New(logger, marshalCatalog, marshalRepo, loc)

	resources := map[string]checklistHTTP.Resource{
		"cafe":    {UseCase: cafeUC, Catalog: cafeCatalog},
		"marshal": {UseCase: marshalUC, Catalog: marshalCatalog},
	}

	// 5. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Middleware:         mw,
		ChecklistResources: resources,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

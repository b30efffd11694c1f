// Package app wires configuration, stores, the content catalog and the HTTP
// surface into one runnable application.
package app

import (
	"context"
	"fmt"
	"strings"

	"sigdesk/internal/config"
	"sigdesk/internal/content"
	"sigdesk/internal/dealplan"
	"sigdesk/internal/enrich"
	"sigdesk/internal/feed"
	"sigdesk/internal/logger"
	"sigdesk/internal/objection"
	"sigdesk/internal/store/gormstore"
	"sigdesk/internal/store/promolog"
	httpapi "sigdesk/internal/transport/http"

	"golang.org/x/sync/errgroup"
)

// App owns the component graph and its lifecycle.
type App struct {
	cfg     *config.Config
	catalog *content.Catalog
	server  *httpapi.Server

	planStore *gormstore.GormStore
	audit     *promolog.Store
}

// NewApp builds the application from config without starting it.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	a := &App{cfg: cfg}

	catalog, err := content.NewCatalog(cfg.Content.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("loading content catalog failed: %w", err)
	}
	a.catalog = catalog

	library, err := objection.LoadFile(cfg.Objections.Path)
	if err != nil {
		return nil, fmt.Errorf("loading objection library failed: %w", err)
	}

	repo, err := a.buildPlanRepository()
	if err != nil {
		return nil, err
	}

	var audit dealplan.AuditLog
	if strings.TrimSpace(cfg.Store.AuditLogPath) != "" {
		store, err := promolog.Open(cfg.Store.AuditLogPath)
		if err != nil {
			return nil, fmt.Errorf("opening promotion audit log failed: %w", err)
		}
		a.audit = store
		audit = store
	}

	plans := dealplan.NewService(repo, audit)
	enricher := enrich.New(library, cfg.App.OrgID)
	aggregator := feed.New(catalog)

	api := httpapi.NewRouter(aggregator, plans, enricher, a.audit)
	server, err := httpapi.NewServer(cfg.App.HTTPAddr, api)
	if err != nil {
		return nil, err
	}
	a.server = server

	snap := catalog.Snapshot()
	logger.Infof("sigdesk initialized (env=%s store=%s, %d stories, %d voices, %d winwires)",
		cfg.App.Env, cfg.Store.Driver, len(snap.Stories), len(snap.Voices), len(snap.Winwires))
	return a, nil
}

func (a *App) buildPlanRepository() (dealplan.Repository, error) {
	switch strings.ToLower(strings.TrimSpace(a.cfg.Store.Driver)) {
	case "sqlite":
		store, err := gormstore.NewGormStore(a.cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("opening deal plan store failed: %w", err)
		}
		a.planStore = store
		return store, nil
	default:
		return dealplan.NewMemoryRepository(), nil
	}
}

// Run serves HTTP (and the content watcher when enabled) until ctx ends.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	defer a.close()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.server.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	if a.cfg.Content.Watch {
		group.Go(func() error {
			return a.catalog.Watch(ctx)
		})
	}
	logger.Infof("listening on %s", a.server.Addr())
	return group.Wait()
}

func (a *App) close() {
	if a.audit != nil {
		if err := a.audit.Close(); err != nil {
			logger.Warnf("closing audit log failed: %v", err)
		}
	}
	if a.planStore != nil {
		if err := a.planStore.Close(); err != nil {
			logger.Warnf("closing deal plan store failed: %v", err)
		}
	}
}

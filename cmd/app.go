package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"campaign-sync/internal/adapter/platform"
	"campaign-sync/internal/adapter/platform/mock"
	"campaign-sync/internal/adapter/platform/reddit"
	"campaign-sync/internal/adapter/postgres"
	"campaign-sync/internal/adapter/sqlite"
	"campaign-sync/internal/adapter/usecase"
	"campaign-sync/internal/config"
	"campaign-sync/internal/config/configs"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/validation"
	"campaign-sync/internal/db"
	"campaign-sync/internal/metrics"
)

// store is what both repository backends provide.
type store interface {
	port.Store
	db.SetWriter
}

// app holds everything the subcommands share.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	store    store
	registry *platform.Registry
	defaults *validation.Defaults
	metrics  *metrics.Metrics
	promReg  *prometheus.Registry
	closers  []func()
}

// newApp builds the shared dependencies from cfg. The caller must Close it.
func newApp(ctx context.Context, cfg config.Config) (_ *app, err error) {
	out := cfg.Log.Output()
	a := &app{
		cfg:      cfg,
		logger:   cfg.Log.NewLogger(out).With(slog.String("env", cfg.Env)),
		defaults: validation.NewDefaults(nil),
		promReg:  prometheus.NewRegistry(),
	}
	if c, ok := out.(io.Closer); ok {
		a.closers = append(a.closers, func() { _ = c.Close() })
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.New(a.promReg)

	if err = a.openStore(ctx); err != nil {
		return nil, err
	}
	if err = a.registerAdapters(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.Store.Driver {
	case configs.StorePostgres:
		if a.cfg.Psql.RunMigrations {
			v, err := db.Migrate(a.cfg.Psql.Addr.String())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully", slog.Uint64("version", uint64(v)))
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.store = postgres.NewCampaignSetRepository(pool)
	case configs.StoreSQLite:
		conn, err := db.OpenSQLite(ctx, a.cfg.Store.SQLitePath)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		a.store = sqlite.NewCampaignSetRepository(conn)
	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
	a.logger.Debug("store opened", slog.String("driver", a.cfg.Store.Driver))
	return nil
}

// registerAdapters registers the mock adapter for every configured mock
// platform and then the real Reddit adapter when enabled, which wins over a
// mock of the same name.
func (a *app) registerAdapters() error {
	a.registry = platform.NewRegistry()
	for _, name := range a.cfg.Mock.Platforms {
		p := domain.NormalizePlatform(name)
		if p == "" {
			continue
		}
		a.registry.Register(p, mock.New(mock.Config{
			Platform:    p,
			FailureRate: a.cfg.Mock.FailureRate,
			Seed:        a.cfg.Mock.Seed,
			Logger:      a.logger,
		}))
	}

	if a.cfg.Reddit.Enabled {
		rc := a.cfg.Reddit
		adapter, err := reddit.New(reddit.Config{
			BaseURL:             rc.BaseURL,
			AccountID:           rc.AccountID,
			Timeout:             rc.Timeout,
			FundingInstrumentID: rc.FundingInstrumentID,
		}, reddit.StaticToken(rc.AccessToken), a.defaults, a.logger)
		if err != nil {
			return err
		}
		a.registry.Register(domain.PlatformReddit, adapter)
	}

	a.logger.Debug("platform adapters registered", slog.Any("platforms", a.registry.Platforms()))
	return nil
}

func (a *app) syncService(reporter port.ProgressReporter) *usecase.SyncService {
	return usecase.NewSyncService(a.store, a.registry,
		usecase.WithProgressReporter(reporter),
		usecase.WithSyncMetrics(a.metrics),
		usecase.WithSyncLogger(a.logger),
		usecase.WithAdapterTimeout(a.cfg.Sync.AdapterTimeout),
	)
}

func (a *app) reconciler() *usecase.Reconciler {
	return usecase.NewReconciler(a.store, a.registry,
		usecase.WithReconcileMetrics(a.metrics),
		usecase.WithReconcileLogger(a.logger),
		usecase.WithFetchTimeout(a.cfg.Sync.FetchTimeout),
	)
}

func (a *app) validationService() *usecase.ValidationService {
	return usecase.NewValidationService(a.store, validation.New(validation.WithDefaults(a.defaults)))
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

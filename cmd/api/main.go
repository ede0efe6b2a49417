package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/cad-detect/internal/application"
	appauth "github.com/bryanwahyu/cad-detect/internal/application/auth"
	apphistory "github.com/bryanwahyu/cad-detect/internal/application/history"
	"github.com/bryanwahyu/cad-detect/internal/application/schedule"
	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	appuploads "github.com/bryanwahyu/cad-detect/internal/application/uploads"
	"github.com/bryanwahyu/cad-detect/internal/catalog"
	"github.com/bryanwahyu/cad-detect/internal/config"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	domupload "github.com/bryanwahyu/cad-detect/internal/domain/upload"
	"github.com/bryanwahyu/cad-detect/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/cad-detect/internal/infra/db/mysql"
	pgp "github.com/bryanwahyu/cad-detect/internal/infra/db/postgres"
	"github.com/bryanwahyu/cad-detect/internal/infra/httpserver"
	"github.com/bryanwahyu/cad-detect/internal/infra/storage"
	"github.com/bryanwahyu/cad-detect/internal/logger"
	"github.com/bryanwahyu/cad-detect/internal/middleware"
)

// sqlHistory is what the SQL history stores offer on top of the read side.
type sqlHistory interface {
	records.HistoryRepository
	Migrate(ctx context.Context) error
	Seed(ctx context.Context, rows []records.HistoryRecord) error
	Count(ctx context.Context) (int, error)
}

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Format, "cad-detect")
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer lg.Sync()

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		lg.Fatal("catalog load error", zap.Error(err))
	}

	ctx := context.Background()
	checks := map[string]middleware.HealthChecker{}

	// history store
	historyRepo, db, err := openHistory(ctx, cfg, cat)
	if err != nil {
		lg.Fatal("history store init error", zap.String("driver", cfg.History.Driver), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
		checks["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	// archive
	var archive domupload.ArchiveStore = storage.Discard{}
	if cfg.Minio.Enabled {
		store, err := storage.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
			lg,
		)
		if err != nil {
			lg.Fatal("minio init error", zap.Error(err))
		}
		archive = store
		checks["minio"] = middleware.CheckerFunc(store.Check)
	}

	// init services
	authSvc := &appauth.Service{Sleeper: application.SystemSleeper{}, Delay: cfg.Auth.Delay}
	historySvc := &apphistory.Service{Repo: historyRepo}
	signalSvc := &appsignal.Service{
		Params: ecg.Params{
			SamplingRate: cfg.Signal.SamplingRate,
			Duration:     cfg.Signal.DurationSeconds,
			BeatPeriod:   cfg.Signal.BeatPeriod,
			Jitter:       cfg.Signal.Jitter,
		},
		ViewWidth:  cfg.Signal.ViewWidth,
		ViewHeight: cfg.Signal.ViewHeight,
		Live: appsignal.LiveConfig{
			Speed:         cfg.Signal.Live.Speed,
			FrameInterval: cfg.Signal.Live.FrameInterval,
			Width:         cfg.Signal.Live.Width,
			Height:        cfg.Signal.Live.Height,
		},
	}
	if err := signalSvc.Params.Validate(); err != nil {
		lg.Fatal("signal parameters invalid", zap.Error(err))
	}
	uploadSvc := &appuploads.Service{
		Repo:             memory.NewUploadRepository(1000),
		Archive:          archive,
		Clock:            application.SystemClock{},
		Log:              lg,
		AllowedFormats:   cfg.Upload.AllowedFormats,
		MaxSizeMB:        cfg.Upload.MaxSizeMB,
		SpoolDir:         cfg.Upload.SpoolDir,
		ProgressStep:     cfg.Upload.ProgressStep,
		ProgressInterval: cfg.Upload.ProgressInterval,
	}

	// rate limiter + sweeper
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSecond)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweeper := schedule.Start(sweepCtx, schedule.NewTicker(5*time.Minute), func(context.Context) (bool, error) {
		if n := limiter.Sweep(10 * time.Minute); n > 0 {
			lg.Debug("rate limiter swept", zap.Int("buckets", n))
		}
		return true, nil
	})

	readiness := &middleware.Readiness{}
	streamsCtx, stopStreams := context.WithCancel(ctx)

	// init router
	handler := httpserver.NewRouter(httpserver.Deps{
		Catalog:        cat,
		Auth:           authSvc,
		History:        historySvc,
		Signal:         signalSvc,
		Uploads:        uploadSvc,
		Log:            lg,
		Metrics:        middleware.NewMetrics(),
		Limiter:        limiter,
		Health:         checks,
		Readiness:      readiness,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Streams:        streamsCtx,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	// Shutdown tidak membatalkan context request; SSE live/progress diputus di sini
	srv.RegisterOnShutdown(stopStreams)

	// run server
	go func() {
		lg.Info("server listening", zap.String("addr", addr), zap.String("history_driver", cfg.History.Driver), zap.Bool("minio", cfg.Minio.Enabled))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server error", zap.Error(err))
		}
	}()
	readiness.Set(true)

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	lg.Info("shutting down server...")
	readiness.Set(false)

	stopSweep()
	_ = sweeper.Wait()

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		lg.Error("shutdown error", zap.Error(err))
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// openHistory picks the history store. SQL stores are migrated and seeded
// from the catalog the first time they come up empty.
func openHistory(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) (records.HistoryRepository, *sql.DB, error) {
	var (
		db   *sql.DB
		repo sqlHistory
		err  error
	)
	switch cfg.History.Driver {
	case "mysql":
		if db, err = mysqlp.Connect(ctx, cfg.MySQLDSN()); err != nil {
			return nil, nil, err
		}
		repo = mysqlp.NewHistoryRepository(db)
	case "postgres":
		if db, err = pgp.Connect(ctx, cfg.PostgresDSN()); err != nil {
			return nil, nil, err
		}
		repo = pgp.NewHistoryRepository(db)
	default:
		return memory.NewHistoryRepository(cat.History), nil, nil
	}

	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("count: %w", err)
	}
	if n == 0 {
		if err := repo.Seed(ctx, cat.History); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}
	return repo, db, nil
}

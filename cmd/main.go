package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	httpadapter "coinpulse/internal/adapter/http"
	"coinpulse/internal/adapter/metrics"
	"coinpulse/internal/adapter/postgres"
	"coinpulse/internal/adapter/scheduler"
	"coinpulse/internal/adapter/usecase"
	"coinpulse/internal/config"
	"coinpulse/internal/core/domain"
	"coinpulse/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return err
		}
		logger.Info("demo data seeded")
	}

	var (
		clock    = domain.SystemClock{}
		m        = metrics.New(prometheus.DefaultRegisterer)
		counters = postgres.NewCounterRepository(pool)
	)
	svc := httpadapter.Services{
		Campaigns: usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool), clock, m),
		Airdrops:  usecase.NewAirdropUseCase(postgres.NewAirdropRepository(pool), counters, clock, m),
		Presales:  usecase.NewPresaleUseCase(postgres.NewPresaleRepository(pool), counters, clock, m),
		Events:    usecase.NewEventUseCase(postgres.NewEventRepository(pool), clock),
		Listings:  usecase.NewListingUseCase(postgres.NewListingRepository(pool), counters, clock, m),
		Comments: usecase.NewCommentUseCase(postgres.NewCommentRepository(pool), counters, clock,
			logger, m, cfg.Moderation.SpamThreshold),
		Articles: usecase.NewArticleUseCase(postgres.NewArticleRepository(pool), counters, clock, m),
		Videos:   usecase.NewVideoUseCase(postgres.NewVideoRepository(pool), counters, clock, m),
	}
	assets := httpadapter.Assets{BaseURL: cfg.Storage.PublicURL, Placeholder: cfg.Storage.Placeholder}
	handler := httpadapter.NewHandler(svc, assets, m, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	sched := scheduler.New(logger)
	if cfg.Jobs.StatusSyncEnabled {
		job := scheduler.NewStatusSync(postgres.NewStatusRepository(pool), clock, logger, m)
		if err = sched.Register(cfg.Jobs.StatusSyncSpec, job); err != nil {
			return err
		}
	}

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		return sched.Run(gctx)
	})
	gr.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return gr.Wait()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-builder/internal/adapter/cache"
	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/memory"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/metrics"
	"resume-builder/internal/templates"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	if cfg.IsLocal() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h).With("env", cfg.Env))
}

type stores struct {
	resumes usecase.ResumeRepo
	jobs    usecase.JobsRepo
	subs    usecase.SubscriptionRepo
	credits usecase.CreditRepo
}

// openStores uses Postgres when reachable and falls back to process memory.
func openStores(ctx context.Context, cfg *config.Config) (stores, func()) {
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err == nil {
		err = migration.Up(cfg.DatabaseURL)
	}
	if err != nil {
		slog.Warn("database not available, using in-memory storage", "error", err)
		if pool != nil {
			pool.Close()
		}
		return stores{
			resumes: memory.NewResumes(),
			jobs:    memory.NewJobs(),
			subs:    memory.NewSubscriptions(),
			credits: memory.NewCredits(),
		}, func() {}
	}
	return stores{
		resumes: repo.NewResumesRepo(pool),
		jobs:    repo.NewJobsRepo(pool),
		subs:    repo.NewSubscriptionsRepo(pool),
		credits: repo.NewCreditsRepo(pool),
	}, pool.Close
}

func openRevisions(ctx context.Context, cfg *config.Config) (usecase.RevisionStore, func()) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryRevisions(), func() {}
	}
	client, err := infra.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("redis not available, preview revisions kept in memory", "error", err)
		return cache.NewMemoryRevisions(), func() {}
	}
	return cache.NewRedisRevisions(client, cfg.Redis.PreviewTTL), func() { _ = client.Close() }
}

func newGenerator(cfg config.AIConfig) ai.Generator {
	if cfg.Provider == "openai" {
		return ai.NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	}
	return ai.NewClient(cfg.BaseURL, cfg.Timeout)
}

func run(ctx context.Context, cfg *config.Config) error {
	st, closeStores := openStores(ctx, cfg)
	defer closeStores()
	revisions, closeRevisions := openRevisions(ctx, cfg)
	defer closeRevisions()

	catalog, err := templates.New(cfg.Templates.OverrideDir)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	if cfg.Templates.Watch {
		go func() {
			if err := catalog.Watch(ctx); err != nil {
				slog.Error("template watcher stopped", "error", err)
			}
		}()
	}

	files, err := infra.NewLocalStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	compiler := infra.NewChromedpCompiler(cfg.Compiler.EngineURL, cfg.Compiler.ChromePath, cfg.Compiler.Timeout)
	processor := usecase.NewProcessor(st.resumes, catalog, st.subs, compiler, files, st.jobs, m)
	processor.Attempts = cfg.Compiler.Attempts

	resumes := usecase.NewResumeService(st.resumes, catalog, st.subs)
	credits := usecase.NewCreditService(st.credits, cfg.Credits.ReferralBonus, cfg.Credits.SignupBonus)
	h := httpadapter.NewHandler(
		resumes,
		usecase.NewPreviewService(resumes, revisions, m),
		processor,
		credits,
		usecase.NewAIService(newGenerator(cfg.AI), credits, cfg.AI.CreditCost),
	)
	if cfg.Auth.JWTSecret == "" {
		slog.Warn("JWT_SECRET is empty, every request will be rejected")
	}
	app := httpadapter.NewApp(httpadapter.AppConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		BodyLimit:      cfg.HTTP.BodyLimit,
		JWTSecret:      cfg.Auth.JWTSecret,
	}, h, m)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.HTTP.Port)
		errCh <- app.Listen(":" + cfg.HTTP.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Warn("http shutdown", "error", err)
	}
	done := make(chan struct{})
	go func() {
		h.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(cfg.Compiler.Timeout):
		slog.Warn("render jobs still running at exit")
	}
	return nil
}

// Command budget_worker keeps the persisted budget spent values in step with the
// ledger by recomputing them whenever a ledger change event arrives.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/platform/events"
	"github.com/SscSPs/finance_tracker/internal/platform/storage"
	"golang.org/x/sync/errgroup"
)

// startupRecomputeTimeout bounds the catch-up run before consuming.
const startupRecomputeTimeout = 30 * time.Second

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logger.Warn("Unknown LOG_LEVEL, keeping info", slog.String("log_level", cfg.LogLevel))
	}
	if !cfg.EventsEnabled() {
		logger.Error("AMQP_URL must be set to run the budget worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	budgetService := services.NewBudgetService(repos.BudgetRepo, repos.ReportingRepo)

	// Events published while the worker was down are covered by one full recompute.
	startupCtx, cancel := context.WithTimeout(ctx, startupRecomputeTimeout)
	if n, err := budgetService.RecomputeSpent(startupCtx); err != nil {
		logger.Error("Startup recompute failed", slog.String("error", err.Error()))
	} else {
		logger.Info("Startup recompute finished", slog.Int64("budgets_updated", n))
	}
	cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumeWithRetry(gctx, cfg, logger, recomputeHandler(budgetService, logger))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Budget worker stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Budget worker stopped")
}

// recomputeHandler refreshes every budget; any ledger change can move several categories.
func recomputeHandler(budgetService portssvc.BudgetWriterSvc, logger *slog.Logger) events.LedgerEventHandler {
	return func(ctx context.Context, event domain.LedgerEvent) error {
		n, err := budgetService.RecomputeSpent(ctx)
		if err != nil {
			return err
		}
		logger.Info("Budget spent recomputed",
			slog.String("kind", string(event.Kind)),
			slog.Int64("transaction_id", event.TransactionID),
			slog.String("category", event.Category),
			slog.Int64("budgets_updated", n))
		return nil
	}
}

// consumeWithRetry reconnects with exponential backoff until ctx is cancelled.
func consumeWithRetry(ctx context.Context, cfg *config.Config, logger *slog.Logger, handler events.LedgerEventHandler) error {
	for attempt := 0; ; attempt++ {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err == nil {
			attempt = 0
			err = client.Consume(ctx, handler)
			client.Close()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := events.Backoff(attempt)
		logger.Warn("AMQP consumer interrupted, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", wait))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

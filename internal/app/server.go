package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/emailotp/internal/emailotp/usecase"
)

// Start runs the console dialog and returns a channel closed when the dialog
// ends or a termination signal arrives.
func (a *App) Start() <-chan struct{} {
	scheduled := a.goroutine.Go(a.ctx, func(ctx context.Context) error {
		defer a.shutdown()

		err := a.runner.Run(ctx)
		if errors.Is(err, usecase.ErrNoInput) || errors.Is(err, context.Canceled) {
			slog.InfoContext(ctx, "console input closed", "reason", err)
			return nil
		}

		return err
	})
	if !scheduled {
		slog.Error("failed to start console dialog")
		os.Exit(1)
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			a.shutdown()
			slog.Info("application gracefully shutdown")
		case <-a.terminate:
		}
	}()

	return a.terminate
}

func (a *App) shutdown() {
	a.closeOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		close(a.terminate)
	})
}

// Stop waits for the dialog goroutine and closes resources.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}
	slog.InfoContext(ctx, "all goroutines have finished successfully")

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}

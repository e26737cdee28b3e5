package graceful

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"countdown/internal/utils/logger/sl"
)

// Operation is a named shutdown step.
type Operation func(ctx context.Context) error

// GracefulShutdown waits for SIGINT/SIGTERM, runs all operations in
// parallel and closes the returned channel when they finish. If they take
// longer than timeout the process exits anyway.
func GracefulShutdown(ctx context.Context, timeout time.Duration, ops map[string]Operation, log *slog.Logger) <-chan struct{} {
	wait := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")

		timeoutFunc := time.AfterFunc(timeout, func() {
			log.Error("shutdown timeout exceeded, forcing exit",
				slog.Duration("timeout", timeout),
			)
			os.Exit(1)
		})
		defer timeoutFunc.Stop()

		var wg sync.WaitGroup
		for name, op := range ops {
			wg.Add(1)
			go func(name string, op Operation) {
				defer wg.Done()

				log.Info("cleaning up", slog.String("operation", name))
				if err := op(ctx); err != nil {
					log.Error("cleanup failed", slog.String("operation", name), sl.Err(err))
					return
				}
				log.Info("cleanup finished", slog.String("operation", name))
			}(name, op)
		}

		wg.Wait()
		close(wait)
	}()

	return wait
}

package main

import (
	"context"
	"sync"
	"time"
)

// startTokenPruner deletes expired tokens every interval until ctx is canceled
// or the returned stop function is called. stop blocks until the loop exits.
func (app *application) startTokenPruner(ctx context.Context, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		app.logger.Info("Token pruner started", "interval", interval.String())
		for {
			select {
			case <-ctx.Done():
				app.logger.Info("Token pruner stopped")
				return
			case <-ticker.C:
				if err := app.pruneTokens(ctx); err != nil && ctx.Err() == nil {
					app.logger.Error("Token pruning failed", "error", err)
				}
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

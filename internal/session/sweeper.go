package session

import (
	"context"
	"time"

	"github.com/sandevgo/mordomo/pkg/log"
)

// Sweeper evicts stale sessions on a fixed interval. The single select
// loop guarantees sweeps never overlap each other.
type Sweeper struct {
	store    *Store
	interval time.Duration
	done     chan struct{}
}

func NewSweeper(store *Store, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (w *Sweeper) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Dur("interval", w.interval).Msg("session sweeper started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := w.store.Sweep(time.Now()); evicted > 0 {
				logger.Info().Int("evicted", evicted).Msg("swept stale sessions")
			}
		case <-ctx.Done():
			return nil
		case <-w.done:
			return nil
		}
	}
}

func (w *Sweeper) Shutdown(ctx context.Context) error {
	close(w.done)
	return nil
}

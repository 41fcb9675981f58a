package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const statusEvery = 5 * time.Second

// runHeadless ticks the session at tps until ctx ends or duration elapses.
// watch, if set, runs alongside the tick loop and stops with it.
func runHeadless(ctx context.Context, r *runner, tps int, duration time.Duration, watch func(context.Context)) error {
	if tps <= 0 {
		tps = 60
	}
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		dt := 1.0 / float64(tps)
		ticker := time.NewTicker(time.Second / time.Duration(tps))
		defer ticker.Stop()

		lastStatus := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				r.tick(dt)
				if now.Sub(lastStatus) >= statusEvery {
					lastStatus = now
					r.logger.Info("arena status",
						"state", r.session.State().String(),
						"roster", r.session.Roster(),
						"items", r.session.Ledger().Live(),
						"hud", r.hud.String(),
					)
				}
			}
		}
	})
	if watch != nil {
		eg.Go(func() error {
			watch(ctx)
			return nil
		})
	}
	return eg.Wait()
}

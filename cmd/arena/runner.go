package main

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/bossarena/input"
	"github.com/milk9111/bossarena/prefabs"
	"github.com/milk9111/bossarena/session"
)

// runner advances the session one tick at a time. Both the window and the
// headless loop drive it from a single goroutine.
type runner struct {
	session *session.Session
	bots    []*input.Bot
	reloads <-chan prefabs.Config
	logger  *slog.Logger
	hud     *hud
	debug   bool
}

func (r *runner) tick(dt float64) {
	select {
	case cfg := <-r.reloads:
		if r.debug {
			cfg.Session.Debug = true
		}
		if err := r.session.Reconfigure(cfg); err != nil {
			r.logger.Warn("reconfigure", "err", err)
		}
	default:
	}

	for _, b := range r.bots {
		b.Tick(dt)
	}
	r.session.Update(dt)
}

// hud keeps the last session events for display.
type hud struct {
	matches  int
	defeats  int
	wipes    int
	lastLine string
	died     []int
}

func (h *hud) observer() session.Observer {
	return session.ObserverFuncs{
		Started: func(matchID string) {
			h.matches++
			h.died = h.died[:0]
			h.lastLine = "match " + matchID + " started"
		},
		Died: func(id int) {
			h.died = append(h.died, id)
			h.lastLine = fmt.Sprintf("player %d died", id)
		},
		Defeated: func() {
			h.defeats++
			h.lastLine = "boss defeated"
		},
		Ended: func(matchID string) {
			if h.lastLine != "boss defeated" {
				h.wipes++
			}
			h.lastLine = "match " + matchID + " ended"
		},
	}
}

func (h *hud) String() string {
	return fmt.Sprintf("matches: %d  wins: %d  wipes: %d\n%s", h.matches, h.defeats, h.wipes, h.lastLine)
}

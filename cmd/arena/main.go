package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/input"
	"github.com/milk9111/bossarena/physics"
	"github.com/milk9111/bossarena/prefabs"
	"github.com/milk9111/bossarena/session"
)

type config struct {
	Seed      uint64        `env:"ARENA_SEED"`
	Headless  bool          `env:"ARENA_HEADLESS"`
	TPS       int           `env:"ARENA_TPS" envDefault:"60"`
	PrefabDir string        `env:"ARENA_PREFAB_DIR" envDefault:"prefabs"`
	Watch     bool          `env:"ARENA_WATCH" envDefault:"true"`
	Debug     bool          `env:"ARENA_DEBUG"`
	LogLevel  string        `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	Bots      int           `env:"ARENA_BOTS"`
	Duration  time.Duration `env:"ARENA_DURATION"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug mode (invariant violations panic)")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without a window; every slot is a bot")
	flag.IntVar(&cfg.Bots, "bots", cfg.Bots, "number of bot-driven slots, counted from the last slot")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.StringVar(&cfg.PrefabDir, "prefabs", cfg.PrefabDir, "directory checked for prefab overrides")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "stop a headless run after this long (0 runs forever)")
	flag.Parse()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	prefabs.DiskDir = cfg.PrefabDir
	arenaCfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatalf("load prefabs: %v", err)
	}
	if cfg.Debug {
		arenaCfg.Session.Debug = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("arena starting", "seed", seed, "headless", cfg.Headless, "players", arenaCfg.Session.Players)

	players := arenaCfg.Session.Players
	bots := cfg.Bots
	if cfg.Headless {
		bots = players
	}
	rng := common.NewRNG(seed)

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithRNG(rng),
		session.WithPhysics(func(arena prefabs.ArenaSpec, l *slog.Logger) session.Physics {
			return physics.NewArena(arena, l)
		}),
	}
	var botList []*input.Bot
	var keyboard *input.Keyboard
	for id := 1; id <= players; id++ {
		if id > players-bots {
			b := input.NewBot(id, common.NewRNG(seed+uint64(id)), 0.4)
			botList = append(botList, b)
			opts = append(opts, session.WithControlSource(id, b))
			continue
		}
		if keyboard == nil {
			keyboard = input.NewKeyboard(input.DefaultBindings())
		}
		opts = append(opts, session.WithControlSource(id, keyboard))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reloads := make(chan prefabs.Config, 1)
	var watch func(context.Context)
	if cfg.Watch {
		watch = func(ctx context.Context) {
			watchPrefabs(ctx, cfg.PrefabDir, reloads, logger)
		}
	}

	status := &hud{}
	opts = append(opts, session.WithObserver(status.observer()))
	sess := session.New(arenaCfg, opts...)

	r := &runner{
		session: sess,
		bots:    botList,
		reloads: reloads,
		logger:  logger,
		hud:     status,
		debug:   cfg.Debug,
	}

	if cfg.Headless {
		if err := runHeadless(ctx, r, cfg.TPS, cfg.Duration, watch); err != nil {
			log.Fatal(err)
		}
		return
	}

	if watch != nil {
		go watch(ctx)
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("bossarena")

	if err := ebiten.RunGame(newGame(r, cfg.TPS)); err != nil {
		log.Fatal(err)
	}
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

// watchPrefabs reloads the whole config whenever a prefab or script on disk
// changes, and hands valid configs to the tick loop.
func watchPrefabs(ctx context.Context, dir string, out chan<- prefabs.Config, logger *slog.Logger) {
	dirs := []string{dir}
	if scripts := filepath.Join(dir, "scripts"); isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	if !isDir(dir) {
		logger.Info("prefab dir missing, hot reload off", "dir", dir)
		return
	}

	w, err := prefabs.NewWatcher(prefabs.DefaultDebounce, dirs...)
	if err != nil {
		logger.Warn("prefab watcher", "err", err)
		return
	}
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("prefab watcher stopped", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("prefab watcher", "err", err)
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := prefabs.LoadConfig()
			if err != nil {
				logger.Warn("prefab reload rejected", "path", path, "err", err)
				continue
			}
			logger.Info("prefab changed", "path", path)
			// keep only the newest config
			select {
			case <-out:
			default:
			}
			out <- cfg
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

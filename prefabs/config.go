package prefabs

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("prefabs: invalid config")

// Config bundles every tunable of an arena match.
type Config struct {
	Arena   ArenaSpec
	Player  PlayerSpec
	Boss    BossSpec
	Items   ItemsSpec
	Session SessionSpec

	// AttackScript is the source of Boss.Phase1.AttackScript, if any.
	AttackScript []byte
}

// LoadConfig reads every prefab file and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config

	arena, err := LoadArenaSpec()
	if err != nil {
		return Config{}, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return Config{}, err
	}
	boss, err := LoadBossSpec()
	if err != nil {
		return Config{}, err
	}
	items, err := LoadItemsSpec()
	if err != nil {
		return Config{}, err
	}
	session, err := LoadSessionSpec()
	if err != nil {
		return Config{}, err
	}
	cfg.Arena, cfg.Player, cfg.Boss, cfg.Items, cfg.Session = *arena, *player, *boss, *items, *session

	if name := cfg.Boss.Phase1.AttackScript; name != "" {
		src, err := LoadScript(name)
		if err != nil {
			return Config{}, fmt.Errorf("prefabs: load script %s: %w", name, err)
		}
		cfg.AttackScript = src
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Session.Players < 1 {
		bad("session.players must be at least 1, got %d", c.Session.Players)
	}
	switch c.Session.StartPolicy {
	case StartAny, StartAll:
	default:
		bad("session.start_policy %q is not one of any, all", c.Session.StartPolicy)
	}
	if len(c.Arena.PlayerSpawns) < c.Session.Players {
		bad("arena.player_spawns has %d points for %d players", len(c.Arena.PlayerSpawns), c.Session.Players)
	}
	if len(c.Arena.ItemSpawns) == 0 {
		bad("arena.item_spawns is empty")
	}
	if c.Arena.EdgeX <= 0 {
		bad("arena.edge_x must be positive, got %v", c.Arena.EdgeX)
	}

	if c.Player.MaxHealth < 1 {
		bad("player.max_health must be at least 1, got %d", c.Player.MaxHealth)
	}
	if c.Player.JumpTime <= 0 {
		bad("player.jump_time must be positive, got %v", c.Player.JumpTime)
	}
	if c.Player.InvincibilityTime < 0 || c.Player.SpecialCooldown < 0 {
		bad("player cooldowns must not be negative")
	}
	if c.Player.InteractRadius <= 0 {
		bad("player.interact_radius must be positive, got %v", c.Player.InteractRadius)
	}

	p := c.Boss.Phase1
	if p.MaxHealth < 1 {
		bad("boss.phase1.max_health must be at least 1, got %d", p.MaxHealth)
	}
	if p.MinWait < 0 || p.MaxWait < p.MinWait {
		bad("boss.phase1 wait range [%v, %v] is invalid", p.MinWait, p.MaxWait)
	}
	t := c.Boss.Timing
	if t.Approach <= 0 || t.Strike <= 0 || t.Return <= 0 {
		bad("boss.timing durations must be positive, got %v/%v/%v", t.Approach, t.Strike, t.Return)
	}
	if c.Boss.DropProbe <= 0 {
		bad("boss.drop_probe must be positive, got %v", c.Boss.DropProbe)
	}

	if c.Items.Cap < 0 {
		bad("items.cap must not be negative, got %d", c.Items.Cap)
	}
	if c.Items.SpawnDelay < 0 {
		bad("items.spawn_delay must not be negative, got %v", c.Items.SpawnDelay)
	}

	return errors.Join(errs...)
}

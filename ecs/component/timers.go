package component

import "github.com/milk9111/bossarena/common"

// Timer is a seconds countdown that parks at zero.
type Timer struct {
	Remaining float64
}

func (t Timer) Ready() bool {
	return t.Remaining <= 0
}

func (t *Timer) Arm(seconds float64) {
	t.Remaining = seconds
}

func (t *Timer) Tick(dt float64) {
	t.Remaining = common.Countdown(t.Remaining, dt)
}

// Cooldown gates a player's special ability.
type Cooldown struct {
	Timer
}

// Invulnerable is the window after a hit during which further hits are
// ignored.
type Invulnerable struct {
	Timer
}

var (
	CooldownComponent     = NewComponent[Cooldown]()
	InvulnerableComponent = NewComponent[Invulnerable]()
)

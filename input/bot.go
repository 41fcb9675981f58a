package input

import (
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs/system"
)

// Bot wanders the arena for one slot: it picks a direction every so often,
// hops, and grabs or drops whatever it stands on.
type Bot struct {
	*Scripted

	id      int
	rng     common.RNG
	think   float64
	elapsed float64
	jumping bool
}

// NewBot drives slot id, changing its mind every think seconds.
func NewBot(id int, rng common.RNG, think float64) *Bot {
	if think <= 0 {
		think = 0.5
	}
	return &Bot{Scripted: NewScripted(), id: id, rng: rng, think: think}
}

func (b *Bot) ID() int {
	return b.id
}

// Tick advances the bot's clock and queues its next controls.
func (b *Bot) Tick(dt float64) {
	b.elapsed += dt
	if b.elapsed < b.think {
		return
	}
	b.elapsed = 0

	if b.jumping {
		b.Release(system.ControlName(system.ControlJump, b.id))
		b.jumping = false
	}

	switch b.rng.IntN(3) {
	case 0:
		b.SetAxis(system.ControlName(system.ControlHorizontal, b.id), -1)
	case 1:
		b.SetAxis(system.ControlName(system.ControlHorizontal, b.id), 1)
	default:
		b.SetAxis(system.ControlName(system.ControlHorizontal, b.id), 0)
	}

	switch b.rng.IntN(4) {
	case 0:
		b.Press(system.ControlName(system.ControlJump, b.id))
		b.jumping = true
	case 1:
		b.Press(system.ControlName(system.ControlInteract, b.id))
	}
}

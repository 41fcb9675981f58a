package session

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/system"
)

// coordinator is the session as the systems see it.
type coordinator struct {
	s *Session
}

var _ system.Coordinator = coordinator{}

func (c coordinator) Running() bool {
	return c.s.Running()
}

func (c coordinator) PickRandomPlayer() (ecs.Entity, error) {
	id, err := c.s.PickRandomPlayer()
	if err != nil {
		return 0, err
	}
	e, ok := c.s.players[id]
	if !ok {
		return 0, ErrPlayerNotInRoster
	}
	return e, nil
}

func (c coordinator) PlayerDied(id int) {
	c.s.OnPlayerDied(id)
}

func (c coordinator) BossDefeated() {
	c.s.OnBossDefeated()
}

package session

import (
	"log/slog"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/prefabs"
)

// Physics simulates the arena: it answers spatial queries and reports
// contacts to the handler it is bound to.
type Physics interface {
	ecs.System
	system.SpatialQuery
	Bind(w *ecs.World, contacts system.ContactHandler)
}

// PhysicsFactory builds the physics for an arena layout. It runs again when
// a reload changes the configuration.
type PhysicsFactory func(arena prefabs.ArenaSpec, logger *slog.Logger) Physics

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRNG(rng common.RNG) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSpatialQuery sets the query service used when no physics is attached.
func WithSpatialQuery(query system.SpatialQuery) Option {
	return func(s *Session) {
		s.query = query
	}
}

func WithPhysics(factory PhysicsFactory) Option {
	return func(s *Session) {
		s.physicsFactory = factory
	}
}

// WithControlSource binds a control source to player slot id.
func WithControlSource(id int, src system.ControlSource) Option {
	return func(s *Session) {
		s.sources[id] = src
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithSpecial replaces the special ability payload.
func WithSpecial(fn system.SpecialFunc) Option {
	return func(s *Session) {
		s.special = fn
	}
}

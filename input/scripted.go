package input

import (
	"sync"

	"github.com/milk9111/bossarena/ecs/system"
)

// Scripted is a control source driven by code. Edges are consumed by the
// first read, so a Press shows up for exactly one tick.
type Scripted struct {
	mu   sync.Mutex
	axes map[string]float64
	down map[string]bool
	up   map[string]bool
}

var _ system.ControlSource = (*Scripted)(nil)

func NewScripted() *Scripted {
	return &Scripted{
		axes: make(map[string]float64),
		down: make(map[string]bool),
		up:   make(map[string]bool),
	}
}

func (s *Scripted) SetAxis(name string, v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.axes[name] = v
}

func (s *Scripted) Press(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down[name] = true
}

func (s *Scripted) Release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.up[name] = true
}

func (s *Scripted) AxisValue(name string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.axes[name]
}

func (s *Scripted) EdgeDown(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.down[name]
	delete(s.down, name)
	return v
}

func (s *Scripted) EdgeUp(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.up[name]
	delete(s.up, name)
	return v
}

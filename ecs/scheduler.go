package ecs

// System advances one concern of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs its systems once per tick in the order they were added.
// Nil systems are dropped on the way in.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil {
		return
	}
	for _, sys := range s.systems {
		sys.Update(w, dt)
	}
}

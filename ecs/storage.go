package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []slotIndex
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		return pack(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.alive = append(s.alive, true)
	return pack(slotIndex(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.slot() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.slot())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.slot()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.gen()
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i, ok := range s.alive {
		if ok {
			out = append(out, pack(slotIndex(i+1), s.gens[i]))
		}
	}
	return out
}

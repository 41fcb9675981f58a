package ecs

// EventQueue buffers values produced where the world must not change, such
// as inside a physics step, until the owner drains them at a safe point.
// The zero value is ready to use.
type EventQueue[T any] struct {
	pending []T
}

func (q *EventQueue[T]) Push(evt T) {
	if q != nil {
		q.pending = append(q.pending, evt)
	}
}

// Drain hands back everything pushed so far, oldest first, and empties the
// queue. It returns nil when nothing is pending.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

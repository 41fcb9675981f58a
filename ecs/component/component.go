// Package component holds the plain data attached to arena entities and the
// typed kinds used to look it up.
package component

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a component store in the world. Zero is never issued.
type ComponentID uint32

var registry struct {
	mu    sync.Mutex
	names []string
}

func register(name string) ComponentID {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.names = append(registry.names, name)
	return ComponentID(len(registry.names))
}

// Name returns the Go type a kind was registered for, or "" for unknown ids.
func (id ComponentID) Name() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return ""
	}
	return registry.names[id-1]
}

// ComponentKind is the typed key for one component store. The zero value is
// invalid and rejected by the world.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a fresh store. Two kinds of the same T are
// distinct stores.
func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{id: register(fmt.Sprintf("%T", zero))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "<invalid>"
	}
	return k.id.Name()
}

// ComponentHandle is what the component files export as package variables.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

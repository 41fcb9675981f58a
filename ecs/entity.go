package ecs

import (
	"fmt"
	"log/slog"
)

// Entity is a generational handle: the low half is the storage slot and the
// high half counts how often that slot has been recycled. The zero Entity is
// never issued.
type Entity uint64

type (
	slotIndex  uint32
	generation uint32
)

func pack(slot slotIndex, gen generation) Entity {
	return Entity(gen)<<32 | Entity(slot)
}

func (e Entity) slot() slotIndex { return slotIndex(e & 0xffffffff) }

func (e Entity) gen() generation { return generation(e >> 32) }

func (e Entity) Valid() bool {
	return e.slot() != 0
}

// String renders slot#generation, e.g. "7#2".
func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d#%d", e.slot(), e.gen())
}

func (e Entity) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

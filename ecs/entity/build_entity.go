package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity) error

// with returns a build step attaching a copy of value.
func with[T any](kind component.ComponentKind[T], value T) componentBuildFn {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, &value)
	}
}

// buildEntity creates an entity and runs every step. On any failure the
// half-built entity is destroyed so callers never see it.
func buildEntity(w *ecs.World, name string, steps ...componentBuildFn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build %s: world is nil", name)
	}

	e := ecs.CreateEntity(w)
	var errs []error
	for _, step := range steps {
		if err := step(w, e); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build %s: %w", name, err)
	}
	return e, nil
}

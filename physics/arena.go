// Package physics runs the arena on Chipmunk2D. It answers the core's
// spatial queries, moves player bodies and reports contacts back through a
// system.ContactHandler.
package physics

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/prefabs"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlatform
	collisionTypePlayer
	collisionTypeKinematic
)

type bodyInfo struct {
	entity  ecs.Entity
	body    *cp.Body
	shape   *cp.Shape
	dynamic bool
	reach   float64
}

type contactPair struct {
	a ecs.Entity
	b ecs.Entity
}

// Arena owns the Chipmunk space for one arena layout.
type Arena struct {
	space    *cp.Space
	world    *ecs.World
	contacts system.ContactHandler
	logger   *slog.Logger

	bodies   map[ecs.Entity]*bodyInfo
	landings ecs.EventQueue[ecs.Entity]
	touching map[contactPair]bool
}

var _ system.SpatialQuery = (*Arena)(nil)

func NewArena(spec prefabs.ArenaSpec, logger *slog.Logger) *Arena {
	if logger == nil {
		logger = slog.Default()
	}

	space := cp.NewSpace()
	space.Iterations = 20
	// the default slop lets resting players sink a tenth of a unit
	space.SetCollisionSlop(0.01)
	space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})

	a := &Arena{
		space:    space,
		logger:   logger,
		bodies:   make(map[ecs.Entity]*bodyInfo),
		touching: make(map[contactPair]bool),
	}
	a.buildStaticShapes(spec)
	a.setupHandlers()
	return a
}

// Bind points the arena at the world it simulates and where contacts go.
func (a *Arena) Bind(w *ecs.World, contacts system.ContactHandler) {
	a.world = w
	a.contacts = contacts
}

func (a *Arena) Space() *cp.Space {
	return a.space
}

func (a *Arena) buildStaticShapes(spec prefabs.ArenaSpec) {
	add := func(r prefabs.RectSpec, layer component.Layer, ct cp.CollisionType) {
		if r.Width <= 0 || r.Height <= 0 {
			return
		}
		bb := cp.BB{L: r.X - r.Width/2, B: r.Y - r.Height/2, R: r.X + r.Width/2, T: r.Y + r.Height/2}
		shape := cp.NewBox2(a.space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetCollisionType(ct)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
		a.space.AddShape(shape)
	}

	add(spec.Floor, component.LayerFloor, collisionTypeSolid)
	// walls share the floor's layer so both player layers collide with them
	for _, w := range spec.Walls {
		add(w, component.LayerFloor, collisionTypeSolid)
	}
	for _, p := range spec.Platforms {
		add(p, component.LayerPlatform, collisionTypePlatform)
	}
}

func (a *Arena) setupHandlers() {
	landing := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		player, n, ok := playerContact(arb)
		if ok && n.Y < -0.5 {
			a.landings.Push(player)
		}
		return true
	}

	floor := a.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	floor.BeginFunc = landing

	platform := a.space.NewCollisionHandler(collisionTypePlayer, collisionTypePlatform)
	platform.BeginFunc = landing
	// one-way: only solid from above
	platform.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		_, n, ok := playerContact(arb)
		return !ok || n.Y < -0.5
	}
}

// playerContact returns the player in a contact and the normal pointing from
// the player into the other shape.
func playerContact(arb *cp.Arbiter) (ecs.Entity, cp.Vector, bool) {
	shapeA, shapeB := arb.Shapes()
	n := arb.Normal()
	if e, ok := shapeA.UserData.(ecs.Entity); ok {
		return e, n, true
	}
	if e, ok := shapeB.UserData.(ecs.Entity); ok {
		return e, n.Neg(), true
	}
	return 0, n, false
}

// Update syncs bodies with the world, steps the space and dispatches the
// contacts the step produced.
func (a *Arena) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	a.world = w

	a.sync(w)
	if dt > 0 {
		a.space.Step(dt)
	}
	a.writeBack(w)

	for _, e := range a.landings.Drain() {
		if a.contacts != nil && ecs.IsAlive(w, e) {
			a.contacts.Land(e)
		}
	}
	a.senseOverlaps(w)
}

func (a *Arena) sync(w *ecs.World) {
	for e, info := range a.bodies {
		if !ecs.IsAlive(w, e) {
			a.removeBody(info)
			delete(a.bodies, e)
		}
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		info := a.bodies[e]
		if info == nil {
			info = a.createBody(e, pb, t)
			a.bodies[e] = info
		}

		if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			info.shape.SetFilter(filterFor(layer.Layer, info.dynamic))
		}

		if !info.dynamic {
			// Step refreshes kinematic bounding boxes before senseOverlaps runs
			info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
			return
		}
		if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
			v := info.body.Velocity()
			info.body.SetVelocity(mv.VelocityX, v.Y)
		}
	})
}

func (a *Arena) createBody(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) *bodyInfo {
	info := &bodyInfo{entity: e, dynamic: pb.Kind == component.BodyDynamic}

	if info.dynamic {
		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}
		// players never tip over
		info.body = cp.NewBody(mass, cp.INFINITY)
		info.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, a.playerGravity(e, gravity, mass), damping, dt)
		})
	} else {
		info.body = cp.NewKinematicBody()
	}
	info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	if pb.Radius > 0 {
		info.shape = cp.NewCircle(info.body, pb.Radius, cp.Vector{})
		info.reach = pb.Radius
	} else {
		info.shape = cp.NewBox(info.body, pb.Width, pb.Height, 0)
		info.reach = min(pb.Width, pb.Height) / 2
	}
	info.shape.UserData = e
	info.shape.SetFriction(0)
	if info.dynamic {
		info.shape.SetCollisionType(collisionTypePlayer)
	} else {
		// kinematic shapes only meet players through queries; the player
		// mask keeps them out of the solver
		info.shape.SetCollisionType(collisionTypeKinematic)
	}

	a.space.AddBody(info.body)
	a.space.AddShape(info.shape)
	return info
}

func (a *Arena) removeBody(info *bodyInfo) {
	if info.shape != nil {
		a.space.RemoveShape(info.shape)
	}
	if info.body != nil {
		a.space.RemoveBody(info.body)
	}
}

// playerGravity scales world gravity by the player's current gravity scale
// and adds the jump thrust while the jump is held.
func (a *Arena) playerGravity(e ecs.Entity, gravity cp.Vector, mass float64) cp.Vector {
	scale := 1.0
	if g, ok := ecs.Get(a.world, e, component.GravityScaleComponent.Kind()); ok {
		scale = g.Scale
	}
	out := gravity.Mult(scale)

	mv, okMove := ecs.Get(a.world, e, component.MovementComponent.Kind())
	p, okPlayer := ecs.Get(a.world, e, component.PlayerComponent.Kind())
	if okMove && okPlayer && mv.JumpNow {
		out.Y += p.JumpStrength * p.JumpStrength / mass
	}
	return out
}

func (a *Arena) writeBack(w *ecs.World) {
	for e, info := range a.bodies {
		if !info.dynamic {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			p := info.body.Position()
			t.X, t.Y = p.X, p.Y
		}
	}
}

// senseOverlaps reports boss contacts that began this tick: a limb or the
// boss body on a player, or a placed item on the boss. Kinematic shapes never
// collide with each other in Chipmunk, so these are found by query instead.
func (a *Arena) senseOverlaps(w *ecs.World) {
	now := make(map[contactPair]bool)
	hitters := component.LayerBoss | component.LayerLimb

	var hits []contactPair
	var hazards []contactPair
	for e, info := range a.bodies {
		if !ecs.IsAlive(w, e) {
			continue
		}
		isPlayer := ecs.Has(w, e, component.PlayerComponent.Kind())
		item, isItem := ecs.Get(w, e, component.ItemComponent.Kind())
		if !isPlayer && !(isItem && item.State == component.ItemPlaced) {
			continue
		}

		other, ok := a.nearest(info.body.Position(), info.reach, hitters)
		if !ok {
			continue
		}
		pair := contactPair{a: e, b: other}
		now[pair] = true
		if a.touching[pair] {
			continue
		}
		if isPlayer {
			hits = append(hits, pair)
		} else {
			hazards = append(hazards, pair)
		}
	}
	a.touching = now

	if a.contacts == nil {
		return
	}
	for _, p := range hits {
		if ecs.IsAlive(w, p.a) && ecs.IsAlive(w, p.b) {
			a.contacts.HitPlayer(p.a)
		}
	}
	for _, p := range hazards {
		if ecs.IsAlive(w, p.a) && ecs.IsAlive(w, p.b) {
			a.contacts.HazardContact(p.a, p.b)
		}
	}
}

func (a *Arena) nearest(at cp.Vector, radius float64, layer component.Layer) (ecs.Entity, bool) {
	info := a.space.PointQueryNearest(at, radius, queryFilter(layer))
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := info.Shape.UserData.(ecs.Entity)
	return e, ok
}

// LineQuery casts a segment and returns the first point on layer it meets.
func (a *Arena) LineQuery(origin, dir common.Vec2, maxDistance float64, layer component.Layer) (common.Vec2, bool) {
	d := dir.Normalize()
	if d == (common.Vec2{}) || maxDistance <= 0 {
		return common.Vec2{}, false
	}
	end := origin.Add(d.Scale(maxDistance))
	info := a.space.SegmentQueryFirst(
		cp.Vector{X: origin.X, Y: origin.Y},
		cp.Vector{X: end.X, Y: end.Y},
		0,
		queryFilter(layer),
	)
	if info.Shape == nil {
		return common.Vec2{}, false
	}
	return common.V(info.Point.X, info.Point.Y), true
}

// RadiusQuery returns the entity on layer closest to center within radius.
func (a *Arena) RadiusQuery(center common.Vec2, radius float64, layer component.Layer) (ecs.Entity, bool) {
	if a.world == nil {
		return 0, false
	}
	e, ok := a.nearest(cp.Vector{X: center.X, Y: center.Y}, radius, layer)
	if !ok || !ecs.IsAlive(a.world, e) {
		return 0, false
	}
	return e, true
}

func queryFilter(layer component.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(layer))
}

// filterFor turns a layer into a shape filter. Dynamic bodies collide with
// what their layer allows; kinematic shapes accept every query.
func filterFor(layer component.Layer, dynamic bool) cp.ShapeFilter {
	mask := uint(cp.ALL_CATEGORIES)
	if dynamic {
		mask = uint(layer.Mask())
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer), mask)
}

package component

type BodyKind int

const (
	// BodyKinematic bodies are placed by systems and never pushed.
	BodyKinematic BodyKind = iota
	BodyDynamic
)

// PhysicsBody is the collider an entity asks the physics adapter for. The
// adapter owns the matching Chipmunk body and shape.
type PhysicsBody struct {
	Kind   BodyKind
	Width  float64
	Height float64
	Radius float64
	Mass   float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// GravityScale multiplies arena gravity for a dynamic body. The controller
// flips it between a player's jumping and falling values.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()

package component

// Player holds a player's slot id and movement tuning.
type Player struct {
	ID int

	MoveSpeed      float64
	JumpStrength   float64
	JumpTime       float64
	JumpingGravity float64
	FallingGravity float64

	SpecialCooldown   float64
	InvincibilityTime float64
	InteractRadius    float64
}

// Movement is the movement intent the physics adapter turns into body motion.
type Movement struct {
	VelocityX float64
	// JumpNow is true while the upward jump force should be applied.
	JumpNow   bool
	Jumping   bool
	JumpForce float64
}

var PlayerComponent = NewComponent[Player]()
var MovementComponent = NewComponent[Movement]()

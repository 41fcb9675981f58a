package component

// Input stores the control edges sampled for a player this tick.
type Input struct {
	Axis         float64
	JumpDown     bool
	JumpUp       bool
	CrouchDown   bool
	CrouchUp     bool
	InteractDown bool
	SpecialDown  bool
}

var InputComponent = NewComponent[Input]()

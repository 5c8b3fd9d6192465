package component

// ControlInput is one tick of steering intent, from the keyboard or the AI
type ControlInput struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Brake       bool
}

// Idle reports an input with no flags set
func (c ControlInput) Idle() bool {
	return !c.RotateLeft && !c.RotateRight && !c.Thrust && !c.Brake
}

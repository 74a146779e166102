package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
)

const (
	ActionSprint = "Sprint"
	ActionJump   = "Jump"
	ActionCrouch = "Crouch"
)

// InputService reports whether a named input action is currently held.
type InputService interface {
	IsActionHeld(action string) bool
}

// InputState is the input of a player for a single tick.
type InputState struct {
	// MoveVector is the movement impulse relative to the facing direction. The X-axis contains
	// the forward impulse and the Y-axis contains the right impulse, both in [-1, 1].
	MoveVector mgl32.Vec2
	// Yaw is the facing direction in degrees.
	Yaw float32

	Jump   bool
	Crouch bool
	Sprint bool
}

// IsActionHeld ...
func (in InputState) IsActionHeld(action string) bool {
	switch action {
	case ActionSprint:
		return in.Sprint
	case ActionJump:
		return in.Jump
	case ActionCrouch:
		return in.Crouch
	}
	return false
}

// AccelerationDirection returns the world space direction of the movement impulse. The
// returned vector is horizontal and at most one unit long.
func (in InputState) AccelerationDirection() mgl32.Vec3 {
	dir := game.ForwardVector(in.Yaw).Mul(in.MoveVector.X()).Add(game.RightVector(in.Yaw).Mul(in.MoveVector.Y()))
	if dir.LenSqr() > 1 {
		dir = dir.Normalize()
	}
	return dir
}

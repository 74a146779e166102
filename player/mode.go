package player

import "fmt"

// Role is the network role of a player instance.
type Role byte

const (
	RoleNone Role = iota
	// RoleSimulatedProxy is a remote copy of a player that only displays replicated state.
	RoleSimulatedProxy
	// RoleAutonomousProxy is the owning client of a player, which predicts its own movement.
	RoleAutonomousProxy
	// RoleAuthority is the server copy of a player.
	RoleAuthority
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RoleSimulatedProxy:
		return "SimulatedProxy"
	case RoleAutonomousProxy:
		return "AutonomousProxy"
	case RoleAuthority:
		return "Authority"
	}
	return fmt.Sprintf("Role(%d)", byte(r))
}

// MovementMode is the locomotion mode of a movement component.
type MovementMode byte

const (
	ModeNone MovementMode = iota
	ModeWalking
	ModeFalling
	// ModeCustom delegates physics to the handler registered for the component's CustomMode.
	ModeCustom
)

func (m MovementMode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeWalking:
		return "Walking"
	case ModeFalling:
		return "Falling"
	case ModeCustom:
		return "Custom"
	}
	return fmt.Sprintf("MovementMode(%d)", byte(m))
}

// CustomMode is the sub-mode used while the movement mode is ModeCustom.
type CustomMode byte

const (
	CustomModeNone CustomMode = iota
	CustomModeWallRunning
	// CustomModeSliding is reserved. It has no physics and behaves as a no-op.
	CustomModeSliding
)

func (m CustomMode) String() string {
	switch m {
	case CustomModeNone:
		return "None"
	case CustomModeWallRunning:
		return "WallRunning"
	case CustomModeSliding:
		return "Sliding"
	}
	return fmt.Sprintf("CustomMode(%d)", byte(m))
}

// WallRunSide is the side of the character the wall surface faces.
type WallRunSide byte

const (
	WallRunSideLeft WallRunSide = iota
	WallRunSideRight
)

func (s WallRunSide) String() string {
	if s == WallRunSideRight {
		return "Right"
	}
	return "Left"
}

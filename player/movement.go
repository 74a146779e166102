package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
)

// WallRunContext holds the state of an active wall run.
type WallRunContext struct {
	// Direction is the unit horizontal direction the character runs along the wall.
	Direction mgl32.Vec3
	// Side is the side of the character the wall surface faces.
	Side WallRunSide
	// ActivationTime is the clock time the wall run started at.
	ActivationTime float32
}

// MovementSnapshot is a copy of every part of the movement state that a move can change. It is
// used to rewind the component before re-simulating moves.
type MovementSnapshot struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3
	Yaw float32

	Mode       MovementMode
	CustomMode CustomMode

	// WallRun is only meaningful while the snapshot is wall running.
	WallRun WallRunContext

	Acceleration mgl32.Vec3

	PressedJump bool
	JumpCount   int

	WantsToCrouch bool
	Crouching     bool
	Sprinting     bool
	WantsToSprint bool
	CanWallRun    bool
}

// IsWallRunning returns true if the snapshot was taken while wall running.
func (s MovementSnapshot) IsWallRunning() bool {
	return s.Mode == ModeCustom && s.CustomMode == CustomModeWallRunning
}

// MovementComponent is the movement state of a player and the wall-run state machine driving it.
type MovementComponent interface {
	HitHandler

	// Pos returns the center of the character's collision hull.
	Pos() mgl32.Vec3
	// SetPos sets the center of the character's collision hull.
	SetPos(pos mgl32.Vec3)
	// Vel returns the velocity of the character.
	Vel() mgl32.Vec3
	// SetVel sets the velocity of the character.
	SetVel(vel mgl32.Vec3)
	// Yaw returns the facing direction of the character in degrees.
	Yaw() float32
	// SetYaw sets the facing direction of the character in degrees.
	SetYaw(yaw float32)
	// Acceleration returns the input acceleration of the current move.
	Acceleration() mgl32.Vec3
	// SetAcceleration sets the input acceleration of the current move.
	SetAcceleration(accel mgl32.Vec3)
	// BoundingBox returns the collision hull of the character in world space.
	BoundingBox() cube.BBox

	// Mode returns the current movement mode.
	Mode() MovementMode
	// CustomMode returns the current custom sub-mode, which is only relevant in ModeCustom.
	CustomMode() CustomMode
	// SetMovementMode switches the movement mode and notifies the component of the change.
	SetMovementMode(mode MovementMode, custom CustomMode)
	// IsCustomMovementMode returns true if the component is in ModeCustom with the given sub-mode.
	IsCustomMovementMode(custom CustomMode) bool
	// IsWallRunning returns true if the component is wall running.
	IsWallRunning() bool
	// WallRun returns the active wall-run context, if any.
	WallRun() (WallRunContext, bool)

	// PressedJump returns true if jump is requested for the current move.
	PressedJump() bool
	SetPressedJump(pressed bool)
	// JumpCount returns the number of jumps since the character last landed.
	JumpCount() int
	SetJumpCount(count int)
	// ResetJumpState clears the jump count and any pending jump request.
	ResetJumpState()
	// WantsToCrouch returns true if crouching is requested for the current move.
	WantsToCrouch() bool
	SetWantsToCrouch(crouch bool)
	// Crouching returns true if the character is crouched.
	Crouching() bool
	SetCrouching(crouching bool)
	// Sprinting returns true if the sprint input is held.
	Sprinting() bool
	SetSprinting(sprinting bool)
	// WantsToSprint returns the derived sprint intent flag.
	WantsToSprint() bool
	// CanWallRun returns the derived flag allowing wall running.
	CanWallRun() bool

	// UpdateDerivedFlags recomputes the sprint intent and wall-run permission flags. It only
	// has an effect on locally controlled instances.
	UpdateDerivedFlags()
	// CompressedFlags returns the flag byte describing the current move.
	CompressedFlags() CompressedFlags
	// UpdateFromCompressedFlags restores the flags of a move from its flag byte.
	UpdateFromCompressedFlags(flags CompressedFlags)

	// CanWallRunOnSurface returns true if a surface with the given normal can be wall run on.
	CanWallRunOnSurface(normal mgl32.Vec3) bool
	// HasRequiredSpeed returns true if the horizontal speed is high enough to wall run.
	HasRequiredSpeed() bool
	// AreWallRunKeysDown returns true if the keys required to wall run are held.
	AreWallRunKeysDown() bool
	// FindWallRunDirectionAndSide derives the run direction and wall side from a wall normal.
	FindWallRunDirectionAndSide(normal mgl32.Vec3) (mgl32.Vec3, WallRunSide)
	// IsNextToWall probes for a wall on the recorded side of the character.
	IsNextToWall(verticalTolerance float32) bool
	// StartWallRun enters the wall-run mode if the component is falling and may wall run.
	StartWallRun() bool
	// EndWallRun leaves the wall-run mode for falling.
	EndWallRun()
	// ProcessLanded handles the character landing on a walkable floor.
	ProcessLanded()

	// GravityZ returns the gravity acceleration for the current mode.
	GravityZ() float32
	// MaxSpeed returns the maximum horizontal speed for the current mode.
	MaxSpeed() float32
	// WallRunVerticalCurve returns the curve driving vertical velocity while wall running.
	WallRunVerticalCurve() game.Curve

	// Snapshot copies the movement state.
	Snapshot() MovementSnapshot
	// Restore overwrites the movement state with a snapshot.
	Restore(snapshot MovementSnapshot)

	// BeginPlay subscribes the component to the player's hits where its role requires it.
	BeginPlay()
	// Destroy unsubscribes the component from the player's hits.
	Destroy()
}

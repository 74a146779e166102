package component

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

// WallRunMovementComponent is the movement component of a character able to run along walls.
type WallRunMovementComponent struct {
	mPlayer *player.Player

	pos, vel mgl32.Vec3
	accel    mgl32.Vec3
	yaw      float32

	mode       player.MovementMode
	customMode player.CustomMode
	wallRun    player.WallRunContext

	pressedJump bool
	jumpCount   int

	wantsToCrouch, crouching bool
	sprinting, wantsToSprint bool
	canWallRun               bool

	verticalCurve game.Curve
	subscribed    bool
}

// NewWallRunMovementComponent creates a falling movement component for the player. The wall-run
// vertical curve is built from the player's settings.
func NewWallRunMovementComponent(p *player.Player) *WallRunMovementComponent {
	mc := &WallRunMovementComponent{
		mPlayer: p,
		mode:    player.ModeFalling,
	}
	curve, err := p.Settings().WallRun.VerticalCurveAsset()
	if err != nil {
		p.Log().Warnf("invalid wall run curve, vertical velocity will stay at zero: %v", err)
	}
	mc.verticalCurve = curve
	return mc
}

// Pos returns the center of the collision hull of the movement component.
func (mc *WallRunMovementComponent) Pos() mgl32.Vec3 {
	return mc.pos
}

// SetPos sets the center of the collision hull of the movement component.
func (mc *WallRunMovementComponent) SetPos(newPos mgl32.Vec3) {
	mc.pos = newPos
}

// Vel returns the velocity of the movement component.
func (mc *WallRunMovementComponent) Vel() mgl32.Vec3 {
	return mc.vel
}

// SetVel sets the velocity of the movement component.
func (mc *WallRunMovementComponent) SetVel(newVel mgl32.Vec3) {
	mc.vel = newVel
}

// Yaw returns the facing direction of the movement component in degrees.
func (mc *WallRunMovementComponent) Yaw() float32 {
	return mc.yaw
}

// SetYaw sets the facing direction of the movement component in degrees.
func (mc *WallRunMovementComponent) SetYaw(yaw float32) {
	mc.yaw = game.WrapYaw(yaw)
}

// Acceleration returns the input acceleration of the current move.
func (mc *WallRunMovementComponent) Acceleration() mgl32.Vec3 {
	return mc.accel
}

// SetAcceleration sets the input acceleration of the current move.
func (mc *WallRunMovementComponent) SetAcceleration(accel mgl32.Vec3) {
	mc.accel = accel
}

// BoundingBox returns the collision hull of the movement component in world space.
func (mc *WallRunMovementComponent) BoundingBox() cube.BBox {
	s := mc.mPlayer.Settings().Movement
	return game.HullFromCapsule(s.CapsuleRadius, s.CapsuleHalfHeight).Translate(mc.pos)
}

// Mode returns the current movement mode.
func (mc *WallRunMovementComponent) Mode() player.MovementMode {
	return mc.mode
}

// CustomMode returns the current custom sub-mode.
func (mc *WallRunMovementComponent) CustomMode() player.CustomMode {
	return mc.customMode
}

// SetMovementMode switches the movement mode. The custom sub-mode is discarded for every mode
// other than ModeCustom. Setting the current mode again does nothing.
func (mc *WallRunMovementComponent) SetMovementMode(mode player.MovementMode, custom player.CustomMode) {
	if mode != player.ModeCustom {
		custom = player.CustomModeNone
	}
	if mode == mc.mode && custom == mc.customMode {
		return
	}

	prevMode, prevCustom := mc.mode, mc.customMode
	mc.mode, mc.customMode = mode, custom
	mc.onMovementModeChanged(prevMode, prevCustom)
}

// IsCustomMovementMode returns true if the component is in ModeCustom with the given sub-mode.
func (mc *WallRunMovementComponent) IsCustomMovementMode(custom player.CustomMode) bool {
	return mc.mode == player.ModeCustom && mc.customMode == custom
}

// IsWallRunning ...
func (mc *WallRunMovementComponent) IsWallRunning() bool {
	return mc.IsCustomMovementMode(player.CustomModeWallRunning)
}

// WallRun returns the active wall-run context. The boolean is false if the component is not
// wall running.
func (mc *WallRunMovementComponent) WallRun() (player.WallRunContext, bool) {
	if !mc.IsWallRunning() {
		return player.WallRunContext{}, false
	}
	return mc.wallRun, true
}

func (mc *WallRunMovementComponent) onMovementModeChanged(prevMode player.MovementMode, prevCustom player.CustomMode) {
	wasWallRunning := prevMode == player.ModeCustom && prevCustom == player.CustomModeWallRunning
	switch isWallRunning := mc.IsWallRunning(); {
	case isWallRunning && !wasWallRunning:
		mc.wallRun.ActivationTime = mc.mPlayer.Clock().Now()
	case !isWallRunning && wasWallRunning:
		mc.wallRun = player.WallRunContext{}
	}

	mc.mPlayer.Dbg.Notify(
		player.DebugModeWallRun,
		true,
		"mode changed %v/%v -> %v/%v (t=%v)",
		prevMode, prevCustom, mc.mode, mc.customMode, mc.mPlayer.Clock().Now(),
	)
}

// PressedJump returns true if a jump is requested for the current move.
func (mc *WallRunMovementComponent) PressedJump() bool {
	return mc.pressedJump
}

// SetPressedJump sets whether a jump is requested for the current move.
func (mc *WallRunMovementComponent) SetPressedJump(pressed bool) {
	mc.pressedJump = pressed
}

// JumpCount returns the number of jumps since the component last landed.
func (mc *WallRunMovementComponent) JumpCount() int {
	return mc.jumpCount
}

// SetJumpCount ...
func (mc *WallRunMovementComponent) SetJumpCount(count int) {
	mc.jumpCount = count
}

// ResetJumpState clears the jump count and any pending jump request, so the next jump input is
// honored immediately.
func (mc *WallRunMovementComponent) ResetJumpState() {
	mc.jumpCount = 0
	mc.pressedJump = false
}

// WantsToCrouch returns true if crouching is requested for the current move.
func (mc *WallRunMovementComponent) WantsToCrouch() bool {
	return mc.wantsToCrouch
}

// SetWantsToCrouch ...
func (mc *WallRunMovementComponent) SetWantsToCrouch(crouch bool) {
	mc.wantsToCrouch = crouch
}

// Crouching returns true if the movement component is crouched.
func (mc *WallRunMovementComponent) Crouching() bool {
	return mc.crouching
}

// SetCrouching sets whether the movement component is crouched.
func (mc *WallRunMovementComponent) SetCrouching(crouching bool) {
	mc.crouching = crouching
}

// Sprinting returns true if sprinting was requested by the input of the current move.
func (mc *WallRunMovementComponent) Sprinting() bool {
	return mc.sprinting
}

// SetSprinting sets wether or not sprinting is requested by the input of the current move.
func (mc *WallRunMovementComponent) SetSprinting(sprinting bool) {
	mc.sprinting = sprinting
}

// WantsToSprint returns true if the component is sprinting in the direction it is facing.
func (mc *WallRunMovementComponent) WantsToSprint() bool {
	return mc.wantsToSprint
}

// CanWallRun returns true if the component may start or continue a wall run.
func (mc *WallRunMovementComponent) CanWallRun() bool {
	return mc.canWallRun
}

// GravityZ returns the gravity acceleration for the current mode. Wall running is fully curve
// driven and has no gravity.
func (mc *WallRunMovementComponent) GravityZ() float32 {
	if mc.IsWallRunning() {
		return 0
	}
	s := mc.mPlayer.Settings().Movement
	return s.GravityZ * s.GravityScale
}

// MaxSpeed returns the maximum horizontal speed for the current mode.
func (mc *WallRunMovementComponent) MaxSpeed() float32 {
	s := mc.mPlayer.Settings().Movement
	switch mc.mode {
	case player.ModeWalking:
		if mc.crouching {
			return s.MaxWalkSpeedCrouched
		} else if mc.wantsToSprint {
			return s.SprintSpeed
		}
		return s.MaxWalkSpeed
	case player.ModeCustom:
		return s.MaxCustomMovementSpeed
	default:
		return s.MaxWalkSpeed
	}
}

// WallRunVerticalCurve returns the curve driving vertical velocity while wall running, or nil
// if the component has none.
func (mc *WallRunMovementComponent) WallRunVerticalCurve() game.Curve {
	return mc.verticalCurve
}

// SetWallRunVerticalCurve replaces the curve driving vertical velocity while wall running.
func (mc *WallRunMovementComponent) SetWallRunVerticalCurve(c game.Curve) {
	mc.verticalCurve = c
}

// Snapshot ...
func (mc *WallRunMovementComponent) Snapshot() player.MovementSnapshot {
	return player.MovementSnapshot{
		Pos:           mc.pos,
		Vel:           mc.vel,
		Yaw:           mc.yaw,
		Mode:          mc.mode,
		CustomMode:    mc.customMode,
		WallRun:       mc.wallRun,
		Acceleration:  mc.accel,
		PressedJump:   mc.pressedJump,
		JumpCount:     mc.jumpCount,
		WantsToCrouch: mc.wantsToCrouch,
		Crouching:     mc.crouching,
		Sprinting:     mc.sprinting,
		WantsToSprint: mc.wantsToSprint,
		CanWallRun:    mc.canWallRun,
	}
}

// Restore overwrites the movement state with the snapshot. No mode change callback runs, since
// the snapshot already holds the context of its mode.
func (mc *WallRunMovementComponent) Restore(s player.MovementSnapshot) {
	mc.pos, mc.vel, mc.yaw = s.Pos, s.Vel, s.Yaw
	mc.mode, mc.customMode = s.Mode, s.CustomMode
	mc.wallRun = s.WallRun
	mc.accel = s.Acceleration
	mc.pressedJump, mc.jumpCount = s.PressedJump, s.JumpCount
	mc.wantsToCrouch, mc.crouching = s.WantsToCrouch, s.Crouching
	mc.sprinting, mc.wantsToSprint = s.Sprinting, s.WantsToSprint
	mc.canWallRun = s.CanWallRun
}

// BeginPlay subscribes the component to the player's hits unless the player is a simulated proxy,
// which never runs the wall-run state machine itself.
func (mc *WallRunMovementComponent) BeginPlay() {
	if mc.subscribed || mc.mPlayer.Role() <= player.RoleSimulatedProxy {
		return
	}
	mc.mPlayer.Hits().Subscribe(mc)
	mc.subscribed = true
}

// Destroy unsubscribes the component from the player's hits.
func (mc *WallRunMovementComponent) Destroy() {
	if !mc.subscribed {
		return
	}
	mc.mPlayer.Hits().Unsubscribe(mc)
	mc.subscribed = false
}

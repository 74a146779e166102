package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/world"
)

var (
	rightSideAxis = mgl32.Vec3{0, 0, 1}
	leftSideAxis  = mgl32.Vec3{0, 0, -1}
)

func sideAxis(side player.WallRunSide) mgl32.Vec3 {
	if side == player.WallRunSideRight {
		return rightSideAxis
	}
	return leftSideAxis
}

// CanWallRunOnSurface returns true if the surface is steep enough to run along. Surfaces facing
// downward past the ceiling threshold are rejected, as are flat floors and ceilings. The angle
// between the normal and its horizontal projection must be strictly below the walkable floor
// angle; anything shallower is walked on instead.
func (mc *WallRunMovementComponent) CanWallRunOnSurface(normal mgl32.Vec3) bool {
	s := mc.mPlayer.Settings()
	if normal.Z() < s.WallRun.CeilingNormalZ {
		return false
	}

	normal = game.SafeNormalize(normal)
	horizontal := game.SafeNormalize(game.Horizontal(normal))
	if horizontal.LenSqr() == 0 {
		return false
	}

	angle := mgl32.RadToDeg(math32.Acos(game.ClampFloat(horizontal.Dot(normal), -1, 1)))
	return angle < s.Movement.WalkableFloorAngle
}

// HasRequiredSpeed returns true if the horizontal speed is strictly above the minimum wall-run
// speed.
func (mc *WallRunMovementComponent) HasRequiredSpeed() bool {
	return game.Vec3HzDist(mc.vel) > mc.mPlayer.Settings().WallRun.MinWallRunSpeed
}

// AreWallRunKeysDown returns true if the sprint action is held. Instances that are not locally
// controlled never query input and always return false.
func (mc *WallRunMovementComponent) AreWallRunKeysDown() bool {
	if !mc.mPlayer.IsLocallyControlled() {
		return false
	}
	controller := mc.mPlayer.Controller()
	if controller == nil {
		return false
	}
	return controller.IsActionHeld(player.ActionSprint)
}

// FindWallRunDirectionAndSide classifies the wall as Right if its normal points to the right of
// the character, and Left otherwise. The direction is the normal crossed with the side's
// vertical axis, which always points forward along the wall.
func (mc *WallRunMovementComponent) FindWallRunDirectionAndSide(normal mgl32.Vec3) (mgl32.Vec3, player.WallRunSide) {
	side := player.WallRunSideLeft
	if game.Horizontal(normal).Dot(game.RightVector(mc.yaw)) > 0 {
		side = player.WallRunSideRight
	}
	return game.SafeNormalize(normal.Cross(sideAxis(side))), side
}

// StartWallRun enters the wall-run mode. It fails, leaving the mode untouched, unless the
// component is falling and allowed to wall run. The direction and side must be set beforehand.
func (mc *WallRunMovementComponent) StartWallRun() bool {
	if mc.mode != player.ModeFalling || !mc.canWallRun {
		mc.mPlayer.Dbg.Notify(player.DebugModeWallRun, true, "wall run refused (mode=%v canWallRun=%v)", mc.mode, mc.canWallRun)
		return false
	}
	mc.SetMovementMode(player.ModeCustom, player.CustomModeWallRunning)
	return true
}

// EndWallRun leaves the wall-run mode for falling.
func (mc *WallRunMovementComponent) EndWallRun() {
	mc.SetMovementMode(player.ModeFalling, player.CustomModeNone)
}

// OnActorHit starts a wall run when a falling character hits an eligible wall that the adjacency
// probe confirms.
func (mc *WallRunMovementComponent) OnActorHit(hit world.HitResult) bool {
	if mc.IsWallRunning() || mc.mode != player.ModeFalling {
		return false
	}
	if !mc.CanWallRunOnSurface(hit.Normal) {
		mc.mPlayer.Dbg.Notify(player.DebugModeWallRun, true, "surface %v cannot be wall run on", hit.Normal)
		return false
	}

	mc.wallRun.Direction, mc.wallRun.Side = mc.FindWallRunDirectionAndSide(hit.Normal)
	if !mc.IsNextToWall(0) {
		mc.mPlayer.Dbg.Notify(player.DebugModeWallRun, true, "adjacency probe failed for hit at %v", hit.Point)
		mc.wallRun = player.WallRunContext{}
		return false
	}
	if !mc.StartWallRun() {
		mc.wallRun = player.WallRunContext{}
		return false
	}
	return true
}

// ProcessLanded ends any wall run before the regular landing, then resets the jump state.
func (mc *WallRunMovementComponent) ProcessLanded() {
	if mc.IsWallRunning() {
		mc.EndWallRun()
	}

	mc.vel[game.UpAxis] = 0
	mc.SetMovementMode(player.ModeWalking, player.CustomModeNone)
	mc.ResetJumpState()
}

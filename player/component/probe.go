package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/world"
)

// IsNextToWall probes for a wall on the recorded side of the character, starting slightly ahead
// of it along the run direction. A non-zero tolerance casts two rays offset by half of it above
// and below the nominal height, and either may hit. The hit must classify as the recorded side;
// on success the run direction follows the newly hit surface.
func (mc *WallRunMovementComponent) IsNextToWall(verticalTolerance float32) bool {
	w := mc.mPlayer.World()
	if w == nil {
		return false
	}

	s := mc.mPlayer.Settings().WallRun
	start := mc.pos.Add(mc.wallRun.Direction.Mul(s.ProbeForwardOffset))
	end := start.Add(mc.wallRun.Direction.Cross(sideAxis(mc.wallRun.Side)).Mul(s.ProbeLength))

	var (
		hit world.HitResult
		ok  bool
	)
	if verticalTolerance > game.KindaSmallNumber {
		offset := mgl32.Vec3{0, 0, verticalTolerance / 2}
		if hit, ok = w.RayCast(start.Add(offset), end.Add(offset)); !ok {
			hit, ok = w.RayCast(start.Sub(offset), end.Sub(offset))
		}
	} else {
		hit, ok = w.RayCast(start, end)
	}
	if !ok {
		mc.mPlayer.Dbg.Notify(player.DebugModeWallRun, true, "no wall found from %v to %v", start, end)
		return false
	}

	dir, side := mc.FindWallRunDirectionAndSide(hit.Normal)
	if side != mc.wallRun.Side {
		mc.mPlayer.Dbg.Notify(player.DebugModeWallRun, true, "wall side changed from %v to %v", mc.wallRun.Side, side)
		return false
	}
	mc.wallRun.Direction = dir
	return true
}

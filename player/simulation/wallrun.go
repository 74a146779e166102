package simulation

import (
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

// physWallRunning moves the player along the wall at a constant horizontal speed, with the
// vertical velocity driven by the wall-run curve. The wall run ends, and the tick continues as
// falling, as soon as the player may no longer wall run or the wall is no longer next to it.
func physWallRunning(p *player.Player, dt float32, iterations int) {
	movement := p.Movement()
	s := p.Settings()
	if dt < s.Movement.MinTickTime {
		return
	}

	if !movement.CanWallRun() {
		p.Dbg.Notify(player.DebugModeWallRun, true, "wall run ended: can no longer wall run")
		movement.EndWallRun()
		startNewPhysics(p, dt, iterations+1)
		return
	}
	if !movement.IsNextToWall(s.WallRun.LineTraceVerticalTolerance) {
		p.Dbg.Notify(player.DebugModeWallRun, true, "wall run ended: no adjacent wall")
		movement.EndWallRun()
		startNewPhysics(p, dt, iterations+1)
		return
	}

	ctx, _ := movement.WallRun()
	newVel := game.Horizontal(ctx.Direction).Mul(s.WallRun.WallRunSpeed)
	if curve := movement.WallRunVerticalCurve(); curve != nil {
		newVel[game.UpAxis] = curve.Value(p.Clock().Now() - ctx.ActivationTime)
	}
	movement.SetVel(newVel)
	p.Dbg.Notify(player.DebugModeWallRun, true, "wall run velocity %v (side=%v elapsed=%v)", newVel, ctx.Side, p.Clock().Now()-ctx.ActivationTime)

	res := safeMove(p, newVel.Mul(dt))
	movement.SetVel(applyClipping(newVel, res))
	publishHits(p, res)

	if res.landed() {
		p.Dbg.Notify(player.DebugModeWallRun, true, "landed while wall running at %v", movement.Pos())
		movement.ProcessLanded()
	}
}

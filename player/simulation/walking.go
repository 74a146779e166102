package simulation

import (
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

func physWalking(p *player.Player, dt float32) {
	movement := p.Movement()
	s := p.Settings().Movement

	newVel := calcVelocity(movement.Vel(), movement.Acceleration(), movement.MaxSpeed(), s.GroundFriction, s.BrakingDecelerationWalking, dt)
	movement.SetVel(newVel)

	res := safeMove(p, newVel.Mul(dt))
	movement.SetVel(applyClipping(newVel, res))
	publishHits(p, res)

	if movement.Mode() != player.ModeWalking {
		return
	}
	if !findFloor(p) {
		p.Dbg.Notify(player.DebugModeMovementSim, true, "no floor under %v, falling", movement.Pos())
		movement.SetMovementMode(player.ModeFalling, player.CustomModeNone)
		return
	}

	// Grounded movement has no vertical velocity.
	v := movement.Vel()
	v[game.UpAxis] = 0
	movement.SetVel(v)
}

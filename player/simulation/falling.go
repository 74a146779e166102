package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

func physFalling(p *player.Player, dt float32) {
	movement := p.Movement()
	s := p.Settings().Movement

	oldVel := movement.Vel()
	airAccel := game.Horizontal(movement.Acceleration()).Mul(s.AirControl)
	newVel := calcVelocity(oldVel, airAccel, movement.MaxSpeed(), 0, 0, dt)
	newVel[game.UpAxis] = oldVel.Z() + movement.GravityZ()*dt
	movement.SetVel(newVel)
	p.Dbg.Notify(player.DebugModeMovementSim, true, "falling velocity %v (gravity=%v)", newVel, movement.GravityZ())

	res := safeMove(p, newVel.Mul(dt))
	movement.SetVel(applyClipping(newVel, res))

	// Hits are published while still falling, so that a wall hit can start a wall run.
	publishHits(p, res)

	if res.landed() {
		p.Dbg.Notify(player.DebugModeMovementSim, true, "landed at %v", movement.Pos())
		movement.ProcessLanded()
	} else if res.clipped[game.UpAxis] {
		// Hit a ceiling.
		v := movement.Vel()
		movement.SetVel(mgl32.Vec3{v.X(), v.Y(), 0})
	}
}

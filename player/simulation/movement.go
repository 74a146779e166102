package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/assert"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
)

// maxPhysicsIterations bounds how many times a single tick may restart its physics after a mode
// change.
const maxPhysicsIterations = 8

// PerformMovement runs a movement simulation tick of dt seconds for the player. The flags of the
// current move must already be set on the movement component: fresh local ticks derive them
// beforehand and replayed or received moves restore them from their compressed form.
func PerformMovement(p *player.Player, dt float32) {
	movement := p.Movement()
	assert.IsTrue(movement != nil, game.ErrorInternalMissingMovementComponent)
	assert.IsTrue(p.World() != nil, game.ErrorInternalMissingWorld)

	if dt < p.Settings().Movement.MinTickTime {
		p.Dbg.Notify(player.DebugModeMovementSim, true, "no movement sim: degenerate dt=%v", dt)
		return
	}

	p.Dbg.Notify(player.DebugModeMovementSim, true, "BEGIN movement sim (t=%v dt=%v mode=%v/%v)", p.Clock().Now(), dt, movement.Mode(), movement.CustomMode())
	defer func() {
		p.Dbg.Notify(player.DebugModeMovementSim, true, "END movement sim (pos=%v vel=%v mode=%v/%v)", movement.Pos(), movement.Vel(), movement.Mode(), movement.CustomMode())
	}()

	// Reset the velocity to zero if it's significantly small.
	if movement.Vel().LenSqr() < 1e-12 {
		movement.SetVel(mgl32.Vec3{})
	}

	movement.SetCrouching(movement.WantsToCrouch() && movement.Mode() == player.ModeWalking)
	p.Dbg.Notify(player.DebugModeMovementSim, attemptJump(p, movement), "jump force applied: %v", movement.Vel())

	startNewPhysics(p, dt, 0)
}

// startNewPhysics runs the physics of the current movement mode.
func startNewPhysics(p *player.Player, dt float32, iterations int) {
	if dt < p.Settings().Movement.MinTickTime || iterations >= maxPhysicsIterations {
		return
	}

	switch p.Movement().Mode() {
	case player.ModeWalking:
		physWalking(p, dt)
	case player.ModeFalling:
		physFalling(p, dt)
	case player.ModeCustom:
		physCustom(p, dt, iterations)
	}
}

func attemptJump(p *player.Player, movement player.MovementComponent) bool {
	if !movement.PressedJump() || movement.Mode() != player.ModeWalking {
		return false
	}
	if movement.JumpCount() >= p.Settings().Movement.JumpMaxCount {
		return false
	}

	newVel := movement.Vel()
	newVel[game.UpAxis] = p.Settings().Movement.JumpZVelocity
	movement.SetVel(newVel)
	movement.SetMovementMode(player.ModeFalling, player.CustomModeNone)
	movement.SetJumpCount(movement.JumpCount() + 1)
	return true
}

// calcVelocity returns the horizontal velocity after one tick of acceleration, friction and
// braking. A velocity that already exceeds maxSpeed is not accelerated past its current speed.
func calcVelocity(vel, accel mgl32.Vec3, maxSpeed, friction, braking, dt float32) mgl32.Vec3 {
	vel, accel = game.Horizontal(vel), game.Horizontal(accel)
	speed := vel.Len()

	if accel.LenSqr() < game.SmallNumber {
		if speed < game.KindaSmallNumber {
			return mgl32.Vec3{}
		}
		decel := vel.Mul(-friction).Add(vel.Mul(-braking / speed))
		newVel := vel.Add(decel.Mul(dt))
		// Braking never reverses the velocity.
		if newVel.Dot(vel) <= 0 {
			return mgl32.Vec3{}
		}
		return newVel
	}

	accelDir := game.SafeNormalize(accel)
	vel = vel.Sub(vel.Sub(accelDir.Mul(speed)).Mul(game.ClampFloat(dt*friction, 0, 1)))
	vel = vel.Add(accel.Mul(dt))

	limit := maxSpeed
	if speed > maxSpeed {
		limit = speed
	}
	if vel.Len() > limit {
		vel = game.SafeNormalize(vel).Mul(limit)
	}
	return vel
}

package simulation

import "github.com/oomph-ac/wallrun/player"

// customPhysicsFunc runs the physics of a custom movement mode for one tick.
type customPhysicsFunc func(p *player.Player, dt float32, iterations int)

// customPhysics maps custom movement modes to their physics. Modes without an entry, such as
// sliding, do nothing.
var customPhysics map[player.CustomMode]customPhysicsFunc

func init() {
	customPhysics = map[player.CustomMode]customPhysicsFunc{
		player.CustomModeWallRunning: physWallRunning,
	}
}

func physCustom(p *player.Player, dt float32, iterations int) {
	// Simulated proxies only display replicated state.
	if p.Role() == player.RoleSimulatedProxy {
		return
	}

	mode := p.Movement().CustomMode()
	phys, ok := customPhysics[mode]
	if !ok {
		p.Dbg.Notify(player.DebugModeMovementSim, true, "no physics for custom mode %v", mode)
		return
	}
	phys(p, dt, iterations)
}

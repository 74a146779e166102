package component

import "github.com/oomph-ac/wallrun/player"

// Register registers the components for the given player.
func Register(p *player.Player) {
	mc := NewWallRunMovementComponent(p)
	p.SetMovement(mc)
	mc.BeginPlay()
}

// Package arena is the level shared by the example server and client.
package arena

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/world"
)

// New returns a floor with a long wall running along the X-axis, facing +Y.
func New() *world.World {
	return world.New(
		cube.Box(-5000, -5000, -100, 5000, 5000, 0),
		cube.Box(-2000, -300, 0, 2000, -250, 1500),
	)
}

// Spawn is the state every character starts in: airborne next to the wall, drifting towards it.
func Spawn() player.MovementSnapshot {
	return player.MovementSnapshot{
		Pos:  mgl32.Vec3{-1500, -150, 400},
		Vel:  mgl32.Vec3{400, -150, 0},
		Mode: player.ModeFalling,
	}
}

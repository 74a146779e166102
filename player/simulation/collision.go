package simulation

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/utils"
	"github.com/oomph-ac/wallrun/world"
)

// sweepOrder is the order axes are resolved in. The vertical axis goes first so that landing is
// resolved before sliding along walls.
var sweepOrder = [3]int{game.UpAxis, 0, 1}

type moveResult struct {
	wanted, delta mgl32.Vec3
	clipped       [3]bool
	hits          []world.HitResult
}

// landed returns true if downward movement was stopped by a floor.
func (r moveResult) landed() bool {
	return r.clipped[game.UpAxis] && r.wanted[game.UpAxis] < 0
}

// safeMove moves the hull of the player by delta, one axis at a time, clipping the movement of
// each axis against nearby collision boxes so the hull slides along anything it hits.
func safeMove(p *player.Player, delta mgl32.Vec3) moveResult {
	movement := p.Movement()
	collisionBB := movement.BoundingBox()
	bbList := p.World().NearbyBBoxes(collisionBB.Extend(delta))
	pos := movement.Pos()

	res := moveResult{wanted: delta}
	for _, axis := range sweepOrder {
		wanted := delta[axis]
		if wanted == 0 {
			continue
		}

		clipped := clipAxis(bbList, collisionBB, axis, wanted)
		offset := mgl32.Vec3{}
		offset[axis] = clipped
		collisionBB = collisionBB.Translate(offset)
		pos = pos.Add(offset)
		res.delta[axis] = clipped

		if clipped != wanted {
			res.clipped[axis] = true
			res.hits = append(res.hits, hitFromSweep(pos, axis, wanted, clipped))
		}
		p.Dbg.Notify(player.DebugModeMovementSim, res.clipped[axis], "axis %d collision: wanted=%v got=%v", axis, wanted, clipped)
	}

	movement.SetPos(pos)
	return res
}

func clipAxis(bbList []cube.BBox, collisionBB cube.BBox, axis int, delta float32) float32 {
	for _, blockBox := range bbList {
		delta = utils.ClipAxis(blockBox, collisionBB, axis, delta)
	}
	return delta
}

// hitFromSweep builds the hit result of a hull stopped along axis after moving travelled out of
// the wanted distance.
func hitFromSweep(pos mgl32.Vec3, axis int, wanted, travelled float32) world.HitResult {
	normal := mgl32.Vec3{}
	if wanted > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}
	return world.HitResult{
		Point:    pos,
		Normal:   normal,
		Distance: math32.Abs(travelled),
		Time:     travelled / wanted,
	}
}

// applyClipping zeroes the velocity on every axis the last move was stopped on.
func applyClipping(vel mgl32.Vec3, res moveResult) mgl32.Vec3 {
	for axis, clipped := range res.clipped {
		if clipped {
			vel[axis] = 0
		}
	}
	return vel
}

// publishHits reports every horizontal hit of the move to the player's hit subscribers.
func publishHits(p *player.Player, res moveResult) {
	for _, hit := range res.hits {
		if hit.Normal[game.UpAxis] != 0 {
			continue
		}
		p.Dbg.Notify(player.DebugModeMovementSim, p.Hits().Publish(hit), "hit %v changed movement state", hit.Normal)
	}
}

// findFloor looks for a floor within the floor probe distance under the player and snaps the
// player onto it.
func findFloor(p *player.Player) bool {
	movement := p.Movement()
	probe := -p.Settings().Movement.FloorProbeDistance
	collisionBB := movement.BoundingBox()
	bbList := p.World().NearbyBBoxes(collisionBB.Extend(mgl32.Vec3{0, 0, probe}))

	down := clipAxis(bbList, collisionBB, game.UpAxis, probe)
	if down <= probe {
		return false
	}
	movement.SetPos(movement.Pos().Add(mgl32.Vec3{0, 0, down}))
	return true
}

package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/wallrun/game"
	"github.com/sasha-s/go-deadlock"
)

// Query is the collision query surface the movement simulation depends on.
type Query interface {
	// RayCast returns the nearest blocking hit along the segment from start to end.
	RayCast(start, end mgl32.Vec3) (HitResult, bool)
	// NearbyBBoxes returns all collision boxes intersecting bb.
	NearbyBBoxes(bb cube.BBox) []cube.BBox
}

// HitResult describes a blocking hit found by a ray cast or a collision sweep.
type HitResult struct {
	// Point is the impact point. For sweeps it is the position of the moving hull when it
	// was stopped.
	Point mgl32.Vec3
	// Normal is the unit surface normal at the impact point.
	Normal mgl32.Vec3
	// Distance is the distance travelled before the hit.
	Distance float32
	// Time is the fraction of the traced segment travelled before the hit.
	Time float32
}

// World is a static world made of axis-aligned collision boxes.
type World struct {
	boxes []cube.BBox
	deadlock.RWMutex
}

// New creates a world containing the given boxes.
func New(boxes ...cube.BBox) *World {
	w := &World{}
	w.boxes = append(w.boxes, boxes...)
	return w
}

// AddBox adds a collision box to the world.
func (w *World) AddBox(bb cube.BBox) {
	w.Lock()
	defer w.Unlock()
	w.boxes = append(w.boxes, bb)
}

// Boxes returns a copy of every collision box in the world.
func (w *World) Boxes() []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	boxes := make([]cube.BBox, len(w.boxes))
	copy(boxes, w.boxes)
	return boxes
}

// NearbyBBoxes ...
func (w *World) NearbyBBoxes(bb cube.BBox) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	var list []cube.BBox
	for _, box := range w.boxes {
		if box.IntersectsWith(bb) {
			list = append(list, box)
		}
	}
	return list
}

// RayCast ...
func (w *World) RayCast(start, end mgl32.Vec3) (HitResult, bool) {
	w.RLock()
	defer w.RUnlock()

	length := end.Sub(start).Len()
	if length < game.KindaSmallNumber {
		return HitResult{}, false
	}

	var (
		closest HitResult
		hit     bool
	)
	for _, box := range w.boxes {
		result, ok := trace.BBoxIntercept(box, start, end)
		if !ok {
			continue
		}

		point := result.Position()
		dist := point.Sub(start).Len()
		if hit && dist >= closest.Distance {
			continue
		}
		closest = HitResult{
			Point:    point,
			Normal:   game.FaceNormal(box, point),
			Distance: dist,
			Time:     dist / length,
		}
		hit = true
	}
	return closest, hit
}

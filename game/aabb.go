package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// HullFromCapsule returns the collision box approximating a capsule of the given radius and half
// height, centered on the origin.
func HullFromCapsule(radius, halfHeight float32) cube.BBox {
	return cube.Box(
		-radius, -radius, -halfHeight,
		radius, radius, halfHeight,
	)
}

// FaceNormal returns the outward normal of the face of box the point lies on. The face whose
// plane is closest to the point wins.
func FaceNormal(box cube.BBox, point mgl32.Vec3) mgl32.Vec3 {
	var (
		normal   mgl32.Vec3
		bestDist = float32(math32.MaxFloat32)
	)
	for axis := 0; axis < 3; axis++ {
		if d := math32.Abs(point[axis] - box.Min()[axis]); d < bestDist {
			bestDist = d
			normal = mgl32.Vec3{}
			normal[axis] = -1
		}
		if d := math32.Abs(point[axis] - box.Max()[axis]); d < bestDist {
			bestDist = d
			normal = mgl32.Vec3{}
			normal[axis] = 1
		}
	}
	return normal
}

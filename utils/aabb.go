package utils

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
)

// clipEpsilon is the distance under which two box faces are considered touching.
const clipEpsilon = float32(1e-3)

// ClipAxis clips delta, the movement of moving along axis, so that moving does not enter
// stationary. Boxes that do not overlap moving on the two other axes never clip it.
func ClipAxis(stationary, moving cube.BBox, axis int, delta float32) float32 {
	if delta == 0 || BBHasZeroVolume(stationary) {
		return delta
	}
	for other := 0; other < 3; other++ {
		if other == axis {
			continue
		}
		if moving.Max()[other] <= stationary.Min()[other]+clipEpsilon || moving.Min()[other] >= stationary.Max()[other]-clipEpsilon {
			return delta
		}
	}

	if delta > 0 && moving.Max()[axis] <= stationary.Min()[axis]+clipEpsilon {
		gap := math32.Max(0, stationary.Min()[axis]-moving.Max()[axis])
		return math32.Min(delta, gap)
	}
	if delta < 0 && moving.Min()[axis] >= stationary.Max()[axis]-clipEpsilon {
		gap := math32.Min(0, stationary.Max()[axis]-moving.Min()[axis])
		return math32.Max(delta, gap)
	}
	return delta
}

// BBHasZeroVolume returns true if the box has no extent at all.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}

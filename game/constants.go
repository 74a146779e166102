package game

const (
	// SmallNumber is the threshold under which squared vector lengths are treated as zero.
	SmallNumber = float32(1e-8)
	// KindaSmallNumber is the threshold under which lengths and tolerances are treated as zero.
	KindaSmallNumber = float32(1e-4)

	// UpAxis is the index of the vertical component in world vectors.
	UpAxis = 2
)

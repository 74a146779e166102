package game

import (
	"sort"

	"github.com/oomph-ac/wallrun/oerror"
)

// Curve maps a time in seconds to a value.
type Curve interface {
	Value(t float32) float32
}

// CurveKey is a single keyframe of a FloatCurve.
type CurveKey struct {
	Time  float32 `toml:"time"`
	Value float32 `toml:"value"`
}

// FloatCurve is a piecewise linear curve. Times before the first key and after the last key
// evaluate to the first and last key's value.
type FloatCurve struct {
	keys []CurveKey
}

// NewFloatCurve creates a curve from the given keys, which must be sorted by time.
func NewFloatCurve(keys ...CurveKey) (*FloatCurve, error) {
	for i := 1; i < len(keys); i++ {
		if keys[i].Time < keys[i-1].Time {
			return nil, oerror.New(ErrorInternalUnsortedCurve, i, keys[i].Time, keys[i-1].Time)
		}
	}
	c := &FloatCurve{keys: make([]CurveKey, len(keys))}
	copy(c.keys, keys)
	return c, nil
}

// Keys returns a copy of the keys of the curve.
func (c *FloatCurve) Keys() []CurveKey {
	keys := make([]CurveKey, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Value evaluates the curve at t. An empty or nil curve always evaluates to zero.
func (c *FloatCurve) Value(t float32) float32 {
	switch {
	case c == nil || len(c.keys) == 0:
		return 0
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[len(c.keys)-1].Time:
		return c.keys[len(c.keys)-1].Value
	}

	// Index of the first key strictly after t; the bounds above guarantee 0 < i < len.
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time > t
	})
	prev, next := c.keys[i-1], c.keys[i]
	span := next.Time - prev.Time
	if span <= 0 {
		return next.Value
	}
	return prev.Value + (next.Value-prev.Value)*((t-prev.Time)/span)
}

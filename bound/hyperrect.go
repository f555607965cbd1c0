package bound

import (
	"fmt"
	"math"

	"github.com/npillmayer/spacetree/codec"
	"gonum.org/v1/gonum/floats"
)

// Hyperrect is an axis-aligned bounding box given by per-dimension
// min/max values.
//
// The empty hyperrect has min=+Inf and max=-Inf in every dimension, so that
// growing it by any point yields the degenerate box containing just that
// point.
type Hyperrect struct {
	min, max []float64
}

// EmptyHyperrect creates an empty box of the given dimensionality.
func EmptyHyperrect(dims int) Hyperrect {
	h := Hyperrect{
		min: make([]float64, dims),
		max: make([]float64, dims),
	}
	for d := 0; d < dims; d++ {
		h.min[d] = math.Inf(1)
		h.max[d] = math.Inf(-1)
	}
	return h
}

// Dims returns the dimensionality of the box.
func (h Hyperrect) Dims() int { return len(h.min) }

// Min returns the lower corner as a view, not a copy.
func (h Hyperrect) Min() []float64 { return h.min }

// Max returns the upper corner as a view, not a copy.
func (h Hyperrect) Max() []float64 { return h.max }

// Grow extends the box to contain pt.
func (h *Hyperrect) Grow(pt []float64) {
	assert(len(pt) == len(h.min), "hyperrect: point dimensionality mismatch")
	for d, v := range pt {
		if v < h.min[d] {
			h.min[d] = v
		}
		if v > h.max[d] {
			h.max[d] = v
		}
	}
}

// GrowBound extends the box to contain another box.
func (h *Hyperrect) GrowBound(other Hyperrect) {
	assert(other.Dims() == h.Dims(), "hyperrect: dimensionality mismatch")
	for d := 0; d < len(h.min); d++ {
		h.min[d] = math.Min(h.min[d], other.min[d])
		h.max[d] = math.Max(h.max[d], other.max[d])
	}
}

// Contains reports whether pt lies inside the box (borders inclusive).
func (h Hyperrect) Contains(pt []float64) bool {
	assert(len(pt) == len(h.min), "hyperrect: point dimensionality mismatch")
	for d, v := range pt {
		if v < h.min[d] || v > h.max[d] {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the box.
func (h Hyperrect) Center() []float64 {
	c := make([]float64, len(h.min))
	floats.AddTo(c, h.min, h.max)
	floats.Scale(0.5, c)
	return c
}

// Width returns the extent of the box along dimension d.
func (h Hyperrect) Width(d int) float64 {
	return h.max[d] - h.min[d]
}

// WidestDim returns the dimension with the greatest extent.
func (h Hyperrect) WidestDim() int {
	widths := make([]float64, len(h.min))
	floats.SubTo(widths, h.max, h.min)
	return floats.MaxIdx(widths)
}

// MinDistance returns the Euclidean distance from pt to the nearest point
// of the box, 0 if pt lies inside. Downstream query algorithms use this as
// a pruning lower bound.
func (h Hyperrect) MinDistance(pt []float64) float64 {
	assert(len(pt) == len(h.min), "hyperrect: point dimensionality mismatch")
	gap := make([]float64, len(pt))
	for d, v := range pt {
		if v < h.min[d] {
			gap[d] = h.min[d] - v
		} else if v > h.max[d] {
			gap[d] = v - h.max[d]
		}
	}
	return floats.Norm(gap, 2)
}

func (h Hyperrect) String() string {
	return fmt.Sprintf("hrect{min=%v, max=%v}", h.min, h.max)
}

// HyperrectCodec serializes hyperrect bounds for tree persistence.
//
// It satisfies the tree core's bound capability.
type HyperrectCodec struct{}

// Magic returns the bound type tag contributed to composite format tags.
func (HyperrectCodec) Magic() codec.Magic {
	return codec.MagicOf("bound.Hyperrect")
}

// Serialize writes the corners of h.
func (HyperrectCodec) Serialize(enc *codec.Encoder, h Hyperrect) error {
	if err := enc.PutFloat64s(h.min); err != nil {
		return err
	}
	return enc.PutFloat64s(h.max)
}

// Deserialize reads a hyperrect written by Serialize.
func (HyperrectCodec) Deserialize(dec *codec.Decoder) (Hyperrect, error) {
	min, err := dec.GetFloat64s()
	if err != nil {
		return Hyperrect{}, err
	}
	max, err := dec.GetFloat64s()
	if err != nil {
		return Hyperrect{}, err
	}
	if len(min) != len(max) {
		return Hyperrect{}, fmt.Errorf("%w: corner lengths %d and %d",
			codec.ErrCorrupt, len(min), len(max))
	}
	return Hyperrect{min: min, max: max}, nil
}

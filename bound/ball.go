package bound

import (
	"fmt"
	"iter"
	"math"

	"github.com/npillmayer/spacetree/codec"
	"gonum.org/v1/gonum/floats"
)

// Ball is a bounding sphere given by center and radius.
type Ball struct {
	center []float64
	radius float64
}

// NewBall creates a ball from a copied center and a radius.
func NewBall(center []float64, radius float64) Ball {
	c := make([]float64, len(center))
	copy(c, center)
	return Ball{center: c, radius: radius}
}

// EncloseBall computes the smallest ball around the centroid of pts.
//
// The point sequence is iterated twice: once for the centroid, once for
// the radius.
func EncloseBall(dims int, pts iter.Seq[[]float64]) Ball {
	center := make([]float64, dims)
	n := 0
	pts(func(pt []float64) bool {
		floats.Add(center, pt)
		n++
		return true
	})
	if n == 0 {
		return Ball{center: center}
	}
	floats.Scale(1/float64(n), center)
	radius := 0.0
	pts(func(pt []float64) bool {
		radius = math.Max(radius, floats.Distance(center, pt, 2))
		return true
	})
	return Ball{center: center, radius: radius}
}

// Dims returns the dimensionality of the ball.
func (b Ball) Dims() int { return len(b.center) }

// Center returns the center as a view, not a copy.
func (b Ball) Center() []float64 { return b.center }

// Radius returns the radius of the ball.
func (b Ball) Radius() float64 { return b.radius }

// Contains reports whether pt lies inside the ball (border inclusive).
func (b Ball) Contains(pt []float64) bool {
	assert(len(pt) == len(b.center), "ball: point dimensionality mismatch")
	return floats.Distance(b.center, pt, 2) <= b.radius
}

// MinDistance returns the Euclidean distance from pt to the nearest point
// of the ball, 0 if pt lies inside.
func (b Ball) MinDistance(pt []float64) float64 {
	assert(len(pt) == len(b.center), "ball: point dimensionality mismatch")
	return math.Max(0, floats.Distance(b.center, pt, 2)-b.radius)
}

func (b Ball) String() string {
	return fmt.Sprintf("ball{center=%v, radius=%g}", b.center, b.radius)
}

// BallCodec serializes ball bounds for tree persistence.
//
// It satisfies the tree core's bound capability.
type BallCodec struct{}

// Magic returns the bound type tag contributed to composite format tags.
func (BallCodec) Magic() codec.Magic {
	return codec.MagicOf("bound.Ball")
}

// Serialize writes center and radius of b.
func (BallCodec) Serialize(enc *codec.Encoder, b Ball) error {
	if err := enc.PutFloat64s(b.center); err != nil {
		return err
	}
	return enc.PutFloat64(b.radius)
}

// Deserialize reads a ball written by Serialize.
func (BallCodec) Deserialize(dec *codec.Decoder) (Ball, error) {
	center, err := dec.GetFloat64s()
	if err != nil {
		return Ball{}, err
	}
	radius, err := dec.GetFloat64()
	if err != nil {
		return Ball{}, err
	}
	return Ball{center: center, radius: radius}, nil
}

package stat

import (
	"gonum.org/v1/gonum/floats"

	"github.com/npillmayer/spacetree/point"
)

// Empty is the no-op statistic for trees that carry no per-node aggregate.
type Empty struct{}

// EmptyInit initializes Empty statistics. It satisfies the tree core's
// statistic capability for any dataset type.
type EmptyInit[D any] struct{}

// Leaf returns the empty statistic.
func (EmptyInit[D]) Leaf(data D, begin, count int) Empty {
	return Empty{}
}

// Internal returns the empty statistic.
func (EmptyInit[D]) Internal(data D, begin, count int, left, right Empty) Empty {
	return Empty{}
}

// Moment aggregates per-dimension first and second moments of the points
// covered by a node.
//
// Weight is the number of points, Sum and SumSq the per-dimension sums of
// values and squared values. Moments of sibling nodes combine by addition,
// so internal nodes never rescan their slice.
type Moment struct {
	Weight float64
	Sum    []float64
	SumSq  []float64
}

// Mean returns the per-dimension mean, or nil for a weightless moment.
func (m Moment) Mean() []float64 {
	if m.Weight == 0 {
		return nil
	}
	mean := make([]float64, len(m.Sum))
	copy(mean, m.Sum)
	floats.Scale(1/m.Weight, mean)
	return mean
}

// Variance returns the per-dimension population variance, or nil for a
// weightless moment.
func (m Moment) Variance() []float64 {
	mean := m.Mean()
	if mean == nil {
		return nil
	}
	v := make([]float64, len(m.SumSq))
	for d := range v {
		v[d] = m.SumSq[d]/m.Weight - mean[d]*mean[d]
	}
	return v
}

// MomentInit initializes Moment statistics over a point matrix. It
// satisfies the tree core's statistic capability.
type MomentInit struct{}

// Leaf scans the points of the slice [begin, begin+count).
func (MomentInit) Leaf(data *point.Matrix, begin, count int) Moment {
	dims := data.Dims()
	m := Moment{
		Weight: float64(count),
		Sum:    make([]float64, dims),
		SumSq:  make([]float64, dims),
	}
	for i := begin; i < begin+count; i++ {
		pt := data.At(i)
		floats.Add(m.Sum, pt)
		for d, v := range pt {
			m.SumSq[d] += v * v
		}
	}
	return m
}

// Internal combines the already-computed child moments without rescanning
// the node's slice.
func (MomentInit) Internal(data *point.Matrix, begin, count int, left, right Moment) Moment {
	dims := len(left.Sum)
	m := Moment{
		Weight: left.Weight + right.Weight,
		Sum:    make([]float64, dims),
		SumSq:  make([]float64, dims),
	}
	floats.AddTo(m.Sum, left.Sum, right.Sum)
	floats.AddTo(m.SumSq, left.SumSq, right.SumSq)
	return m
}

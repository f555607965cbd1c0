package build

import (
	"fmt"
	"sort"

	"github.com/npillmayer/spacetree"
	"github.com/npillmayer/spacetree/bound"
	"github.com/npillmayer/spacetree/point"
)

// DefaultLeafSize is the leaf capacity used when a builder config leaves
// LeafSize unset.
const DefaultLeafSize = 16

// KDTree is a space tree over a point matrix with hyperrect bounds.
type KDTree[S any] = spacetree.Node[*point.Matrix, bound.Hyperrect, S]

// KD builds KD-trees by recursive median splits along the widest
// dimension of each node's bounding box.
//
// Build reorders the points of the matrix in place so that every tree node
// covers a contiguous index range; after Build returns, the point order
// must be left alone for the lifetime of the tree.
type KD[S any] struct {
	// LeafSize is the maximum number of points per leaf.
	LeafSize int
	// Stats computes the per-node statistics during finalization.
	Stats spacetree.StatisticInit[*point.Matrix, S]
}

func (b KD[S]) normalized() KD[S] {
	if b.LeafSize < 1 {
		b.LeafSize = DefaultLeafSize
	}
	return b
}

// Build constructs a KD-tree over all points of data.
func (b KD[S]) Build(data *point.Matrix) (*KDTree[S], error) {
	if b.Stats == nil {
		return nil, fmt.Errorf("%w: statistic capability is required", ErrInvalidConfig)
	}
	if data.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	b = b.normalized()
	root := b.buildNode(data, 0, data.Len())
	tracer().Debugf("KD build: %d points, leaf size %d", data.Len(), b.LeafSize)
	return root, nil
}

func (b KD[S]) buildNode(data *point.Matrix, begin, count int) *KDTree[S] {
	n := &KDTree[S]{}
	n.Init(begin, count)
	hull := boxHull(data, begin, count)
	n.SetBound(hull)

	dim := hull.WidestDim()
	if count <= b.LeafSize || hull.Width(dim) == 0 {
		// Degenerate slices (all points equal) stay a leaf as well.
		n.SetChildren(b.Stats, data, nil, nil)
		return n
	}

	sortByDimension(data, begin, count, dim)
	mid := count / 2
	left := b.buildNode(data, begin, mid)
	right := b.buildNode(data, begin+mid, count-mid)
	n.SetChildren(b.Stats, data, left, right)
	return n
}

// BallTree is a space tree over a point matrix with ball bounds.
type BallTree[S any] = spacetree.Node[*point.Matrix, bound.Ball, S]

// Ball builds ball trees. The split strategy is the same median split as
// for KD-trees; only the stored bound differs: the smallest ball around
// the slice's centroid.
type Ball[S any] struct {
	LeafSize int
	Stats    spacetree.StatisticInit[*point.Matrix, S]
}

func (b Ball[S]) normalized() Ball[S] {
	if b.LeafSize < 1 {
		b.LeafSize = DefaultLeafSize
	}
	return b
}

// Build constructs a ball tree over all points of data.
func (b Ball[S]) Build(data *point.Matrix) (*BallTree[S], error) {
	if b.Stats == nil {
		return nil, fmt.Errorf("%w: statistic capability is required", ErrInvalidConfig)
	}
	if data.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	b = b.normalized()
	root := b.buildNode(data, 0, data.Len())
	tracer().Debugf("ball build: %d points, leaf size %d", data.Len(), b.LeafSize)
	return root, nil
}

func (b Ball[S]) buildNode(data *point.Matrix, begin, count int) *BallTree[S] {
	n := &BallTree[S]{}
	n.Init(begin, count)
	n.SetBound(bound.EncloseBall(data.Dims(), func(yield func([]float64) bool) {
		for i := begin; i < begin+count; i++ {
			if !yield(data.At(i)) {
				return
			}
		}
	}))

	hull := boxHull(data, begin, count)
	dim := hull.WidestDim()
	if count <= b.LeafSize || hull.Width(dim) == 0 {
		n.SetChildren(b.Stats, data, nil, nil)
		return n
	}

	sortByDimension(data, begin, count, dim)
	mid := count / 2
	left := b.buildNode(data, begin, mid)
	right := b.buildNode(data, begin+mid, count-mid)
	n.SetChildren(b.Stats, data, left, right)
	return n
}

// boxHull computes the axis-aligned hull of the points in
// [begin, begin+count).
func boxHull(data *point.Matrix, begin, count int) bound.Hyperrect {
	h := bound.EmptyHyperrect(data.Dims())
	for i := begin; i < begin+count; i++ {
		h.Grow(data.At(i))
	}
	return h
}

// sortByDimension sorts the points in [begin, begin+count) by the given
// dimension, reordering the matrix in place.
func sortByDimension(data *point.Matrix, begin, count, dim int) {
	sort.Sort(byDim{m: data, begin: begin, count: count, dim: dim})
}

type byDim struct {
	m                 *point.Matrix
	begin, count, dim int
}

func (s byDim) Len() int { return s.count }
func (s byDim) Less(i, j int) bool {
	return s.m.At(s.begin+i)[s.dim] < s.m.At(s.begin+j)[s.dim]
}
func (s byDim) Swap(i, j int) { s.m.Swap(s.begin+i, s.begin+j) }

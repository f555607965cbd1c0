package spacetree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/spacetree/bound"
	"github.com/npillmayer/spacetree/point"
	"github.com/npillmayer/spacetree/stat"
)

type momentNode = Node[*point.Matrix, bound.Hyperrect, stat.Moment]

// fixtureData returns 4 points in 2 dimensions, already in tree order.
func fixtureData(t *testing.T) *point.Matrix {
	t.Helper()
	data, err := point.FromRows([][]float64{
		{0, 0},
		{1, 0},
		{4, 1},
		{5, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func hullOf(data *point.Matrix, begin, count int) bound.Hyperrect {
	h := bound.EmptyHyperrect(data.Dims())
	for i := begin; i < begin+count; i++ {
		h.Grow(data.At(i))
	}
	return h
}

func leafNode(t *testing.T, data *point.Matrix, begin, count int) *momentNode {
	t.Helper()
	n := &momentNode{}
	n.Init(begin, count)
	n.SetBound(hullOf(data, begin, count))
	n.SetChildren(stat.MomentInit{}, data, nil, nil)
	return n
}

// fixtureTree builds a root [0,4) with leaves [0,2) and [2,4).
func fixtureTree(t *testing.T, data *point.Matrix) *momentNode {
	t.Helper()
	left := leafNode(t, data, 0, 2)
	right := leafNode(t, data, 2, 2)
	root := &momentNode{}
	root.Init(0, 4)
	root.SetBound(hullOf(data, 0, 4))
	root.SetChildren(stat.MomentInit{}, data, left, right)
	return root
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected %s to panic, did not", what)
		}
	}()
	fn()
}

func TestNodeLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spacetree")
	defer teardown()
	//
	data := fixtureData(t)
	root := fixtureTree(t, data)
	if root.Begin() != 0 || root.End() != 4 || root.Count() != 4 {
		t.Errorf("root covers [%d,%d), #%d, want [0,4) #4", root.Begin(), root.End(), root.Count())
	}
	if root.IsLeaf() {
		t.Error("root with two children must not be a leaf")
	}
	if !root.Left().IsLeaf() || !root.Right().IsLeaf() {
		t.Error("both children should be leaves")
	}
	if err := root.Check(); err != nil {
		t.Error(err)
	}
	root.Print()
}

func TestNodeReinitPanics(t *testing.T) {
	n := &momentNode{}
	n.Init(0, 2)
	expectPanic(t, "reinitialization", func() { n.Init(0, 2) })
}

func TestNodeDoubleFinalizePanics(t *testing.T) {
	data := fixtureData(t)
	leaf := leafNode(t, data, 0, 2)
	expectPanic(t, "second SetChildren", func() {
		leaf.SetChildren(stat.MomentInit{}, data, nil, nil)
	})
}

func TestNodeUnaryChildPanics(t *testing.T) {
	data := fixtureData(t)
	left := leafNode(t, data, 0, 2)
	parent := &momentNode{}
	parent.Init(0, 4)
	expectPanic(t, "single child", func() {
		parent.SetChildren(stat.MomentInit{}, data, left, nil)
	})
}

func TestNodeContiguityPanics(t *testing.T) {
	data := fixtureData(t)
	left := leafNode(t, data, 0, 2)
	right := leafNode(t, data, 3, 1) // gap at index 2
	parent := &momentNode{}
	parent.Init(0, 4)
	expectPanic(t, "non-contiguous children", func() {
		parent.SetChildren(stat.MomentInit{}, data, left, right)
	})
}

func TestLeafStatistic(t *testing.T) {
	data := fixtureData(t)
	leaf := leafNode(t, data, 2, 2)
	m := leaf.Stat()
	if m.Weight != 2 {
		t.Errorf("leaf weight = %g, want 2", m.Weight)
	}
	// Points {4,1} and {5,1}.
	if m.Sum[0] != 9 || m.Sum[1] != 2 {
		t.Errorf("leaf sum = %v, want [9 2]", m.Sum)
	}
}

func TestInternalStatisticCombines(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	m := root.Stat()
	fresh := stat.MomentInit{}.Leaf(data, 0, 4)
	if m.Weight != fresh.Weight {
		t.Errorf("combined weight = %g, want %g", m.Weight, fresh.Weight)
	}
	for d := range m.Sum {
		if m.Sum[d] != fresh.Sum[d] || m.SumSq[d] != fresh.SumSq[d] {
			t.Errorf("combined moment differs from fresh scan in dim %d", d)
		}
	}
}

func TestWalkPreorder(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	var order [][2]int
	root.Walk(func(n *momentNode) bool {
		order = append(order, [2]int{n.Begin(), n.Count()})
		return true
	})
	want := [][2]int{{0, 4}, {0, 2}, {2, 2}}
	if len(order) != len(want) {
		t.Fatalf("walk visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("walk position %d = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestDropCompleteness(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	if released := root.Drop(); released != 3 {
		t.Errorf("Drop released %d nodes, want 3 (2 leaves, 1 internal)", released)
	}
	expectPanic(t, "double Drop", func() { root.Drop() })
}

func TestDropSingleLeaf(t *testing.T) {
	data := fixtureData(t)
	leaf := leafNode(t, data, 0, 4)
	if released := leaf.Drop(); released != 1 {
		t.Errorf("Drop released %d nodes, want 1", released)
	}
}

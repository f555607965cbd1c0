package spacetree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFindEveryNodeByIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spacetree")
	defer teardown()
	//
	data := fixtureData(t)
	root := fixtureTree(t, data)
	root.Walk(func(n *momentNode) bool {
		found := root.FindByBeginCount(n.Begin(), n.Count())
		if found != n {
			t.Errorf("lookup (%d,%d) returned a different node", n.Begin(), n.Count())
		}
		return true
	})
}

func TestFindMissIsNotAnError(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	// (1,2) straddles the partition pivot: the lookup descends into the
	// left leaf [0,2), which no longer contains the queried range, and
	// must still come back as not-found rather than trip an assertion.
	if n := root.FindByBeginCount(1, 2); n != nil {
		t.Errorf("lookup (1,2) = [%d,%d), want not-found", n.Begin(), n.End())
	}
	if n := root.FindByBeginCount(0, 1); n != nil {
		t.Errorf("lookup (0,1) = [%d,%d), want not-found", n.Begin(), n.End())
	}
	if n := root.FindByBeginCount(2, 1); n != nil {
		t.Errorf("lookup (2,1) = [%d,%d), want not-found", n.Begin(), n.End())
	}
}

func TestFindDescendsRightOfPivot(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	right := root.FindByBeginCount(2, 2)
	if right == nil || right != root.Right() {
		t.Error("lookup (2,2) should return the right leaf")
	}
}

func TestFindOutsidePanics(t *testing.T) {
	data := fixtureData(t)
	root := fixtureTree(t, data)
	expectPanic(t, "query beyond the node's range", func() {
		root.FindByBeginCount(2, 4)
	})
}

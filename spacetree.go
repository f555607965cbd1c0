package spacetree

// Node is a node of a binary space partitioning tree over a dataset of
// type D, carrying a bound of type B and a statistic of type S.
//
// A node covers the contiguous dataset slice [begin, begin+count). It has
// either zero or two children; the children of an internal node partition
// the parent's slice with the left child strictly before the right one.
//
// The zero value
//
//	Node[D, B, S]{}
//
// is a valid, uninitialized node. Identity is assigned once through Init,
// and structure plus statistic are finalized once through SetChildren.
// After finalization the node is immutable except for Drop.
type Node[D, B, S any] struct {
	bound       B
	left, right *Node[D, B, S]
	begin       int
	count       int
	stat        S
	state       nodeState
}

// nodeState tracks the build-then-freeze lifecycle of a node. The raw and
// dropped states replace the original poison sentinels: touching a node in
// the wrong state trips an assertion.
type nodeState uint8

const (
	stateRaw     nodeState = iota // no identity assigned yet
	stateStaged                   // identity assigned, structure pending
	stateFrozen                   // finalized, immutable
	stateDropped                  // released, must not be touched
)

// Init assigns the node identity (begin, count) exactly once.
//
// The covered range is [begin, begin+count) with count ≥ 1. Reinitializing
// a node is a contract violation.
func (n *Node[D, B, S]) Init(begin, count int) {
	assert(n.state == stateRaw, "spacetree: Init on a node that already has an identity")
	assert(begin >= 0, "spacetree: negative begin index")
	assert(count >= 1, "spacetree: node must cover at least one point")
	n.begin = begin
	n.count = count
	n.state = stateStaged
}

// SetBound stages the bound computed by the builder.
//
// Must be called between Init and SetChildren; the bound becomes immutable
// together with the rest of the node.
func (n *Node[D, B, S]) SetBound(b B) {
	assert(n.state == stateStaged, "spacetree: SetBound outside the construction phase")
	n.bound = b
}

// SetChildren finalizes the node exactly once and computes its statistic.
//
// With both children nil the node becomes a leaf and its statistic is
// computed by stats.Leaf over the covered slice. With both children
// non-nil the node becomes internal; the children must already be
// finalized and partition the node's range contiguously, i.e.
//
//	left.Begin() == n.Begin()
//	right.Begin() == n.Begin() + left.Count()
//	left.Count() + right.Count() == n.Count()
//
// and the statistic is computed by stats.Internal from the node's own
// slice plus the children's statistics only. Supplying exactly one child,
// violating contiguity, or finalizing twice are contract violations.
//
// Ownership of the children transfers to the node; a child must not be
// attached to two parents.
func (n *Node[D, B, S]) SetChildren(stats StatisticInit[D, S], data D, left, right *Node[D, B, S]) {
	assert(stats != nil, "spacetree: statistic capability is required")
	assert(n.state == stateStaged, "spacetree: SetChildren on a node that is not under construction")
	assert((left == nil) == (right == nil), "spacetree: a node has either zero or two children")
	if left != nil {
		assert(left.state == stateFrozen && right.state == stateFrozen,
			"spacetree: children must be finalized before the parent")
		assert(left.begin == n.begin, "spacetree: left child must start the parent's range")
		assert(right.begin == n.begin+left.count, "spacetree: right child must continue the left one")
		assert(left.count+right.count == n.count, "spacetree: children must cover the parent's range")
		n.left, n.right = left, right
		n.stat = stats.Internal(data, n.begin, n.count, left.stat, right.stat)
	} else {
		n.stat = stats.Leaf(data, n.begin, n.count)
	}
	n.state = stateFrozen
}

// IsLeaf reports whether the node has no children.
func (n *Node[D, B, S]) IsLeaf() bool {
	assert(n.state == stateFrozen, "spacetree: IsLeaf on a node that is not finalized")
	return n.left == nil
}

// Begin returns the first dataset index covered by the node.
func (n *Node[D, B, S]) Begin() int {
	assert(n.state == stateStaged || n.state == stateFrozen, "spacetree: node has no identity")
	return n.begin
}

// End returns the index one beyond the last covered index.
func (n *Node[D, B, S]) End() int {
	assert(n.state == stateStaged || n.state == stateFrozen, "spacetree: node has no identity")
	return n.begin + n.count
}

// Count returns the number of dataset indexes covered by the node.
func (n *Node[D, B, S]) Count() int {
	assert(n.state == stateStaged || n.state == stateFrozen, "spacetree: node has no identity")
	return n.count
}

// Bound returns the node's bounding region.
func (n *Node[D, B, S]) Bound() B {
	assert(n.state == stateStaged || n.state == stateFrozen, "spacetree: node has no identity")
	return n.bound
}

// Stat returns the node's statistic.
func (n *Node[D, B, S]) Stat() S {
	assert(n.state == stateFrozen, "spacetree: statistic of an unfinalized node")
	return n.stat
}

// Left returns the left child, nil for a leaf.
func (n *Node[D, B, S]) Left() *Node[D, B, S] {
	assert(n.state == stateFrozen, "spacetree: children of an unfinalized node")
	return n.left
}

// Right returns the right child, nil for a leaf.
func (n *Node[D, B, S]) Right() *Node[D, B, S] {
	assert(n.state == stateFrozen, "spacetree: children of an unfinalized node")
	return n.right
}

// Walk visits the subtree in preorder (node, left subtree, right subtree)
// and stops early when fn returns false. It reports whether the walk ran
// to completion.
func (n *Node[D, B, S]) Walk(fn func(*Node[D, B, S]) bool) bool {
	assert(n.state == stateFrozen, "spacetree: Walk on an unfinalized node")
	if !fn(n) {
		return false
	}
	if n.left != nil {
		if !n.left.Walk(fn) {
			return false
		}
		return n.right.Walk(fn)
	}
	return true
}

// Drop releases the subtree depth-first: both children are released before
// the node itself. It returns the number of nodes released, which for a
// tree with L leaves is 2L−1.
//
// A dropped node is poisoned; any further use, including a second Drop, is
// a contract violation. Callers must not traverse a partially dropped
// tree.
func (n *Node[D, B, S]) Drop() int {
	assert(n.state == stateFrozen, "spacetree: Drop on a node that is not a finalized tree")
	released := 1
	if n.left != nil {
		released += n.left.Drop()
		released += n.right.Drop()
	}
	var zeroB B
	var zeroS S
	n.left, n.right = nil, nil
	n.bound = zeroB
	n.stat = zeroS
	n.begin, n.count = 0, 0
	n.state = stateDropped
	return released
}

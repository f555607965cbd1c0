package spacetree

// FindByBeginCount looks up a node by its (begin, count) identity.
//
// Every node of a tree is uniquely identified by these two numbers, which
// makes them the portable node reference across process or storage
// boundaries where pointers are meaningless.
//
// The queried range must be contained in the receiver's range; callers
// descending into subtrees are responsible for this precondition. The
// lookup returns nil when no node covers exactly the queried range — a
// miss is a normal outcome, not an error.
func (n *Node[D, B, S]) FindByBeginCount(begin, count int) *Node[D, B, S] {
	assert(n.state == stateFrozen, "spacetree: lookup on an unfinalized node")
	assert(begin >= n.begin, "spacetree: query range starts before the node's range")
	assert(count <= n.count, "spacetree: query range is larger than the node's range")
	if n.begin == begin && n.count == count {
		return n
	}
	if n.left == nil {
		return nil
	}
	// The right child's begin is the partition pivot.
	if begin < n.right.begin {
		return n.left.FindByBeginCount(begin, count)
	}
	return n.right.FindByBeginCount(begin, count)
}

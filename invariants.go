package spacetree

import "fmt"

// Check validates structural tree invariants over the whole subtree.
//
// This checker is intentionally strict and meant for tests: every node
// must be finalized, cover at least one index, have zero or two children,
// children must partition their parent's range contiguously, and no two
// nodes may share a (begin, count) identity.
func (n *Node[D, B, S]) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvariant)
	}
	seen := make(map[[2]int]bool)
	return n.checkNode(seen)
}

func (n *Node[D, B, S]) checkNode(seen map[[2]int]bool) error {
	if n.state != stateFrozen {
		return fmt.Errorf("%w: node is not finalized", ErrInvariant)
	}
	if n.count < 1 {
		return fmt.Errorf("%w: node [%d,%d) covers no points", ErrInvariant, n.begin, n.begin+n.count)
	}
	id := [2]int{n.begin, n.count}
	if seen[id] {
		return fmt.Errorf("%w: duplicate identity (%d,%d)", ErrInvariant, n.begin, n.count)
	}
	seen[id] = true
	if (n.left == nil) != (n.right == nil) {
		return fmt.Errorf("%w: node [%d,%d) has exactly one child", ErrInvariant, n.begin, n.begin+n.count)
	}
	if n.left == nil {
		return nil
	}
	if n.left.begin != n.begin {
		return fmt.Errorf("%w: left child of [%d,%d) starts at %d", ErrInvariant,
			n.begin, n.begin+n.count, n.left.begin)
	}
	if n.right.begin != n.begin+n.left.count {
		return fmt.Errorf("%w: right child of [%d,%d) starts at %d, want %d", ErrInvariant,
			n.begin, n.begin+n.count, n.right.begin, n.begin+n.left.count)
	}
	if n.left.count+n.right.count != n.count {
		return fmt.Errorf("%w: children of [%d,%d) cover %d points", ErrInvariant,
			n.begin, n.begin+n.count, n.left.count+n.right.count)
	}
	if err := n.left.checkNode(seen); err != nil {
		return err
	}
	return n.right.checkNode(seen)
}

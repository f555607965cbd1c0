package spacetree

import (
	"fmt"
	"io"
	"strings"
)

// Print traces the subtree in preorder through the package tracer at debug
// level, one line per node with begin/end/count. Diagnostic only.
func (n *Node[D, B, S]) Print() {
	n.Walk(func(node *Node[D, B, S]) bool {
		tracer().Debugf("node: %d to %d: %d points total",
			node.begin, node.begin+node.count-1, node.count)
		return true
	})
}

// String returns a hierarchical tree diagram of the index ranges, just a
// wrapper for [Node.Fprint]. If Fprint returns an error, String panics.
func (n *Node[D, B, S]) String() string {
	w := new(strings.Builder)
	if err := n.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram of the subtree to w, one node
// per line with its covered range and point count:
//
//	▼ [0,4) #4
//	├─ [0,2) #2
//	└─ [2,4) #2
//
// Diagnostic only; not performance- or correctness-critical.
func (n *Node[D, B, S]) Fprint(w io.Writer) error {
	assert(n.state == stateFrozen, "spacetree: Fprint on an unfinalized node")
	if _, err := fmt.Fprintf(w, "▼ [%d,%d) #%d\n", n.begin, n.begin+n.count, n.count); err != nil {
		return err
	}
	return n.fprintRec(w, "")
}

func (n *Node[D, B, S]) fprintRec(w io.Writer, pad string) error {
	if n.left == nil {
		return nil
	}
	for i, child := range []*Node[D, B, S]{n.left, n.right} {
		glyph, childPad := "├─ ", pad+"│  "
		if i == 1 {
			glyph, childPad = "└─ ", pad+"   "
		}
		if _, err := fmt.Fprintf(w, "%s%s[%d,%d) #%d\n",
			pad, glyph, child.begin, child.begin+child.count, child.count); err != nil {
			return err
		}
		if err := child.fprintRec(w, childPad); err != nil {
			return err
		}
	}
	return nil
}

// Dot outputs the subtree in Graphviz DOT format (for debugging purposes).
//
// Node identifiers in the graph are the stable (begin, count) pairs.
func (n *Node[D, B, S]) Dot(w io.Writer) error {
	assert(n.state == stateFrozen, "spacetree: Dot on an unfinalized node")
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	var werr error
	n.Walk(func(node *Node[D, B, S]) bool {
		if _, werr = fmt.Fprintf(w, "\t\"%d/%d\" [label=\"[%d,%d)\\n#%d\"];\n",
			node.begin, node.count, node.begin, node.begin+node.count, node.count); werr != nil {
			return false
		}
		if node.left != nil {
			if _, werr = fmt.Fprintf(w, "\t\"%d/%d\" -> { \"%d/%d\" \"%d/%d\" };\n",
				node.begin, node.count,
				node.left.begin, node.left.count,
				node.right.begin, node.right.count); werr != nil {
				return false
			}
		}
		return true
	})
	if werr != nil {
		return werr
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

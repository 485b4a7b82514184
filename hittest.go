package engine

import "image"

// HitTest returns the topmost loaded leaf under screen point p in root's
// subtree, or nil. Leaves are tested in reverse draw order against the
// ScreenRect resolved during the last Update. Composites are not
// hit-testable themselves.
func HitTest(root Node, p image.Point) Node {
	leaves := collectDrawOrder(root, nil)
	for i := len(leaves) - 1; i >= 0; i-- {
		if leaves[i].Base().Contains(p) {
			return leaves[i]
		}
	}
	return nil
}

// collectDrawOrder appends the loaded leaves of n's subtree to buf in the
// order DrawChildren visits them.
func collectDrawOrder(n Node, buf []Node) []Node {
	if !n.Base().loaded {
		return buf
	}
	cn, ok := n.(compositeNode)
	if !ok {
		return append(buf, n)
	}
	c := cn.composite()
	if !c.childrenSorted {
		c.rebuildSortedChildren()
	}
	for _, child := range c.sortedChildren {
		if c.participates(child) {
			buf = collectDrawOrder(child, buf)
		}
	}
	return buf
}

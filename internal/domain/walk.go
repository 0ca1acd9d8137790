package domain

import "errors"

// MaxWalkDepth bounds traversal of tool-supplied trees. Real design files
// rarely nest past a few dozen levels.
const MaxWalkDepth = 512

// ErrTreeTooDeep is returned when a traversal exceeds MaxWalkDepth.
var ErrTreeTooDeep = errors.New("node tree exceeds maximum depth")

// WalkFunc is invoked once per visited node. parent is the immediate parent
// of n, nil for the root. The parent is threaded through the callback rather
// than written onto the node, so independent passes never see stale links.
type WalkFunc func(n *Node, parent *Node)

// Walk visits root first, then each child in original order, depth-first.
// A nil root is a no-op.
func Walk(root *Node, fn WalkFunc) error {
	return walk(root, nil, 0, fn)
}

func walk(n, parent *Node, depth int, fn WalkFunc) error {
	if n == nil {
		return nil
	}
	if depth > MaxWalkDepth {
		return ErrTreeTooDeep
	}
	fn(n, parent)
	for _, child := range n.Children {
		if err := walk(child, n, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// ParentIndex maps each node to its immediate parent for one traversal pass.
type ParentIndex map[*Node]*Node

// BuildParentIndex walks the tree and records every parent link. The index
// is rebuilt per pass; it is never stored on the nodes themselves.
func BuildParentIndex(root *Node) (ParentIndex, error) {
	idx := make(ParentIndex)
	err := Walk(root, func(n, parent *Node) {
		if parent != nil {
			idx[n] = parent
		}
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Ancestors returns the chain of ancestors of n, nearest first.
func (idx ParentIndex) Ancestors(n *Node) []*Node {
	var chain []*Node
	for p := idx[n]; p != nil; p = idx[p] {
		chain = append(chain, p)
	}
	return chain
}

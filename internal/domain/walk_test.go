package domain

import (
	"errors"
	"testing"
)

func TestWalk_VisitsDepthFirstInOrder(t *testing.T) {
	root := &Node{
		ID: "root", Type: NodeDocument,
		Children: []*Node{
			{ID: "a", Type: NodeFrame, Children: []*Node{
				{ID: "a1", Type: NodeText},
				{ID: "a2", Type: NodeVector},
			}},
			{ID: "b", Type: NodeFrame},
		},
	}

	var visited []string
	if err := Walk(root, func(n, _ *Node) {
		visited = append(visited, n.ID)
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"root", "a", "a1", "a2", "b"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d (%v)", len(want), len(visited), visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d: expected %s, got %s", i, want[i], visited[i])
		}
	}
}

func TestWalk_ThreadsParent(t *testing.T) {
	child := &Node{ID: "child", Type: NodeText}
	root := &Node{ID: "root", Type: NodeFrame, Children: []*Node{child}}

	parents := map[string]*Node{}
	if err := Walk(root, func(n, parent *Node) {
		parents[n.ID] = parent
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if parents["root"] != nil {
		t.Errorf("expected nil parent for root, got %v", parents["root"])
	}
	if parents["child"] != root {
		t.Errorf("expected root as parent of child")
	}
}

func TestWalk_NilRootIsNoOp(t *testing.T) {
	calls := 0
	if err := Walk(nil, func(_, _ *Node) { calls++ }); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no visits on nil root, got %d", calls)
	}
}

func TestWalk_DepthBudget(t *testing.T) {
	// Chain one node deeper than the budget allows.
	root := &Node{ID: "0", Type: NodeFrame}
	cur := root
	for i := 0; i <= MaxWalkDepth; i++ {
		next := &Node{ID: "n", Type: NodeFrame}
		cur.Children = []*Node{next}
		cur = next
	}

	err := Walk(root, func(_, _ *Node) {})
	if !errors.Is(err, ErrTreeTooDeep) {
		t.Errorf("expected ErrTreeTooDeep, got %v", err)
	}
}

func TestBuildParentIndex_Ancestors(t *testing.T) {
	leaf := &Node{ID: "leaf", Type: NodeText}
	mid := &Node{ID: "mid", Type: NodeGroup, Children: []*Node{leaf}}
	root := &Node{ID: "root", Type: NodeFrame, Children: []*Node{mid}}

	idx, err := BuildParentIndex(root)
	if err != nil {
		t.Fatalf("BuildParentIndex failed: %v", err)
	}

	chain := idx.Ancestors(leaf)
	if len(chain) != 2 || chain[0] != mid || chain[1] != root {
		t.Errorf("expected [mid root], got %d ancestors", len(chain))
	}
}

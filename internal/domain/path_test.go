package domain

import "testing"

func authPageTree() (root, page, view, card, submit *Node) {
	submit = &Node{ID: "4:1", Name: "Submit", Type: NodeFrame}
	card = &Node{ID: "3:1", Name: "Card", Type: NodeFrame, Children: []*Node{submit}}
	view = &Node{ID: "2:1", Name: "Login View", Type: NodeFrame, Children: []*Node{card}}
	page = &Node{ID: "1:1", Name: "Auth", Type: NodeCanvas, Children: []*Node{view}}
	root = &Node{ID: "0:0", Type: NodeDocument, Children: []*Node{page}}
	return
}

func TestNodePath(t *testing.T) {
	root, page, _, _, submit := authPageTree()

	idx, err := BuildParentIndex(root)
	if err != nil {
		t.Fatalf("BuildParentIndex failed: %v", err)
	}

	got := idx.NodePath(submit, page)
	want := "Auth / Login View / Card / Submit"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNodePath_UnnamedFallsBackToID(t *testing.T) {
	leaf := &Node{ID: "5:5", Type: NodeText}
	page := &Node{ID: "1:1", Name: "Page 1", Type: NodeCanvas, Children: []*Node{leaf}}
	root := &Node{ID: "0:0", Type: NodeDocument, Children: []*Node{page}}

	idx, err := BuildParentIndex(root)
	if err != nil {
		t.Fatalf("BuildParentIndex failed: %v", err)
	}

	if got := idx.NodePath(leaf, page); got != "Page 1 / 5:5" {
		t.Errorf("expected %q, got %q", "Page 1 / 5:5", got)
	}
}

func TestPageAndView(t *testing.T) {
	root, page, view, _, submit := authPageTree()

	idx, err := BuildParentIndex(root)
	if err != nil {
		t.Fatalf("BuildParentIndex failed: %v", err)
	}

	if got := idx.Page(submit); got != page {
		t.Errorf("expected page Auth, got %v", got)
	}
	if got := idx.View(submit); got != view {
		t.Errorf("expected view Login View, got %v", got)
	}
	if got := idx.View(page); got != nil {
		t.Errorf("expected nil view for the page itself, got %v", got)
	}

	_ = root
}

func TestInferRole(t *testing.T) {
	cases := []struct {
		viewName string
		nodeName string
		want     string
	}{
		{"Home Screen", "whatever", "home screen"},
		{"Login View", "Submit", "auth screen"},
		{"Checkout Flow", "Pay", "checkout screen"},
		{"Mystery", "Settings toggle", "settings screen"}, // node name is the fallback
		{"Mystery", "Thing", RoleDefault},
	}
	for _, tc := range cases {
		t.Run(tc.viewName+"/"+tc.nodeName, func(t *testing.T) {
			if got := InferRole(tc.viewName, tc.nodeName); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

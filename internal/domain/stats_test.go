package domain

import "testing"

func TestCollectViewStats(t *testing.T) {
	view := &Node{
		Name: "Login View", Type: NodeFrame,
		Fills: []Paint{{Type: PaintImage}},
		Children: []*Node{
			{Type: NodeText, Characters: "Email"},
			{Type: NodeText, Characters: "Password"},
			{Type: NodeVector},
			{Type: NodeInstance, ComponentID: "a"},
			{Type: NodeGroup, Children: []*Node{
				{Type: NodeRectangle, Fills: []Paint{{Type: PaintImage}}},
				{Type: NodeText, Characters: "Forgot?"},
			}},
		},
	}

	stats, err := CollectViewStats(view)
	if err != nil {
		t.Fatalf("CollectViewStats failed: %v", err)
	}

	if stats.Name != "Login View" {
		t.Errorf("expected view name, got %s", stats.Name)
	}
	if stats.Nodes != 8 {
		t.Errorf("expected 8 nodes, got %d", stats.Nodes)
	}
	if stats.Texts != 3 {
		t.Errorf("expected 3 texts, got %d", stats.Texts)
	}
	if stats.Vectors != 1 {
		t.Errorf("expected 1 vector, got %d", stats.Vectors)
	}
	if stats.Instances != 1 {
		t.Errorf("expected 1 instance, got %d", stats.Instances)
	}
	if stats.ImageFills != 2 {
		t.Errorf("expected 2 image fills, got %d", stats.ImageFills)
	}
}

func TestCollectViewStats_NilView(t *testing.T) {
	stats, err := CollectViewStats(nil)
	if err != nil {
		t.Fatalf("CollectViewStats failed: %v", err)
	}
	if stats.Nodes != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

package domain

import "testing"

func TestCountComponentUsage(t *testing.T) {
	components := map[string]Component{
		"a": {Key: "key-a", Name: "Component A"},
		"b": {Key: "key-b", Name: "Component B"},
	}

	var children []*Node
	for i := 0; i < 4; i++ {
		children = append(children, &Node{Type: NodeInstance, ComponentID: "a"})
	}
	for i := 0; i < 2; i++ {
		children = append(children, &Node{Type: NodeInstance, ComponentID: "b"})
	}
	children = append(children, &Node{Type: NodeInstance, ComponentID: "ghost"})
	page := &Node{Name: "Page 1", Type: NodeCanvas, Children: children}

	usage, err := CountComponentUsage(page, components)
	if err != nil {
		t.Fatalf("CountComponentUsage failed: %v", err)
	}

	if len(usage) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(usage))
	}
	if usage[0].Name != "Component A" || usage[0].Count != 4 {
		t.Errorf("expected Component A x4 first, got %s x%d", usage[0].Name, usage[0].Count)
	}
	if usage[1].Name != "Component B" || usage[1].Count != 2 {
		t.Errorf("expected Component B x2 second, got %s x%d", usage[1].Name, usage[1].Count)
	}
	if usage[2].Name != UnknownComponentName || usage[2].Count != 1 {
		t.Errorf("expected unknown component x1 last, got %s x%d", usage[2].Name, usage[2].Count)
	}
	if usage[2].ComponentID != "ghost" {
		t.Errorf("unknown entry should keep its componentId, got %s", usage[2].ComponentID)
	}
}

func TestCountComponentUsage_TieBreaksByName(t *testing.T) {
	components := map[string]Component{
		"1": {Name: "Zebra"},
		"2": {Name: "Apple"},
	}
	page := &Node{Type: NodeCanvas, Children: []*Node{
		{Type: NodeInstance, ComponentID: "1"},
		{Type: NodeInstance, ComponentID: "2"},
	}}

	usage, err := CountComponentUsage(page, components)
	if err != nil {
		t.Fatalf("CountComponentUsage failed: %v", err)
	}
	if usage[0].Name != "Apple" || usage[1].Name != "Zebra" {
		t.Errorf("expected [Apple Zebra], got [%s %s]", usage[0].Name, usage[1].Name)
	}
}

func TestCountComponentUsage_EmptyPage(t *testing.T) {
	usage, err := CountComponentUsage(nil, nil)
	if err != nil {
		t.Fatalf("CountComponentUsage failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("expected no usage entries, got %d", len(usage))
	}
}

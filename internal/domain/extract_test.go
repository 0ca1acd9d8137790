package domain

import "testing"

func fptr(v float64) *float64 { return &v }

func solidFill(r, g, b float64) Paint {
	return Paint{Type: PaintSolid, Color: &Color{R: r, G: g, B: b}}
}

func TestNodeSize_FallbackOrder(t *testing.T) {
	t.Run("bounding box is authoritative", func(t *testing.T) {
		n := &Node{
			AbsoluteBoundingBox: &Rect{Width: 100, Height: 40},
			Size:                &Vector{X: 999, Y: 999},
			Width:               fptr(999),
			Height:              fptr(999),
		}
		w, h, ok := NodeSize(n)
		if !ok || w != 100 || h != 40 {
			t.Errorf("expected 100x40, got %vx%v ok=%v", w, h, ok)
		}
	})

	t.Run("size vector next", func(t *testing.T) {
		n := &Node{Size: &Vector{X: 200, Y: 50}, Width: fptr(999), Height: fptr(999)}
		w, h, ok := NodeSize(n)
		if !ok || w != 200 || h != 50 {
			t.Errorf("expected 200x50, got %vx%v ok=%v", w, h, ok)
		}
	})

	t.Run("direct scalars last", func(t *testing.T) {
		n := &Node{Width: fptr(30), Height: fptr(30)}
		w, h, ok := NodeSize(n)
		if !ok || w != 30 || h != 30 {
			t.Errorf("expected 30x30, got %vx%v ok=%v", w, h, ok)
		}
	})

	t.Run("no geometry means no size", func(t *testing.T) {
		if _, _, ok := NodeSize(&Node{}); ok {
			t.Error("expected ok=false for node without geometry")
		}
	})
}

func TestHasSolidFill(t *testing.T) {
	hidden := false

	if HasSolidFill(&Node{Fills: []Paint{{Type: PaintImage}}}) {
		t.Error("image fill should not count as solid")
	}
	if HasSolidFill(&Node{Fills: []Paint{{Type: PaintSolid}}}) {
		t.Error("solid fill without color should not count")
	}
	if HasSolidFill(&Node{Fills: []Paint{{Type: PaintSolid, Visible: &hidden, Color: &Color{}}}}) {
		t.Error("hidden solid fill should not count")
	}
	if !HasSolidFill(&Node{Fills: []Paint{{Type: PaintImage}, solidFill(1, 1, 1)}}) {
		t.Error("expected solid fill to be found after image fill")
	}
}

func TestHasStroke(t *testing.T) {
	hidden := false

	if HasStroke(&Node{}) {
		t.Error("node without strokes should have none")
	}
	if HasStroke(&Node{Strokes: []Paint{{Type: PaintSolid, Visible: &hidden}}}) {
		t.Error("hidden stroke should not count")
	}
	if !HasStroke(&Node{Strokes: []Paint{{Type: PaintSolid}}}) {
		t.Error("expected visible stroke to count")
	}
}

func TestTextChildren(t *testing.T) {
	n := &Node{Children: []*Node{
		{Type: NodeText, Characters: "Submit"},
		{Type: NodeVector},
		{Type: NodeText, Characters: "Cancel"},
		{Type: NodeText},
	}}

	if got := TextChildCount(n); got != 3 {
		t.Errorf("expected 3 text children, got %d", got)
	}

	samples := TextSamples(n, 2)
	if len(samples) != 2 || samples[0] != "Submit" || samples[1] != "Cancel" {
		t.Errorf("expected [Submit Cancel], got %v", samples)
	}
}

func TestIconChildCount(t *testing.T) {
	components := map[string]Component{
		"1:1": {Key: "k1", Name: "mdi:chevron-right"},
		"1:2": {Key: "k2", Name: "Primary Button"},
	}
	n := &Node{Children: []*Node{
		{Type: NodeVector, Name: "icon/search"},
		{Type: NodeInstance, Name: "arrow", ComponentID: "1:1"},
		{Type: NodeInstance, Name: "ok", ComponentID: "1:2"},
		{Type: NodeText, Name: "Label"},
	}}

	if got := IconChildCount(n, components); got != 2 {
		t.Errorf("expected 2 icon-like children, got %d", got)
	}
}

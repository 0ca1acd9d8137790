package domain

// NodeSize resolves a node's width and height from whichever geometry field
// is present, in fixed fallback order: bounding box, size vector, direct
// scalars. ok is false when none is set; such nodes are excluded from every
// size-based heuristic.
func NodeSize(n *Node) (w, h float64, ok bool) {
	if n == nil {
		return 0, 0, false
	}
	if bb := n.AbsoluteBoundingBox; bb != nil {
		return bb.Width, bb.Height, true
	}
	if n.Size != nil {
		return n.Size.X, n.Size.Y, true
	}
	if n.Width != nil && n.Height != nil {
		return *n.Width, *n.Height, true
	}
	return 0, 0, false
}

// HasSolidFill reports whether any fill layer is a visible SOLID paint with
// a defined color.
func HasSolidFill(n *Node) bool {
	if n == nil {
		return false
	}
	for _, p := range n.Fills {
		if p.Type == PaintSolid && p.IsVisible() && p.Color != nil {
			return true
		}
	}
	return false
}

// HasStroke reports whether any stroke layer is visible.
func HasStroke(n *Node) bool {
	if n == nil {
		return false
	}
	for _, p := range n.Strokes {
		if p.IsVisible() {
			return true
		}
	}
	return false
}

// TextChildCount counts immediate TEXT children.
func TextChildCount(n *Node) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, c := range n.Children {
		if c != nil && c.Type == NodeText {
			count++
		}
	}
	return count
}

// TextSamples returns up to max non-empty text contents of immediate TEXT
// children, in child order.
func TextSamples(n *Node, max int) []string {
	if n == nil || max <= 0 {
		return nil
	}
	var samples []string
	for _, c := range n.Children {
		if c == nil || c.Type != NodeText || c.Characters == "" {
			continue
		}
		samples = append(samples, c.Characters)
		if len(samples) >= max {
			break
		}
	}
	return samples
}

// IconChildCount counts immediate children that look like icons: either
// their own name matches the icon heuristic, or they are an instance of a
// component whose registered name does.
func IconChildCount(n *Node, components map[string]Component) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if IsIconName(c.Name) {
			count++
			continue
		}
		if c.Type == NodeInstance && c.ComponentID != "" {
			if comp, ok := components[c.ComponentID]; ok && IsIconName(comp.Name) {
				count++
			}
		}
	}
	return count
}

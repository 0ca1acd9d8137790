package domain

import (
	"fmt"
	"math"
)

// ColorHex converts a normalized color and an effective opacity to the
// canonical uppercase hex form: #RRGGBB when fully opaque, #RRGGBBAA
// otherwise. Channels round half away from zero, clamped to [0,255].
func ColorHex(c Color, opacity float64) string {
	r := channelByte(c.R)
	g := channelByte(c.G)
	b := channelByte(c.B)
	a := channelByte(opacity)
	if a < 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func channelByte(v float64) int {
	b := int(math.Round(v * 255))
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return b
}

// EffectiveOpacity resolves the opacity for a paint on a node: the paint's
// own opacity when present, else the node's opacity, else fully opaque.
func EffectiveOpacity(p Paint, n *Node) float64 {
	if p.Opacity != nil {
		return *p.Opacity
	}
	if n != nil && n.Opacity != nil {
		return *n.Opacity
	}
	return 1
}

// PaintHex returns the canonical hex of a paint on its owning node, or
// "" when the paint is not a visible solid color.
func PaintHex(p Paint, n *Node) string {
	if p.Type != PaintSolid || !p.IsVisible() || p.Color == nil {
		return ""
	}
	return ColorHex(*p.Color, EffectiveOpacity(p, n))
}

package domain

import "slices"

// Palette caps.
const (
	GlobalPaletteLimit  = 50
	PerViewPaletteLimit = 8
)

// PaletteEntry is one distinct color and how often it occurs.
type PaletteEntry struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// BuildPalette tallies every visible solid fill under root by canonical hex
// and returns entries sorted by descending count, capped at limit (<= 0
// means uncapped). Equal counts order by first-seen traversal order, which
// keeps the result deterministic across runs.
func BuildPalette(root *Node, limit int) ([]PaletteEntry, error) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	err := Walk(root, func(n, _ *Node) {
		for _, p := range n.Fills {
			hex := PaintHex(p, n)
			if hex == "" {
				continue
			}
			if _, ok := counts[hex]; !ok {
				firstSeen[hex] = len(firstSeen)
			}
			counts[hex]++
		}
	})
	if err != nil {
		return nil, err
	}

	palette := make([]PaletteEntry, 0, len(counts))
	for hex, count := range counts {
		palette = append(palette, PaletteEntry{Hex: hex, Count: count})
	}
	slices.SortFunc(palette, func(a, b PaletteEntry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return firstSeen[a.Hex] - firstSeen[b.Hex]
	})

	if limit > 0 && len(palette) > limit {
		palette = palette[:limit]
	}
	return palette, nil
}

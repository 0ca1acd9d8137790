package domain

// ViewStats accumulates per-view node counts.
type ViewStats struct {
	Name       string `json:"name"`
	Nodes      int    `json:"nodes"`
	Texts      int    `json:"texts"`
	Vectors    int    `json:"vectors"`
	Instances  int    `json:"instances"`
	ImageFills int    `json:"imageFills"`
}

// CollectViewStats walks one view and counts nodes by kind. Every visible
// IMAGE paint counts once per occurrence, independent of the solid tally.
func CollectViewStats(view *Node) (ViewStats, error) {
	stats := ViewStats{}
	if view == nil {
		return stats, nil
	}
	stats.Name = view.DisplayName()

	err := Walk(view, func(n, _ *Node) {
		stats.Nodes++
		switch n.Type {
		case NodeText:
			stats.Texts++
		case NodeVector:
			stats.Vectors++
		case NodeInstance:
			stats.Instances++
		}
		for _, p := range n.Fills {
			if p.Type == PaintImage && p.IsVisible() {
				stats.ImageFills++
			}
		}
	})
	if err != nil {
		return ViewStats{}, err
	}
	return stats, nil
}

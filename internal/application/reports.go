package application

import (
	"figlens/internal/domain"
)

// Report shapes returned by every analysis. All of them are pure functions
// of the fetched document: same document in, same report out, input never
// mutated. An absent or empty document degrades to empty collections.

// StyleInfo describes one shared style from the file dictionary.
type StyleInfo struct {
	ID          string `json:"id"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	StyleType   string `json:"styleType,omitempty"`
	Description string `json:"description,omitempty"`
}

// ViewPalette is the top colors of a single top-level container.
type ViewPalette struct {
	ViewName string                `json:"viewName"`
	Palette  []domain.PaletteEntry `json:"palette"`
}

// PagePalette is the palette of one page plus its per-view breakdown.
type PagePalette struct {
	PageName string                `json:"pageName"`
	Palette  []domain.PaletteEntry `json:"palette"`
	Views    []ViewPalette         `json:"views,omitempty"`
}

// PaletteReport is the color analysis of a whole file.
type PaletteReport struct {
	FileName   string                `json:"fileName"`
	FileKey    string                `json:"fileKey"`
	Palette    []domain.PaletteEntry `json:"palette"`
	FillStyles []StyleInfo           `json:"fillStyles,omitempty"`
	Pages      []PagePalette         `json:"pages"`
}

// BuildPaletteReport computes the global top-50 palette, a palette per page,
// a top-8 palette per view, and the file's named FILL styles.
func BuildPaletteReport(doc *domain.Document, fileKey string) (*PaletteReport, error) {
	report := &PaletteReport{FileKey: fileKey, Pages: []PagePalette{}}
	if doc == nil {
		return report, nil
	}
	report.FileName = doc.Name

	global, err := domain.BuildPalette(doc.Document, domain.GlobalPaletteLimit)
	if err != nil {
		return nil, err
	}
	report.Palette = global
	report.FillStyles = stylesOfType(doc, domain.StyleTypeFill)

	for _, page := range doc.Pages() {
		pagePalette, err := domain.BuildPalette(page, domain.GlobalPaletteLimit)
		if err != nil {
			return nil, err
		}
		pp := PagePalette{PageName: page.DisplayName(), Palette: pagePalette}
		for _, view := range page.Children {
			viewPalette, err := domain.BuildPalette(view, domain.PerViewPaletteLimit)
			if err != nil {
				return nil, err
			}
			pp.Views = append(pp.Views, ViewPalette{
				ViewName: view.DisplayName(),
				Palette:  viewPalette,
			})
		}
		report.Pages = append(report.Pages, pp)
	}
	return report, nil
}

func stylesOfType(doc *domain.Document, styleType string) []StyleInfo {
	var styles []StyleInfo
	for id, s := range doc.Styles {
		if s.StyleType != styleType {
			continue
		}
		styles = append(styles, StyleInfo{
			ID:          id,
			Key:         s.Key,
			Name:        s.Name,
			StyleType:   s.StyleType,
			Description: s.Description,
		})
	}
	sortByName(styles, func(s StyleInfo) (string, string) { return s.Name, s.ID })
	return styles
}

// UIElement is one classified node.
type UIElement struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Role   string   `json:"role"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// UIGroups buckets classified nodes by kind.
type UIGroups struct {
	Buttons []UIElement `json:"buttons"`
	Inputs  []UIElement `json:"inputs"`
	Cards   []UIElement `json:"cards"`
}

// PageUI is the classification result for one page.
type PageUI struct {
	PageName string   `json:"pageName"`
	UI       UIGroups `json:"ui"`
}

// UIReport lists the UI-like elements found in a file. Best-effort: the
// heuristics can both over- and under-classify.
type UIReport struct {
	FileName string   `json:"fileName"`
	FileKey  string   `json:"fileKey"`
	Pages    []PageUI `json:"pages"`
}

// BuildUIReport classifies every node of every page with default
// thresholds. Icons and unclassified nodes are omitted.
func BuildUIReport(doc *domain.Document, fileKey string) (*UIReport, error) {
	return BuildUIReportWith(doc, fileKey, domain.DefaultThresholds())
}

// BuildUIReportWith classifies with caller-tuned thresholds.
func BuildUIReportWith(doc *domain.Document, fileKey string, thresholds domain.Thresholds) (*UIReport, error) {
	report := &UIReport{FileKey: fileKey, Pages: []PageUI{}}
	if doc == nil {
		return report, nil
	}
	report.FileName = doc.Name

	classifier := domain.NewClassifier(doc.Components)
	classifier.Thresholds = thresholds

	idx, err := domain.BuildParentIndex(doc.Document)
	if err != nil {
		return nil, err
	}

	for _, page := range doc.Pages() {
		pageUI := PageUI{
			PageName: page.DisplayName(),
			UI:       UIGroups{Buttons: []UIElement{}, Inputs: []UIElement{}, Cards: []UIElement{}},
		}

		walkErr := domain.Walk(page, func(n, _ *domain.Node) {
			if n == page {
				return
			}
			kind := classifier.Classify(n)
			if kind != domain.KindButton && kind != domain.KindInput && kind != domain.KindCard {
				return
			}

			elem := UIElement{
				Name: n.DisplayName(),
				Path: idx.NodePath(n, page),
			}
			var viewName string
			if view := idx.View(n); view != nil {
				viewName = view.DisplayName()
			}
			elem.Role = domain.InferRole(viewName, n.Name)
			if w, h, ok := domain.NodeSize(n); ok {
				elem.Width, elem.Height = &w, &h
			}

			switch kind {
			case domain.KindButton:
				pageUI.UI.Buttons = append(pageUI.UI.Buttons, elem)
			case domain.KindInput:
				pageUI.UI.Inputs = append(pageUI.UI.Inputs, elem)
			case domain.KindCard:
				pageUI.UI.Cards = append(pageUI.UI.Cards, elem)
			}
		})
		if walkErr != nil {
			return nil, walkErr
		}
		report.Pages = append(report.Pages, pageUI)
	}
	return report, nil
}

// PageStats is the per-view breakdown of one page.
type PageStats struct {
	PageName string             `json:"pageName"`
	Views    []domain.ViewStats `json:"views"`
}

// StatsReport is the per-page, per-view node statistics of a file.
type StatsReport struct {
	FileName string      `json:"fileName"`
	FileKey  string      `json:"fileKey"`
	Pages    []PageStats `json:"pages"`
}

// BuildStatsReport accumulates node counts per top-level container.
func BuildStatsReport(doc *domain.Document, fileKey string) (*StatsReport, error) {
	report := &StatsReport{FileKey: fileKey, Pages: []PageStats{}}
	if doc == nil {
		return report, nil
	}
	report.FileName = doc.Name

	for _, page := range doc.Pages() {
		ps := PageStats{PageName: page.DisplayName(), Views: []domain.ViewStats{}}
		for _, view := range page.Children {
			stats, err := domain.CollectViewStats(view)
			if err != nil {
				return nil, err
			}
			ps.Views = append(ps.Views, stats)
		}
		report.Pages = append(report.Pages, ps)
	}
	return report, nil
}

// PageUsage is the component usage of one page.
type PageUsage struct {
	PageName       string                  `json:"pageName"`
	ComponentsUsed []domain.ComponentUsage `json:"componentsUsed"`
}

// UsageReport counts component instances per page and file-wide.
type UsageReport struct {
	FileName      string                  `json:"fileName"`
	FileKey       string                  `json:"fileKey"`
	Pages         []PageUsage             `json:"pages"`
	AllComponents []domain.ComponentUsage `json:"allComponents"`
}

// BuildUsageReport resolves INSTANCE counts against the component
// dictionary, per page and across the whole file.
func BuildUsageReport(doc *domain.Document, fileKey string) (*UsageReport, error) {
	report := &UsageReport{FileKey: fileKey, Pages: []PageUsage{}}
	if doc == nil {
		return report, nil
	}
	report.FileName = doc.Name

	for _, page := range doc.Pages() {
		usage, err := domain.CountComponentUsage(page, doc.Components)
		if err != nil {
			return nil, err
		}
		if usage == nil {
			usage = []domain.ComponentUsage{}
		}
		report.Pages = append(report.Pages, PageUsage{
			PageName:       page.DisplayName(),
			ComponentsUsed: usage,
		})
	}

	all, err := domain.CountComponentUsage(doc.Document, doc.Components)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []domain.ComponentUsage{}
	}
	report.AllComponents = all
	return report, nil
}

// ComponentInfo is one dictionary component plus its instance count.
type ComponentInfo struct {
	ID             string `json:"id"`
	Key            string `json:"key,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ComponentSetID string `json:"componentSetId,omitempty"`
	InstanceCount  int    `json:"instanceCount"`
}

// ComponentSetInfo is one dictionary component set.
type ComponentSetInfo struct {
	ID          string `json:"id"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InventoryCounts summarizes the dictionary sizes.
type InventoryCounts struct {
	Components    int `json:"components"`
	ComponentSets int `json:"componentSets"`
	Styles        int `json:"styles"`
}

// InventoryReport is the reusable-asset inventory of a file.
type InventoryReport struct {
	FileName      string             `json:"fileName"`
	FileKey       string             `json:"fileKey"`
	Counts        InventoryCounts    `json:"counts"`
	Components    []ComponentInfo    `json:"components"`
	ComponentSets []ComponentSetInfo `json:"componentSets"`
	Styles        []StyleInfo        `json:"styles"`
}

// BuildInventoryReport lists components, component sets and styles with
// instance counts resolved from the document tree.
func BuildInventoryReport(doc *domain.Document, fileKey string) (*InventoryReport, error) {
	report := &InventoryReport{
		FileKey:       fileKey,
		Components:    []ComponentInfo{},
		ComponentSets: []ComponentSetInfo{},
		Styles:        []StyleInfo{},
	}
	if doc == nil {
		return report, nil
	}
	report.FileName = doc.Name
	report.Counts = InventoryCounts{
		Components:    len(doc.Components),
		ComponentSets: len(doc.ComponentSets),
		Styles:        len(doc.Styles),
	}

	instanceCounts := make(map[string]int)
	err := domain.Walk(doc.Document, func(n, _ *domain.Node) {
		if n.Type == domain.NodeInstance && n.ComponentID != "" {
			instanceCounts[n.ComponentID]++
		}
	})
	if err != nil {
		return nil, err
	}

	for id, comp := range doc.Components {
		report.Components = append(report.Components, ComponentInfo{
			ID:             id,
			Key:            comp.Key,
			Name:           comp.Name,
			Description:    comp.Description,
			ComponentSetID: comp.ComponentSetID,
			InstanceCount:  instanceCounts[id],
		})
	}
	sortByName(report.Components, func(c ComponentInfo) (string, string) { return c.Name, c.ID })

	for id, set := range doc.ComponentSets {
		report.ComponentSets = append(report.ComponentSets, ComponentSetInfo{
			ID:          id,
			Key:         set.Key,
			Name:        set.Name,
			Description: set.Description,
		})
	}
	sortByName(report.ComponentSets, func(s ComponentSetInfo) (string, string) { return s.Name, s.ID })

	for id, s := range doc.Styles {
		report.Styles = append(report.Styles, StyleInfo{
			ID:          id,
			Key:         s.Key,
			Name:        s.Name,
			StyleType:   s.StyleType,
			Description: s.Description,
		})
	}
	sortByName(report.Styles, func(s StyleInfo) (string, string) { return s.Name, s.ID })

	return report, nil
}

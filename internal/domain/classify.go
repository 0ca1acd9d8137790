package domain

import "strings"

// Kind is the semantic role assigned to a node by the classifier.
type Kind string

const (
	KindNone   Kind = ""
	KindIcon   Kind = "icon"
	KindButton Kind = "button"
	KindInput  Kind = "input"
	KindCard   Kind = "card"
)

// Icon naming conventions of the common icon libraries, matched as
// lower-case substrings.
var iconTokens = []string{
	"icon",
	"icn",
	"ic_",
	"ic/",
	"mdi:",
	"mdi-",
	"fa-",
	"feather",
	"lucide",
	"material-symbols",
	"glyph",
}

var (
	buttonTokens = []string{"button", "btn"}
	cardTokens   = []string{"card"}
	inputTokens  = []string{"input", "textfield", "text field"}

	// Broader UI vocabulary: names that mark a node as UI-like without
	// pinning it to a specific kind.
	uiTokens = []string{
		"list-item", "list item", "listitem",
		"checkbox", "radio", "toggle", "switch", "slider",
		"dropdown", "select", "picker",
		"chip", "badge", "tag",
		"tab", "menu", "nav", "toolbar", "appbar",
		"modal", "dialog", "sheet", "tooltip", "snackbar", "banner",
		"avatar", "divider", "stepper", "pagination",
	}
)

func containsAny(name string, tokens []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// IsIconName reports whether a name follows an icon-library convention.
func IsIconName(name string) bool {
	return containsAny(name, iconTokens)
}

// IsUIName reports whether a name contains any UI vocabulary at all,
// specific kinds included. Icon names are not UI names.
func IsUIName(name string) bool {
	if IsIconName(name) {
		return false
	}
	return containsAny(name, buttonTokens) ||
		containsAny(name, cardTokens) ||
		containsAny(name, inputTokens) ||
		containsAny(name, uiTokens)
}

// KindFromName classifies by name alone. Icon tokens take precedence over
// every UI token.
func KindFromName(name string) Kind {
	switch {
	case IsIconName(name):
		return KindIcon
	case containsAny(name, buttonTokens):
		return KindButton
	case containsAny(name, cardTokens):
		return KindCard
	case containsAny(name, inputTokens):
		return KindInput
	}
	return KindNone
}

// Thresholds are the structural-classifier constants. They are deliberately
// coarse; tune them here rather than in the control flow.
type Thresholds struct {
	ButtonMinHeight float64
	ButtonMaxHeight float64

	InputMinWidth        float64
	InputMinHeight       float64
	InputMaxHeight       float64
	InputMaxTextChildren int
	InputMaxIconChildren int

	CardMinWidth    float64
	CardMinHeight   float64
	CardMinChildren int
}

// DefaultThresholds returns the stock tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ButtonMinHeight: 28,
		ButtonMaxHeight: 64,

		InputMinWidth:        200,
		InputMinHeight:       34,
		InputMaxHeight:       72,
		InputMaxTextChildren: 1,
		InputMaxIconChildren: 2,

		CardMinWidth:    200,
		CardMinHeight:   120,
		CardMinChildren: 2,
	}
}

// Classifier assigns semantic kinds to nodes, resolving instances through
// the file's component dictionary.
type Classifier struct {
	Thresholds Thresholds
	Components map[string]Component
}

// NewClassifier returns a classifier with default thresholds.
func NewClassifier(components map[string]Component) *Classifier {
	return &Classifier{
		Thresholds: DefaultThresholds(),
		Components: components,
	}
}

// Classify maps a node to a kind. Name keywords are checked first and
// short-circuit; the structural fallback runs only when the name gives no
// verdict. Instances of known components classify by the component's
// registered name instead.
func (c *Classifier) Classify(n *Node) Kind {
	if n == nil {
		return KindNone
	}
	if n.Type == NodeInstance && n.ComponentID != "" {
		if comp, ok := c.Components[n.ComponentID]; ok {
			return c.classifyComponent(comp)
		}
	}
	if kind := KindFromName(n.Name); kind != KindNone {
		return kind
	}
	return c.structural(n)
}

// classifyComponent applies the keyword rules to a dictionary component's
// registered name. That name is authoritative over the instance's local
// override. Structural heuristics never apply here.
func (c *Classifier) classifyComponent(comp Component) Kind {
	if IsIconName(comp.Name) {
		return KindIcon
	}
	switch {
	case containsAny(comp.Name, buttonTokens):
		return KindButton
	case containsAny(comp.Name, cardTokens):
		return KindCard
	case containsAny(comp.Name, inputTokens):
		return KindInput
	}
	return KindNone
}

// structural is the shape-based fallback. Priority is an explicit policy:
// button, then input, then card; the first matching rule wins. Only
// container and rectangle kinds with resolvable geometry qualify.
func (c *Classifier) structural(n *Node) Kind {
	if !n.IsContainer() && n.Type != NodeRectangle {
		return KindNone
	}
	w, h, ok := NodeSize(n)
	if !ok {
		return KindNone
	}

	t := c.Thresholds
	fill := HasSolidFill(n)
	stroke := HasStroke(n)
	texts := TextChildCount(n)
	icons := IconChildCount(n, c.Components)

	switch {
	case fill && texts >= 1 &&
		h >= t.ButtonMinHeight && h <= t.ButtonMaxHeight:
		return KindButton

	case (stroke || fill) &&
		w >= t.InputMinWidth &&
		h >= t.InputMinHeight && h <= t.InputMaxHeight &&
		texts <= t.InputMaxTextChildren && icons <= t.InputMaxIconChildren:
		return KindInput

	case fill &&
		w >= t.CardMinWidth && h >= t.CardMinHeight &&
		len(n.Children) >= t.CardMinChildren:
		return KindCard
	}
	return KindNone
}

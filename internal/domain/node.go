package domain

// NodeType identifies the kind of a document node.
type NodeType string

const (
	NodeFrame     NodeType = "FRAME"
	NodeGroup     NodeType = "GROUP"
	NodeComponent NodeType = "COMPONENT"
	NodeInstance  NodeType = "INSTANCE"
	NodeRectangle NodeType = "RECTANGLE"
	NodeText      NodeType = "TEXT"
	NodeVector    NodeType = "VECTOR"
	NodeEllipse   NodeType = "ELLIPSE"
	NodeLine      NodeType = "LINE"
	NodePolygon   NodeType = "POLYGON"
	NodeStar      NodeType = "STAR"
	NodeCanvas    NodeType = "CANVAS"
	NodeDocument  NodeType = "DOCUMENT"
)

// Paint types of interest. Anything else (gradients etc.) is carried but
// ignored by the palette.
const (
	PaintSolid = "SOLID"
	PaintImage = "IMAGE"
)

// Color is a normalized RGBA color, each channel in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a single fill or stroke layer on a node.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"` // nil means visible
	Color   *Color   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"` // nil falls back to the node's opacity
}

// IsVisible reports whether the paint layer is rendered.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Vector is a 2D size or position.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is one element of the design-document tree. The source format is
// loosely typed, so everything except Type is optional.
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Type     NodeType `json:"type"`
	Children []*Node  `json:"children,omitempty"`

	// Geometry, in fallback order: bounding box, size vector, scalars.
	AbsoluteBoundingBox *Rect    `json:"absoluteBoundingBox,omitempty"`
	Size                *Vector  `json:"size,omitempty"`
	Width               *float64 `json:"width,omitempty"`
	Height              *float64 `json:"height,omitempty"`

	Fills                []Paint   `json:"fills,omitempty"`
	Strokes              []Paint   `json:"strokes,omitempty"`
	StrokeWeight         *float64  `json:"strokeWeight,omitempty"`
	CornerRadius         *float64  `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`
	Opacity              *float64  `json:"opacity,omitempty"`

	// TEXT nodes only.
	Characters string `json:"characters,omitempty"`

	// INSTANCE nodes only: back-reference into Document.Components.
	ComponentID string `json:"componentId,omitempty"`
}

// DisplayName returns the node name, falling back to its ID when unnamed.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// IsContainer reports whether the node kind can hold children.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case NodeFrame, NodeGroup, NodeComponent, NodeInstance:
		return true
	}
	return false
}

// Component is the file-scoped metadata of a reusable component.
type Component struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ComponentSetID string `json:"componentSetId,omitempty"`
}

// ComponentSet groups component variants.
type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Style is a shared named style (fill, text, effect, grid).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	StyleType   string `json:"styleType"`
	Description string `json:"description,omitempty"`
}

// StyleTypeFill is the StyleType of shared color styles.
const StyleTypeFill = "FILL"

// Document is a fetched design file: the root node plus the file-scoped
// component and style dictionaries.
type Document struct {
	Name          string                  `json:"name"`
	LastModified  string                  `json:"lastModified,omitempty"`
	Version       string                  `json:"version,omitempty"`
	Document      *Node                   `json:"document"`
	Components    map[string]Component    `json:"components,omitempty"`
	ComponentSets map[string]ComponentSet `json:"componentSets,omitempty"`
	Styles        map[string]Style        `json:"styles,omitempty"`
}

// Pages returns the top-level pages of the document. A missing root yields
// an empty slice, never an error.
func (d *Document) Pages() []*Node {
	if d == nil || d.Document == nil {
		return nil
	}
	return d.Document.Children
}

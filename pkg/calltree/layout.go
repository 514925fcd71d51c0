package calltree

import "math"

// Metrics describes how a node's elements are boxed.
type Metrics struct {
	BoxSize    float64 // side of one element box
	BoxGap     float64 // gap between neighbouring element boxes
	Padding    float64 // horizontal padding added around the element row
	NodeHeight float64 // fixed node height
}

// DefaultMetrics matches the stock canvas: 30px element boxes, 5px apart,
// 40px of padding and 80px tall nodes.
var DefaultMetrics = Metrics{BoxSize: 30, BoxGap: 5, Padding: 40, NodeHeight: 80}

// Params positions the root and spaces the levels below it.
type Params struct {
	CenterX  float64
	TopY     float64
	HSpacing float64
	VSpacing float64
	Metrics  Metrics
}

// Extents is the bounding range of a laid-out tree.
type Extents struct {
	MinX, MaxX float64
	MaxY       float64
}

// EmptyExtents returns the sentinel extents of a tree with no nodes:
// MinX is +Inf, MaxX is -Inf and MaxY is 0.
func EmptyExtents() Extents {
	return Extents{MinX: math.Inf(1), MaxX: math.Inf(-1), MaxY: 0}
}

// IsEmpty reports whether e still holds the sentinel values, i.e. no node
// contributed to it.
func (e Extents) IsEmpty() bool {
	return math.IsInf(e.MinX, 0) || math.IsInf(e.MaxX, 0) || e.MinX > e.MaxX
}

// Width returns MaxX-MinX, or 0 for empty extents.
func (e Extents) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxX - e.MinX
}

func (e *Extents) include(r Rect) {
	e.MinX = min(e.MinX, r.Left)
	e.MaxX = max(e.MaxX, r.Right)
	e.MaxY = max(e.MaxY, r.Bottom)
}

// RowWidth returns the width of a row of count element boxes. A row of zero
// elements has zero width.
func (m Metrics) RowWidth(count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*(m.BoxSize+m.BoxGap) - m.BoxGap
}

// NodeSize returns the width and height of a node holding count elements.
func (m Metrics) NodeSize(count int) (w, h float64) {
	return m.RowWidth(count) + m.Padding, m.NodeHeight
}

// Layout writes Bounds for every node reachable from root, sets Parent
// links, and returns the extents of the whole tree. A nil root yields
// EmptyExtents.
func Layout(root *Node, p Params) Extents {
	ext := EmptyExtents()
	layout(root, p.CenterX, p.TopY, p.HSpacing, p, &ext)
	return ext
}

func layout(n *Node, x, y, hSpacing float64, p Params, ext *Extents) {
	if n == nil {
		return
	}
	w, h := p.Metrics.NodeSize(len(n.Data))
	n.Bounds = Rect{Left: x - w/2, Right: x + w/2, Top: y, Bottom: y + h}
	ext.include(n.Bounds)

	if n.Left != nil {
		n.Left.Parent = n
		layout(n.Left, x-hSpacing, y+p.VSpacing, hSpacing/2, p, ext)
	}
	if n.Right != nil {
		n.Right.Parent = n
		layout(n.Right, x+hSpacing, y+p.VSpacing, hSpacing/2, p, ext)
	}
}

// ElementRects returns the boxes the renderer draws for n's elements,
// centered inside n.Bounds.
func ElementRects(n *Node, m Metrics) []Rect {
	if n == nil || len(n.Data) == 0 {
		return nil
	}
	startX := n.Bounds.Left + (n.Bounds.Width()-m.RowWidth(len(n.Data)))/2
	startY := n.Bounds.Top + (n.Bounds.Height()-m.BoxSize)/2

	out := make([]Rect, len(n.Data))
	for i := range n.Data {
		left := startX + float64(i)*(m.BoxSize+m.BoxGap)
		out[i] = Rect{Left: left, Right: left + m.BoxSize, Top: startY, Bottom: startY + m.BoxSize}
	}
	return out
}

// SubtreeBounds returns the union of the bounds of n and all its descendants.
func SubtreeBounds(n *Node) Rect {
	r := n.Bounds
	for _, c := range n.Children() {
		r = r.Union(SubtreeBounds(c))
	}
	return r
}

package calltree

// Rect is an axis-aligned box on the logical canvas. The canvas y axis grows
// downwards, so Top is numerically smaller than Bottom.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal span of the box.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the box.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center point of the box.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the box.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Contains reports whether o lies entirely inside r. Shared edges count as inside.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// OverlapsX reports whether the horizontal spans of r and o intersect.
// Boxes that merely touch do not overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Right:  max(r.Right, o.Right),
		Top:    min(r.Top, o.Top),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

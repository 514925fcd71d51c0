// Package viewport keeps the pan and scroll position of the tree canvas.
//
// A [State] holds the current offsets together with the extents of the most
// recent tree layout and keeps the offsets clamped to them. Horizontally the
// offset may overshoot the tree by [Limits.Overscroll] on either side.
// Vertically it ranges from 0 to the tree bottom plus [Limits.BottomMargin]
// minus the view height.
//
// When the tree is narrower than the view, the horizontal range is inverted;
// it is then re-ordered and the offset resolves to the value closest to 0,
// which keeps a centered tree at rest no matter how far it is dragged. Empty
// extents (no tree) force both offsets to 0.
package viewport

import (
	"math"

	"github.com/matzehuels/sortviz/pkg/calltree"
)

// Limits configures the clamping allowances and view size.
type Limits struct {
	ViewWidth    float64
	ViewHeight   float64
	Overscroll   float64 // horizontal slack beyond the tree extents
	BottomMargin float64 // extra room below the tree
	ScrollStep   float64 // canvas units per scroll-wheel notch
}

// DefaultLimits is a 1200x800 view with 50 units of horizontal overscroll,
// 100 units below the tree and 20 units per wheel notch.
var DefaultLimits = Limits{
	ViewWidth:    1200,
	ViewHeight:   800,
	Overscroll:   50,
	BottomMargin: 100,
	ScrollStep:   20,
}

// State is the viewport into the logical canvas.
type State struct {
	OffsetX, OffsetY float64

	extents calltree.Extents
	limits  Limits

	dragging bool
	lastX    float64
	lastY    float64
}

// New returns a viewport at the origin with empty extents.
func New(limits Limits) *State {
	return &State{limits: limits, extents: calltree.EmptyExtents()}
}

// Limits returns the configured limits.
func (s *State) Limits() Limits { return s.limits }

// SetLimits replaces the limits, typically after the view was resized, and
// re-clamps the offsets against them.
func (s *State) SetLimits(l Limits) {
	s.limits = l
	s.Clamp()
}

// Resize changes only the view size and re-clamps.
func (s *State) Resize(width, height float64) {
	l := s.limits
	l.ViewWidth, l.ViewHeight = width, height
	s.SetLimits(l)
}

// Extents returns the extents the viewport currently clamps against.
func (s *State) Extents() calltree.Extents { return s.extents }

// Reset moves the viewport back to the origin, forgets the tree extents and
// ends any drag in progress.
func (s *State) Reset() {
	s.OffsetX, s.OffsetY = 0, 0
	s.extents = calltree.EmptyExtents()
	s.dragging = false
}

// SetExtents records freshly computed tree extents and re-clamps, since an
// offset that was valid for the previous layout may now be out of range.
func (s *State) SetExtents(e calltree.Extents) {
	s.extents = e
	s.Clamp()
}

// PanBy moves the offsets by the given canvas deltas and clamps.
func (s *State) PanBy(dx, dy float64) {
	s.OffsetX += dx
	s.OffsetY += dy
	s.Clamp()
}

// ScrollBy applies a scroll-wheel delta in notches. Positive deltas scroll
// up, towards the root.
func (s *State) ScrollBy(delta float64) {
	s.OffsetY -= delta * s.limits.ScrollStep
	s.Clamp()
}

// BeginDrag starts a pan gesture at the given pointer position.
func (s *State) BeginDrag(x, y float64) {
	s.dragging = true
	s.lastX, s.lastY = x, y
}

// DragTo continues a pan gesture. The canvas follows the pointer, so the
// offset moves opposite to the pointer delta. Only the horizontal axis is
// dragged; vertical movement is left to the scroll wheel.
func (s *State) DragTo(x, y float64) {
	if !s.dragging {
		return
	}
	dx := x - s.lastX
	s.lastX, s.lastY = x, y
	s.PanBy(-dx, 0)
}

// EndDrag finishes a pan gesture.
func (s *State) EndDrag() { s.dragging = false }

// Dragging reports whether a pan gesture is in progress.
func (s *State) Dragging() bool { return s.dragging }

// Clamp forces both offsets into range for the current extents.
// Clamping an already clamped viewport is a no-op.
func (s *State) Clamp() {
	if s.extents.IsEmpty() || math.IsNaN(s.OffsetX) || math.IsNaN(s.OffsetY) {
		s.OffsetX, s.OffsetY = 0, 0
		return
	}
	lo, hi := s.HorizontalRange()
	if s.narrow() {
		s.OffsetX = clamp(0, lo, hi)
	} else {
		s.OffsetX = clamp(s.OffsetX, lo, hi)
	}
	s.OffsetY = clamp(s.OffsetY, 0, s.maxOffsetY())
}

// HorizontalRange returns the ordered bounds for OffsetX.
func (s *State) HorizontalRange() (lo, hi float64) {
	a := s.extents.MinX - s.limits.Overscroll
	b := s.extents.MaxX - s.limits.ViewWidth + s.limits.Overscroll
	return min(a, b), max(a, b)
}

// narrow reports whether the tree plus overscroll fits inside the view,
// which is exactly when the unordered horizontal range is inverted.
func (s *State) narrow() bool {
	return s.extents.MaxX-s.limits.ViewWidth+s.limits.Overscroll < s.extents.MinX-s.limits.Overscroll
}

func (s *State) maxOffsetY() float64 {
	return max(0, s.extents.MaxY-s.limits.ViewHeight+s.limits.BottomMargin)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

package viewport

import (
	"math"
	"testing"

	"github.com/matzehuels/sortviz/pkg/calltree"
)

func wideTree() calltree.Extents {
	return calltree.Extents{MinX: -400, MaxX: 2000, MaxY: 1500}
}

func TestNewStartsAtOrigin(t *testing.T) {
	s := New(DefaultLimits)
	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("New() offsets = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}
	if !s.Extents().IsEmpty() {
		t.Error("New() should start with empty extents")
	}
}

func TestHorizontalClamp(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want float64
	}{
		{name: "within range", dx: 300, want: 300},
		{name: "past right edge", dx: 5000, want: 2000 - 1200 + 50},
		{name: "past left edge", dx: -5000, want: -450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultLimits)
			s.SetExtents(wideTree())
			s.PanBy(tt.dx, 0)
			if s.OffsetX != tt.want {
				t.Errorf("OffsetX = %v, want %v", s.OffsetX, tt.want)
			}
		})
	}
}

func TestNarrowTreeResolvesToZero(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(calltree.Extents{MinX: 100, MaxX: 900, MaxY: 180})

	for _, dx := range []float64{-10000, -250, -1, 0, 1, 49, 10000} {
		s.PanBy(dx, 0)
		if s.OffsetX != 0 {
			t.Errorf("after PanBy(%v, 0) OffsetX = %v, want 0", dx, s.OffsetX)
		}
	}

	s.BeginDrag(500, 10)
	s.DragTo(-3000, 10)
	if s.OffsetX != 0 {
		t.Errorf("after drag OffsetX = %v, want 0", s.OffsetX)
	}
}

func TestNarrowTreeOffCanvas(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(calltree.Extents{MinX: 2000, MaxX: 2100, MaxY: 180})
	lo, hi := s.HorizontalRange()
	if s.OffsetX < lo || s.OffsetX > hi {
		t.Errorf("OffsetX = %v outside [%v, %v]", s.OffsetX, lo, hi)
	}
}

func TestVerticalClamp(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(wideTree())

	s.ScrollBy(-1000)
	if want := 1500 - 800 + 100.0; s.OffsetY != want {
		t.Errorf("OffsetY after scrolling down = %v, want %v", s.OffsetY, want)
	}

	s.ScrollBy(1000)
	if s.OffsetY != 0 {
		t.Errorf("OffsetY after scrolling up = %v, want 0", s.OffsetY)
	}

	s.ScrollBy(-1)
	if s.OffsetY != 20 {
		t.Errorf("one notch down = %v, want 20", s.OffsetY)
	}
}

func TestShortTreeCannotScroll(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(calltree.Extents{MinX: 0, MaxX: 1500, MaxY: 300})
	s.ScrollBy(-50)
	if s.OffsetY != 0 {
		t.Errorf("OffsetY = %v, want 0", s.OffsetY)
	}
}

func TestClampIsIdempotent(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(wideTree())
	s.PanBy(123, 456)
	x, y := s.OffsetX, s.OffsetY

	s.Clamp()
	if s.OffsetX != x || s.OffsetY != y {
		t.Errorf("Clamp() moved (%v, %v) to (%v, %v)", x, y, s.OffsetX, s.OffsetY)
	}
	s.PanBy(0, 0)
	if s.OffsetX != x || s.OffsetY != y {
		t.Errorf("PanBy(0, 0) moved (%v, %v) to (%v, %v)", x, y, s.OffsetX, s.OffsetY)
	}
}

func TestEmptyExtentsForceOrigin(t *testing.T) {
	s := New(DefaultLimits)
	s.OffsetX, s.OffsetY = 300, 200
	s.SetExtents(calltree.EmptyExtents())

	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("offsets = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}
	if math.IsInf(s.OffsetX, 0) || math.IsNaN(s.OffsetX) {
		t.Error("offset must stay finite")
	}
}

func TestReclampAfterExtentsShrink(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(wideTree())
	s.PanBy(800, 700)

	s.SetExtents(calltree.Extents{MinX: 0, MaxX: 1400, MaxY: 900})
	if s.OffsetX != 250 {
		t.Errorf("OffsetX = %v, want 250", s.OffsetX)
	}
	if s.OffsetY != 200 {
		t.Errorf("OffsetY = %v, want 200", s.OffsetY)
	}
}

func TestDrag(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(wideTree())

	s.DragTo(100, 0)
	if s.OffsetX != 0 {
		t.Error("DragTo without BeginDrag should not pan")
	}

	s.BeginDrag(500, 300)
	s.DragTo(400, 300)
	s.DragTo(350, 900)
	if s.OffsetX != 150 {
		t.Errorf("OffsetX after drag = %v, want 150", s.OffsetX)
	}
	if s.OffsetY != 0 {
		t.Errorf("drag should not change OffsetY, got %v", s.OffsetY)
	}

	s.EndDrag()
	if s.Dragging() {
		t.Error("EndDrag() should stop dragging")
	}
	s.DragTo(0, 0)
	if s.OffsetX != 150 {
		t.Error("DragTo after EndDrag should not pan")
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultLimits)
	s.SetExtents(wideTree())
	s.PanBy(100, 100)
	s.BeginDrag(0, 0)

	s.Reset()
	if s.OffsetX != 0 || s.OffsetY != 0 || s.Dragging() || !s.Extents().IsEmpty() {
		t.Errorf("Reset() left state %+v", s)
	}
}

func TestResize(t *testing.T) {
	s := New(DefaultLimits)
	// Narrow for a 1200-unit view, wide for a 700-unit one.
	s.SetExtents(calltree.Extents{MinX: 100, MaxX: 1100, MaxY: 660})
	s.PanBy(500, 500)
	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Fatalf("offsets before resize = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}

	s.Resize(700, 480)
	if l := s.Limits(); l.ViewWidth != 700 || l.ViewHeight != 480 || l.Overscroll != 50 {
		t.Errorf("Limits() = %+v, want 700x480 with overscroll kept", l)
	}
	s.PanBy(5000, 5000)
	if want := 1100 - 700 + 50.0; s.OffsetX != want {
		t.Errorf("OffsetX = %v, want %v", s.OffsetX, want)
	}
	if want := 660 - 480 + 100.0; s.OffsetY != want {
		t.Errorf("OffsetY = %v, want %v", s.OffsetY, want)
	}

	// Growing the view again pulls the offsets back into range.
	s.Resize(1200, 800)
	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("offsets after growing = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}
}

// Package term rasterises animation scenes into styled terminal text.
//
// Bars scenes become vertical bars, one per value, coloured by highlight
// role. Tree scenes are projected from canvas units onto the character
// grid: each element box of a node maps to a fixed number of columns, so
// the layout computed by [calltree.Layout] carries over unchanged, viewport
// offsets included.
package term

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/sequence"
)

const (
	// cellsPerElement is the column width of one element box.
	cellsPerElement = 4
	// DefaultRowUnits is the canvas height of one terminal row.
	DefaultRowUnits = 24
)

var rolePaint = map[anim.Role]paint{
	anim.RoleCompare:  paintCompare,
	anim.RoleSwap:     paintSwap,
	anim.RolePlaced:   paintPlaced,
	anim.RoleNew:      paintNew,
	anim.RoleBoundary: paintBoundary,
	anim.RolePivot:    paintPivot,
}

// Renderer draws scenes into a Width x Height character area.
type Renderer struct {
	Width, Height int
	Metrics       calltree.Metrics
	// RowUnits is the canvas height of one row.
	RowUnits float64
}

// New returns a renderer for a width x height area using metrics m.
func New(width, height int, m calltree.Metrics) *Renderer {
	return &Renderer{Width: width, Height: height, Metrics: m, RowUnits: DefaultRowUnits}
}

// colUnits is the canvas width of one column.
func (r *Renderer) colUnits() float64 {
	return (r.Metrics.BoxSize + r.Metrics.BoxGap) / cellsPerElement
}

// Columns converts a horizontal canvas distance to columns.
func (r *Renderer) Columns(units float64) int {
	return int(math.Round(units / r.colUnits()))
}

// Units converts a column distance back to canvas units.
func (r *Renderer) Units(cols int) float64 {
	return float64(cols) * r.colUnits()
}

// Scene renders s with the tree canvas scrolled by (offX, offY).
func (r *Renderer) Scene(s anim.Scene, offX, offY float64) string {
	c := newCanvas(r.Width, r.Height)
	if s.Mode == anim.ModeTree && s.Tree != nil {
		r.tree(c, s, offX, offY)
	} else {
		r.bars(c, s.Values, s.Highlights)
	}
	return c.String()
}

func (r *Renderer) bars(c *canvas, values sequence.Sequence, h anim.Highlights) {
	n := len(values)
	if n == 0 || c.h < 2 {
		return
	}
	slot := max(1, min(cellsPerElement, c.w/n))
	width := max(1, slot-1)
	chart := c.h - 1

	lo, hi := 0, 0
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	left := max(0, (c.w-slot*n)/2)
	for i, v := range values {
		height := chart / 2
		if hi > lo {
			height = 1 + int(math.Round(float64(v-lo)/float64(hi-lo)*float64(chart-1)))
		}
		p := paintValue
		if rp, ok := rolePaint[h[i]]; ok {
			p = rp
		}
		col := left + i*slot
		for row := chart - height; row < chart; row++ {
			for k := range width {
				c.set(row, col+k, '█', p)
			}
		}
		if slot >= 3 {
			c.put(chart, col, fmt.Sprintf("%*d", width, v), p)
		}
	}
}

func (r *Renderer) tree(c *canvas, s anim.Scene, offX, offY float64) {
	col := func(x float64) int { return int(math.Floor((x - offX) / r.colUnits())) }
	row := func(y float64) int { return int(math.Floor((y - offY) / r.RowUnits)) }

	// Edges first so boxes draw over them.
	s.Tree.Walk(func(n *calltree.Node) bool {
		for _, ch := range n.Children() {
			pb := n.Bounds
			cb := ch.Bounds
			c.line(row(pb.Bottom), col(pb.CenterX()), row(cb.Top)-1, col(cb.CenterX()), '·', paintDim)
		}
		return true
	})

	s.Tree.Walk(func(n *calltree.Node) bool {
		top, bottom := row(n.Bounds.Top), row(n.Bounds.Top)+2
		left, right := col(n.Bounds.Left), col(n.Bounds.Right)
		if right-left < 2 {
			right = left + 2
		}
		active := s.Active != nil && s.Active.ID == n.ID
		frame := paintDim
		switch {
		case active:
			frame = paintActive
		case n.Sorted:
			frame = paintSorted
		}

		c.set(top, left, '╭', frame)
		c.set(top, right, '╮', frame)
		c.set(bottom, left, '╰', frame)
		c.set(bottom, right, '╯', frame)
		for x := left + 1; x < right; x++ {
			c.set(top, x, '─', frame)
			c.set(bottom, x, '─', frame)
		}
		c.set(top+1, left, '│', frame)
		c.set(top+1, right, '│', frame)
		if n.Label != "" && right-left > 3 {
			label := n.Label
			if len(label) > right-left-3 {
				label = label[:right-left-3]
			}
			c.put(top, left+2, label, paintLabel)
		}

		hl := s.HighlightsFor(n)
		base := paintValue
		if n.Sorted {
			base = paintSorted
		}
		for i, box := range calltree.ElementRects(n, r.Metrics) {
			p := base
			if rp, ok := rolePaint[hl[i]]; ok {
				p = rp
			}
			text := strconv.Itoa(n.Data[i])
			x := col(box.Left) + (cellsPerElement-1-len(text))/2
			c.put(top+1, x, text, p)
		}
		return true
	})
}

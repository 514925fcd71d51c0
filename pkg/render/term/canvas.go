package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// paint selects the style of a cell.
type paint int

const (
	paintNone paint = iota
	paintDim
	paintLabel
	paintValue
	paintSorted
	paintActive
	paintCompare
	paintSwap
	paintPlaced
	paintNew
	paintBoundary
	paintPivot
)

var (
	colorCyan    = lipgloss.Color("36")
	colorGreen   = lipgloss.Color("35")
	colorYellow  = lipgloss.Color("220")
	colorRed     = lipgloss.Color("167")
	colorBlue    = lipgloss.Color("75")
	colorMagenta = lipgloss.Color("170")
	colorWhite   = lipgloss.Color("255")
	colorGray    = lipgloss.Color("245")
	colorDim     = lipgloss.Color("240")
)

var styles = map[paint]lipgloss.Style{
	paintDim:      lipgloss.NewStyle().Foreground(colorDim),
	paintLabel:    lipgloss.NewStyle().Foreground(colorGray),
	paintValue:    lipgloss.NewStyle().Foreground(colorWhite),
	paintSorted:   lipgloss.NewStyle().Foreground(colorGreen),
	paintActive:   lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	paintCompare:  lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	paintSwap:     lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	paintPlaced:   lipgloss.NewStyle().Foreground(colorGreen),
	paintNew:      lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
	paintBoundary: lipgloss.NewStyle().Foreground(colorBlue),
	paintPivot:    lipgloss.NewStyle().Bold(true).Foreground(colorMagenta),
}

type cell struct {
	r rune
	p paint
}

// canvas is a fixed-size grid of styled runes. Writes outside the grid are
// clipped.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for i := range c.cells {
		row := make([]cell, c.w)
		for j := range row {
			row[j] = cell{r: ' '}
		}
		c.cells[i] = row
	}
	return c
}

func (c *canvas) set(row, col int, r rune, p paint) {
	if row < 0 || row >= c.h || col < 0 || col >= c.w {
		return
	}
	c.cells[row][col] = cell{r: r, p: p}
}

// put writes s starting at (row, col).
func (c *canvas) put(row, col int, s string, p paint) {
	for _, r := range s {
		c.set(row, col, r, p)
		col++
	}
}

// line draws a Bresenham line from (r0, c0) to (r1, c1).
func (c *canvas) line(r0, c0, r1, c1 int, ch rune, p paint) {
	dr, dc := abs(r1-r0), -abs(c1-c0)
	sr, sc := sign(r1-r0), sign(c1-c0)
	e := dr + dc
	for {
		c.set(r0, c0, ch, p)
		if r0 == r1 && c0 == c1 {
			return
		}
		e2 := 2 * e
		if e2 >= dc {
			e += dc
			r0 += sr
		}
		if e2 <= dr {
			e += dr
			c0 += sc
		}
	}
}

// String renders the grid, styling each run of equally painted cells once.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		cur := paintNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[cur]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			p := cl.p
			if cl.r == ' ' {
				p = paintNone
			}
			if p != cur {
				flush()
				cur = p
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

package display

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Cell is a single screen cell.
type Cell struct {
	Char rune
	Attr uint8 // Bold, Inverse, Underline, ...
}

// Cell attribute flags.
const (
	AttrBold uint8 = 1 << iota
	AttrInverse
	AttrUnderline
	AttrDim
)

// Screen is the in-memory image of the text window. It tracks which rows
// changed since the last flush so a repaint touches only dirty rows.
type Screen struct {
	cols, rows int
	cells      [][]Cell

	dirty    []bool
	anydirty bool
}

// NewScreen creates an empty screen image.
func NewScreen(cols, rows int) *Screen {
	s := &Screen{cols: cols, rows: rows}
	s.cells = make([][]Cell, rows)
	s.dirty = make([]bool, rows)
	for i := 0; i < rows; i++ {
		s.cells[i] = make([]Cell, cols)
		for j := 0; j < cols; j++ {
			s.cells[i][j] = Cell{Char: ' '}
		}
	}
	return s
}

// Resize adjusts the image, keeping the overlapping content and marking
// everything dirty.
func (s *Screen) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows {
		return
	}
	cells := make([][]Cell, rows)
	dirty := make([]bool, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]Cell, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = Cell{Char: ' '}
		}
		dirty[i] = true
	}
	minRows := rows
	if s.rows < minRows {
		minRows = s.rows
	}
	minCols := cols
	if s.cols < minCols {
		minCols = s.cols
	}
	for i := 0; i < minRows; i++ {
		copy(cells[i][:minCols], s.cells[i][:minCols])
	}
	s.cells = cells
	s.dirty = dirty
	s.cols = cols
	s.rows = rows
	s.anydirty = true
}

// SetRow renders text into row y, padding with blanks. Wide runes occupy
// two cells. The row is marked dirty only if it actually changed.
func (s *Screen) SetRow(y int, text string, attr uint8) {
	if y < 0 || y >= s.rows {
		return
	}
	x := 0
	changed := false
	put := func(c Cell) {
		if x < s.cols {
			if s.cells[y][x] != c {
				s.cells[y][x] = c
				changed = true
			}
			x++
		}
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		put(Cell{Char: r, Attr: attr})
		for i := 1; i < w; i++ {
			put(Cell{Char: 0, Attr: attr})
		}
	}
	for x < s.cols {
		put(Cell{Char: ' '})
	}
	if changed {
		s.markRow(y)
	}
}

func (s *Screen) markRow(y int) {
	if y >= 0 && y < s.rows {
		s.dirty[y] = true
		s.anydirty = true
	}
}

// Invalidate marks every row dirty.
func (s *Screen) Invalidate() {
	for i := range s.dirty {
		s.dirty[i] = true
	}
	s.anydirty = true
}

// Flush writes the dirty rows to w as cursor-addressed ANSI output and
// clears the dirty flags. Returns the number of rows painted.
func (s *Screen) Flush(w io.Writer) int {
	if !s.anydirty {
		return 0
	}
	painted := 0
	for y := 0; y < s.rows; y++ {
		if !s.dirty[y] {
			continue
		}
		fmt.Fprintf(w, "\x1b[%d;1H\x1b[K", y+1)
		attr := uint8(0)
		for x := 0; x < s.cols; x++ {
			c := s.cells[y][x]
			if c.Char == 0 {
				continue // continuation of a wide rune
			}
			if c.Attr != attr {
				writeAttr(w, c.Attr)
				attr = c.Attr
			}
			fmt.Fprintf(w, "%c", c.Char)
		}
		if attr != 0 {
			fmt.Fprint(w, "\x1b[0m")
		}
		s.dirty[y] = false
		painted++
	}
	s.anydirty = false
	return painted
}

func writeAttr(w io.Writer, attr uint8) {
	fmt.Fprint(w, "\x1b[0m")
	if attr&AttrBold != 0 {
		fmt.Fprint(w, "\x1b[1m")
	}
	if attr&AttrDim != 0 {
		fmt.Fprint(w, "\x1b[2m")
	}
	if attr&AttrUnderline != 0 {
		fmt.Fprint(w, "\x1b[4m")
	}
	if attr&AttrInverse != 0 {
		fmt.Fprint(w, "\x1b[7m")
	}
}

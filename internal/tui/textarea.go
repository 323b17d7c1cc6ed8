package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// TabWidth is the number of cells a tab occupies.
const TabWidth = 4

// Placeholder is shown while the buffer is empty.
const Placeholder = "Start typing here..."

// cluster is one user-perceived character of the buffer.
type cluster struct {
	start, end int // rune offsets, end exclusive
	runes      []rune
	width      int
	newline    bool
}

func clustersOf(text string) []cluster {
	var out []cluster
	offset := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		c := cluster{start: offset, end: offset + len(runes), runes: runes, width: gr.Width()}
		switch {
		case runes[0] == '\n' || runes[0] == '\r':
			c.newline = true
			c.width = 0
		case runes[0] == '\t':
			c.width = TabWidth
		case c.width < 1:
			c.width = 1
		}
		out = append(out, c)
		offset = c.end
	}
	return out
}

type cell struct {
	x int
	c cluster
}

// visualLine is one screen row of wrapped text.
type visualLine struct {
	start, end int // rune offsets covered by the row
	cells      []cell
	wrapped    bool // row ends because of wrapping, not a line break
}

// layout wraps text into rows of at most width cells.
func layout(text string, width int) []visualLine {
	if width < 1 {
		width = 1
	}
	lines := []visualLine{{}}
	x := 0
	for _, c := range clustersOf(text) {
		cur := &lines[len(lines)-1]
		if c.newline {
			cur.end = c.start
			lines = append(lines, visualLine{start: c.end})
			x = 0
			continue
		}
		if x > 0 && x+c.width > width {
			cur.end = c.start
			cur.wrapped = true
			lines = append(lines, visualLine{start: c.start})
			cur = &lines[len(lines)-1]
			x = 0
		}
		cur.cells = append(cur.cells, cell{x: x, c: c})
		x += c.width
	}
	last := &lines[len(lines)-1]
	if n := len(last.cells); n > 0 {
		last.end = last.cells[n-1].c.end
	} else {
		last.end = last.start
	}
	return lines
}

// position returns the row and column of rune offset off.
func position(lines []visualLine, off int) (row, col int) {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].start > off {
			continue
		}
		l := lines[i]
		col = 0
		for _, ce := range l.cells {
			if ce.c.start >= off {
				return i, ce.x
			}
			col = ce.x + ce.c.width
		}
		return i, col
	}
	return 0, 0
}

// offsetAt returns the rune offset closest to column col of row.
func offsetAt(lines []visualLine, row, col int) int {
	l := lines[row]
	for _, ce := range l.cells {
		if ce.x+ce.c.width > col {
			return ce.c.start
		}
	}
	if l.wrapped && len(l.cells) > 0 {
		return l.cells[len(l.cells)-1].c.start
	}
	return l.end
}

// TextArea is the cursor and scroll state of the editing surface. Edits
// take the current buffer and return the new one; recording it is up to
// the caller.
type TextArea struct {
	Cursor int // rune offset into the buffer
	Scroll int // first visible row
}

// Clamp keeps the cursor inside text, e.g. after undo shortened the buffer.
// A cursor that ends up inside a character moves back to its start.
func (ta *TextArea) Clamp(text string) {
	n := len([]rune(text))
	if ta.Cursor > n {
		ta.Cursor = n
	}
	if ta.Cursor < 0 {
		ta.Cursor = 0
	}
	for _, c := range clustersOf(text) {
		if c.start >= ta.Cursor {
			return
		}
		if ta.Cursor < c.end {
			ta.Cursor = c.start
			return
		}
	}
}

// Insert inserts s at the cursor and moves past it.
func (ta *TextArea) Insert(text, s string) string {
	ta.Clamp(text)
	runes := []rune(text)
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:ta.Cursor]...)
	out = append(out, ins...)
	out = append(out, runes[ta.Cursor:]...)
	ta.Cursor += len(ins)
	return string(out)
}

// Backspace removes the character before the cursor.
func (ta *TextArea) Backspace(text string) string {
	ta.Clamp(text)
	for _, c := range clustersOf(text) {
		if c.end == ta.Cursor {
			runes := []rune(text)
			ta.Cursor = c.start
			return string(runes[:c.start]) + string(runes[c.end:])
		}
	}
	return text
}

// DeleteForward removes the character under the cursor.
func (ta *TextArea) DeleteForward(text string) string {
	ta.Clamp(text)
	for _, c := range clustersOf(text) {
		if c.start == ta.Cursor {
			runes := []rune(text)
			return string(runes[:c.start]) + string(runes[c.end:])
		}
	}
	return text
}

// MoveLeft moves one character back.
func (ta *TextArea) MoveLeft(text string) {
	ta.Clamp(text)
	for _, c := range clustersOf(text) {
		if c.end == ta.Cursor {
			ta.Cursor = c.start
			return
		}
	}
}

// MoveRight moves one character forward.
func (ta *TextArea) MoveRight(text string) {
	ta.Clamp(text)
	for _, c := range clustersOf(text) {
		if c.start == ta.Cursor {
			ta.Cursor = c.end
			return
		}
	}
}

// MoveVertical moves the cursor delta rows, keeping its column where possible.
func (ta *TextArea) MoveVertical(text string, width, delta int) {
	ta.Clamp(text)
	lines := layout(text, width)
	row, col := position(lines, ta.Cursor)
	target := row + delta
	if target < 0 || target >= len(lines) {
		return
	}
	ta.Cursor = offsetAt(lines, target, col)
}

// MoveHome moves to the start of the cursor's row.
func (ta *TextArea) MoveHome(text string, width int) {
	ta.Clamp(text)
	lines := layout(text, width)
	row, _ := position(lines, ta.Cursor)
	ta.Cursor = lines[row].start
}

// MoveEnd moves to the end of the cursor's row.
func (ta *TextArea) MoveEnd(text string, width int) {
	ta.Clamp(text)
	lines := layout(text, width)
	row, _ := position(lines, ta.Cursor)
	ta.Cursor = offsetAt(lines, row, 1<<30)
}

// Draw renders text into the rectangle at (x0, y0) and places the cursor.
func (ta *TextArea) Draw(screen tcell.Screen, text string, x0, y0, width, height int, style tcell.Style) {
	if width <= 0 || height <= 0 {
		return
	}
	ta.Clamp(text)

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if text == "" {
		drawString(screen, x0, y0, width, Placeholder, style.Dim(true))
		ta.Scroll = 0
		screen.ShowCursor(x0, y0)
		return
	}

	lines := layout(text, width)
	row, col := position(lines, ta.Cursor)
	if row < ta.Scroll {
		ta.Scroll = row
	}
	if row >= ta.Scroll+height {
		ta.Scroll = row - height + 1
	}

	for i := 0; i < height && ta.Scroll+i < len(lines); i++ {
		for _, ce := range lines[ta.Scroll+i].cells {
			if ce.c.runes[0] == '\t' {
				continue // already blank
			}
			var comb []rune
			if len(ce.c.runes) > 1 {
				comb = ce.c.runes[1:]
			}
			screen.SetContent(x0+ce.x, y0+i, ce.c.runes[0], comb, style)
		}
	}

	if col >= width {
		col = width - 1
	}
	screen.ShowCursor(x0+col, y0+row-ta.Scroll)
}

// drawString draws s on one row, clipped to width, and returns the columns used.
func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if used+w > width {
			break
		}
		runes := gr.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		screen.SetContent(x+used, y, runes[0], comb, style)
		used += w
	}
	return used
}

package memacs

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal columns s occupies, honoring
// double-width East Asian characters and zero-width combining marks via
// go-runewidth, the same library the teacher uses for cursor/grapheme
// column math in its own screen handling. Tabs expand to the next
// tabSize-column stop.
func DisplayWidth(s string, tabSize int) int {
	cols := 0
	for _, r := range s {
		if r == '\t' {
			cols += tabSize - cols%tabSize
			continue
		}
		cols += runewidth.RuneWidth(r)
	}
	return cols
}

// DisplayColumn returns the on-screen column of byte offset off within
// line's text, the quantity a window's redraw path needs to place the
// cursor when the line contains tabs or wide characters.
func DisplayColumn(line *Line, off int, tabSize int) int {
	text := line.Text()
	if off > len(text) {
		off = len(text)
	}
	return DisplayWidth(text[:off], tabSize)
}

// TruncateToWidth returns the longest prefix of s whose DisplayWidth does
// not exceed width, used when a line is wider than the window and must be
// clipped for redraw rather than wrapped.
func TruncateToWidth(s string, width, tabSize int) string {
	var b strings.Builder
	cols := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if r == '\t' {
			w = tabSize - cols%tabSize
		}
		if cols+w > width {
			break
		}
		b.WriteRune(r)
		cols += w
	}
	return b.String()
}

package memacs

// RedrawFlag accumulates the reasons a Window needs to be redrawn, per the
// window/screen composition design.
type RedrawFlag uint8

const (
	RedrawEdit RedrawFlag = 1 << iota
	RedrawHard
	RedrawMove
	RedrawMode
	RedrawReframe
)

// Window is a rectangular region on a Screen displaying one Buffer. It owns
// its own Face, a reframe hint, and accumulated dirty flags.
type Window struct {
	Buffer *Buffer
	screen *Screen

	Face        Face
	ReframeHint int
	Dirty       RedrawFlag

	Rows, Cols int
	Top        int // row offset within the screen

	// narrowMark and narrowFirstCol save this window's pre-narrow face
	// (see Buffer.Narrow in narrow.go) so Buffer.Widen can restore it
	// exactly; nil/0 when the displayed buffer is not narrowed.
	narrowMark     *Mark
	narrowFirstCol int
}

// SetBuffer switches w to display b, performing the face synchronization
// the design calls for: the old buffer's background face is loaded from
// w's current face, and w's face is loaded from b's background face (or, if
// b is already displayed in another window, a copy of that window's face).
func (w *Window) SetBuffer(b *Buffer) {
	if w.Buffer == b {
		return
	}
	if w.Buffer != nil {
		w.Buffer.bg = w.Face
		w.Buffer.removeWindow(w)
	}
	w.Buffer = b
	w.Face = b.bg
	if w.Face.Point.Line == nil {
		w.Face.Point = Point{Line: b.first, Offset: 0}
		w.Face.TopLine = b.first
	}
	b.addWindow(w)
	w.Dirty |= RedrawHard | RedrawMode
}

// MarkDirty escalates w's redraw flags, applying the rule that edits to a
// buffer displayed in more than one window always escalate to Hard (a
// partial repaint cannot assume the other window's face lines up).
func (w *Window) MarkDirty(flag RedrawFlag) {
	if w.Buffer != nil && w.Buffer.WindowCount() > 1 {
		flag |= RedrawHard
	}
	w.Dirty |= flag
}

// ClearDirty resets w's accumulated redraw flags after a repaint.
func (w *Window) ClearDirty() { w.Dirty = 0 }

// CursorColumn returns the on-screen column of w's point, accounting for
// tabs and wide characters, and whether that column falls within the
// window's Cols (reframing must shift Face.FirstCol when it does not).
func (w *Window) CursorColumn(tabSize int) (col int, visible bool) {
	col = DisplayColumn(w.Face.Point.Line, w.Face.Point.Offset, tabSize)
	return col, col >= w.Face.FirstCol && col < w.Face.FirstCol+w.Cols
}

// RenderLine returns line's text clipped to w's width starting at its
// horizontal scroll offset, the text a redraw writes to the terminal for
// one screen row. Control bytes are visualized (see VisualizeControls) so a
// buffer holding raw control characters redraws as legible escapes instead
// of corrupting the terminal.
func (w *Window) RenderLine(line *Line, tabSize int) string {
	text := VisualizeControls(expandTabs(line.Text(), tabSize))
	if w.Face.FirstCol > 0 {
		skip := 0
		col := 0
		for i, r := range text {
			if col >= w.Face.FirstCol {
				skip = i
				break
			}
			col += runeDisplayWidth(r, col, tabSize)
		}
		text = text[skip:]
	}
	return TruncateToWidth(text, w.Cols, tabSize)
}

func runeDisplayWidth(r rune, col, tabSize int) int {
	if r == '\t' {
		return tabSize - col%tabSize
	}
	return DisplayWidth(string(r), tabSize)
}

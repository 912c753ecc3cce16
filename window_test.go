package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestWindow(text string, cols int) (*Window, *Buffer) {
	b := NewBuffer("scratch")
	b.first = newLine([]byte(text))
	b.last = b.first
	w := &Window{Buffer: b, Rows: 10, Cols: cols}
	w.Face = Face{TopLine: b.first, Point: Point{Line: b.first, Offset: 0}}
	return w, b
}

func TestWindowCursorColumnPlainText(t *testing.T) {
	w, _ := newTestWindow("hello world", 80)
	w.Face.Point.Offset = 6 // just past "hello "

	col, visible := w.CursorColumn(8)
	assert.Equal(t, 6, col)
	assert.True(t, visible)
}

func TestWindowCursorColumnExpandsTabs(t *testing.T) {
	w, _ := newTestWindow("a\tb", 80)
	w.Face.Point.Offset = 2 // just past the tab, at "b"

	col, _ := w.CursorColumn(8)
	assert.Equal(t, 8, col, "a tab advances to the next multiple of the tab size")
}

func TestWindowCursorColumnNotVisibleBeyondFirstCol(t *testing.T) {
	w, _ := newTestWindow("0123456789", 5)
	w.Face.FirstCol = 8
	w.Face.Point.Offset = 2

	_, visible := w.CursorColumn(8)
	assert.False(t, visible, "a point left of FirstCol is scrolled out of view")
}

func TestWindowRenderLineTruncatesToWidth(t *testing.T) {
	w, _ := newTestWindow("0123456789", 5)
	assert.Equal(t, "01234", w.RenderLine(w.Buffer.first, 8))
}

func TestWindowRenderLineHonorsFirstCol(t *testing.T) {
	w, _ := newTestWindow("0123456789", 4)
	w.Face.FirstCol = 3
	assert.Equal(t, "3456", w.RenderLine(w.Buffer.first, 8))
}

func TestWindowRenderLineExpandsTabsBeforeClipping(t *testing.T) {
	w, _ := newTestWindow("\tx", 6)
	assert.Equal(t, "      ", w.RenderLine(w.Buffer.first, 8))
}

func TestWindowSetBufferSyncsFace(t *testing.T) {
	w, b1 := newTestWindow("first buffer", 80)
	b2 := NewBuffer("other")
	b2.first = newLine([]byte("second buffer"))
	b2.last = b2.first

	w.SetBuffer(b2)
	assert.Equal(t, b2, w.Buffer)
	assert.Equal(t, b2.first, w.Face.Point.Line)
	assert.NotZero(t, w.Dirty&RedrawHard)

	w.SetBuffer(b1)
	assert.Equal(t, b1, w.Buffer)
}

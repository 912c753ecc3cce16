package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInsertBytesAdjustsPointsAndMarks(t *testing.T) {
	b := NewBuffer("t")
	b.first.buf = []byte("helloworld")
	b.last = b.first
	m := b.SetMark('a', Point{Line: b.first, Offset: 5})
	w := &Window{Buffer: b, Face: Face{Point: Point{Line: b.first, Offset: 5}}}
	b.addWindow(w)

	after := b.InsertBytes(Point{Line: b.first, Offset: 5}, []byte(", "))

	assert.Equal(t, "hello, world", b.first.Text())
	assert.Equal(t, 7, after.Offset)
	assert.Equal(t, 7, w.Face.Point.Offset, "a point exactly at the insert slides forward")
	assert.Equal(t, 5, m.Point.Offset, "a mark exactly at the insert does not slide")
	assert.NotZero(t, b.Flags&BFChanged)
	assert.NotZero(t, w.Dirty&RedrawEdit)
}

func TestBufferInsertNewlineSplitsLineAndRetargets(t *testing.T) {
	b := NewBuffer("t")
	b.first.buf = []byte("helloworld")
	b.last = b.first
	mBefore := b.SetMark('a', Point{Line: b.first, Offset: 2})
	mAfter := b.SetMark('b', Point{Line: b.first, Offset: 8})

	at := b.InsertNewline(Point{Line: b.first, Offset: 5})

	require.NoError(t, b.CheckLinks())
	assert.Equal(t, "hello", b.first.Text())
	assert.Equal(t, "world", b.first.Next().Text())
	assert.Equal(t, b.first.Next(), b.last)
	assert.Equal(t, Point{Line: b.last, Offset: 0}, at)

	assert.Equal(t, b.first, mBefore.Point.Line, "a mark left of the split stays on the prefix line")
	assert.Equal(t, 2, mBefore.Point.Offset)
	assert.Equal(t, b.last, mAfter.Point.Line, "a mark right of the split moves to the suffix line")
	assert.Equal(t, 3, mAfter.Point.Offset, "offset shifts left by the split point")
}

func TestBufferDeleteForwardWithinLine(t *testing.T) {
	b := NewBuffer("t")
	b.first.buf = []byte("hello, world")
	b.last = b.first

	deleted := b.DeleteForward(Point{Line: b.first, Offset: 5}, 2)
	assert.Equal(t, ", ", string(deleted))
	assert.Equal(t, "helloworld", b.first.Text())
}

func TestBufferJoinNextLineMergesAndRetargetsMarks(t *testing.T) {
	b := NewBuffer("t")
	b.first.buf = []byte("hello")
	second := newLine([]byte("world"))
	second.prev = b.first
	second.next = nil
	b.first.next = second
	b.first.prev = second
	b.last = second

	m := b.SetMark('a', Point{Line: second, Offset: 3})

	b.JoinNextLine(b.first)

	require.NoError(t, b.CheckLinks())
	assert.Equal(t, "helloworld", b.first.Text())
	assert.Equal(t, b.first, b.last)
	assert.Equal(t, b.first, m.Point.Line)
	assert.Equal(t, 8, m.Point.Offset, "offset shifts right by the prefix line's original length")
}

func TestEditorKillOrDeleteForwardAppendsToKillRing(t *testing.T) {
	ed := NewEditor()
	b := ed.CurBuffer
	b.first.buf = []byte("hello world")
	b.last = b.first

	text, _ := ed.killOrDelete(b, Point{Line: b.first, Offset: 0}, 5, DispKill, 1)
	assert.Equal(t, "hello", string(text))
	assert.Equal(t, " world", b.first.Text())
	assert.Equal(t, "hello", ed.Rings[RingKill].Current())

	more, _ := ed.killOrDelete(b, Point{Line: b.first, Offset: 0}, 1, DispKill, 1)
	assert.Equal(t, " ", string(more))
	assert.Equal(t, "hello ", ed.Rings[RingKill].Current(), "successive kills in the same direction accumulate by appending")
}

func TestEditorKillOrDeleteCopyLeavesTextInPlace(t *testing.T) {
	ed := NewEditor()
	b := ed.CurBuffer
	b.first.buf = []byte("hello world")
	b.last = b.first

	text, _ := ed.killOrDelete(b, Point{Line: b.first, Offset: 0}, 5, DispCopy, 1)
	assert.Equal(t, "hello", string(text))
	assert.Equal(t, "hello world", b.first.Text(), "a copy disposition must not remove the range")
}

func TestInsertTextSplitsOnEmbeddedNewlines(t *testing.T) {
	b := NewBuffer("t")

	end := insertText(b, Point{Line: b.first, Offset: 0}, "one\ntwo\nthree")

	require.NoError(t, b.CheckLinks())
	var lines []string
	for l := b.first; l != nil; l = l.next {
		lines = append(lines, l.Text())
	}
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, b.last, end.Line)
	assert.Equal(t, 5, end.Offset)
}

func TestDetabAndEntabRoundTripIndentation(t *testing.T) {
	l := newLine([]byte("\tfoo"))
	Detab(l, 1, 4)
	assert.Equal(t, "    foo", l.Text())

	l2 := newLine([]byte("        foo"))
	Entab(l2, 1, 4)
	assert.Equal(t, "\t\tfoo", l2.Text())
}

func TestConvertWordCaseModes(t *testing.T) {
	wc := newWordChars()

	b := NewBuffer("t")
	b.first.buf = []byte("hello world")
	b.last = b.first
	ConvertWordCase(wc, b, Point{Line: b.first, Offset: 0}, 2, CaseTitle)
	assert.Equal(t, "Hello World", b.first.Text())

	b2 := NewBuffer("t")
	b2.first.buf = []byte("Hello")
	b2.last = b2.first
	ConvertWordCase(wc, b2, Point{Line: b2.first, Offset: 0}, 1, CaseUpper)
	assert.Equal(t, "HELLO", b2.first.Text())
}

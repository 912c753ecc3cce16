package memacs

import "fmt"

// BufferFlag is a bitmask of the buffer attributes named in the data model.
type BufferFlag uint16

const (
	BFActive BufferFlag = 1 << iota
	BFChanged
	BFHidden
	BFReadOnly
	BFNarrowed
	BFTermAttr
	BFCommand
	BFFunction
)

// CallInfo holds the argument-syntax and execution-depth bookkeeping for a
// buffer that stores a user command or user function body.
type CallInfo struct {
	MinArgs, MaxArgs int
	Depth            int
	ArgSyntax        string
	Description      string
	Loops            []LoopBlock // preprocessed by exec.go; invalidated on edit
	preprocessed     bool
}

// Buffer owns a line list headed by its first line, per the data model: for
// a buffer with first line F and last line L, F.prev = L, L.next = nil, and
// every other line's prev/next point at its true neighbors. This keeps
// bufBegin/bufEnd boundary checks O(1) exactly as original_source/src
// relies on (Design Notes §9).
type Buffer struct {
	Name     string
	Filename string
	Flags    BufferFlag
	Modes    []string // ordered set of enabled mode names

	first, last *Line

	// narrowTop/narrowBottom park the excised head/tail fragments while the
	// buffer is narrowed; nil when not narrowed.
	narrowTop, narrowBottom *Line
	narrowTopTail           *Line // last line of the parked head fragment, for relinking on widen
	narrowBottomHead        *Line // first line of the parked tail fragment

	marks []*Mark
	bg    Face // background face, used when the buffer is not displayed

	windows []*Window // windows currently displaying this buffer

	InputDelim  string // delimiter detected on read: "\n", "\r", or "\r\n"

	Call *CallInfo // non-nil for BFCommand/BFFunction buffers

	aliasCount int
	executing  bool
}

// NewBuffer creates a one-line empty buffer named name: F = L, F.prev = F,
// F.next = nil, F.used = 0, as specified for the base case of the link
// invariant.
func NewBuffer(name string) *Buffer {
	l := newLine(nil)
	l.prev = l
	l.next = nil
	b := &Buffer{Name: name, first: l, last: l, Flags: BFActive}
	b.marks = append(b.marks, &Mark{ID: RootMarkID, Point: Point{Line: l, Offset: 0}})
	return b
}

func (b *Buffer) First() *Line { return b.first }
func (b *Buffer) Last() *Line  { return b.last }

// RootMark returns the buffer's region mark, created with every buffer.
func (b *Buffer) RootMark() *Mark { return b.marks[0] }

// CheckLinks validates the link invariants from the data model and
// Testable Property 1; it is used by tests, not by production code paths.
func (b *Buffer) CheckLinks() error {
	if b.first.prev != b.last {
		return fmt.Errorf("first.prev != last")
	}
	if b.last.next != nil {
		return fmt.Errorf("last.next != nil")
	}
	for l := b.first; l != b.last; l = l.next {
		if l.next == nil {
			return fmt.Errorf("nil next before reaching last")
		}
		if l.next.prev != l {
			return fmt.Errorf("l.next.prev != l")
		}
	}
	return nil
}

// Mark looks up a mark by id, returning nil if none exists.
func (b *Buffer) Mark(id byte) *Mark {
	for _, m := range b.marks {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// SetMark creates or replaces the mark with the given id at pt.
func (b *Buffer) SetMark(id byte, pt Point) *Mark {
	if m := b.Mark(id); m != nil {
		m.Point = pt
		return m
	}
	m := &Mark{ID: id, Point: pt}
	b.marks = append(b.marks, m)
	return m
}

// DeleteMark removes the mark with the given id, if any. The root mark
// (RootMarkID) cannot be deleted.
func (b *Buffer) DeleteMark(id byte) bool {
	if id == RootMarkID {
		return false
	}
	for i, m := range b.marks {
		if m.ID == id {
			b.marks = append(b.marks[:i], b.marks[i+1:]...)
			return true
		}
	}
	return false
}

// Marks returns the buffer's current marks, root mark first.
func (b *Buffer) Marks() []*Mark { return b.marks }

// eachPointAndMark calls fn for every face.Point that currently targets b
// across its displaying windows and its background face, and for every
// mark in b. This is the fan-out point every edit primitive uses to keep
// points and marks consistent, mirroring the spec's "adjust, across every
// window's face and every mark in the buffer" instruction.
func (b *Buffer) eachPointAndMark(fn func(pt *Point, isMark bool, m *Mark)) {
	fn(&b.bg.Point, false, nil)
	for _, w := range b.windows {
		fn(&w.Face.Point, false, nil)
	}
	for _, m := range b.marks {
		fn(&m.Point, true, m)
	}
}

// addWindow/removeWindow maintain the windCount invariant from the window
// composition design: every buffer's window count equals the number of
// distinct windows displaying it.
func (b *Buffer) addWindow(w *Window) {
	b.windows = append(b.windows, w)
}

func (b *Buffer) removeWindow(w *Window) {
	for i, x := range b.windows {
		if x == w {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			return
		}
	}
}

// WindowCount returns the number of windows currently displaying b.
func (b *Buffer) WindowCount() int { return len(b.windows) }

// Deletable reports whether b may be deleted: not displayed, not aliased,
// not currently executing, and not bound to a hook (the hook check is the
// caller's responsibility since hooks are editor-scoped, not buffer-scoped;
// see Editor.DeleteBuffer).
func (b *Buffer) Deletable() bool {
	return len(b.windows) == 0 && b.aliasCount == 0 && !b.executing
}

// clear replaces the buffer's contents with a single empty line, per the
// lifecycle rule that the first line is replaced rather than freed during
// clear when its capacity is already small.
func (b *Buffer) clear() {
	var l *Line
	if b.first != nil && cap(b.first.buf) <= lineBlock {
		l = b.first
		l.buf = l.buf[:0]
	} else {
		l = newLine(nil)
	}
	l.prev = l
	l.next = nil
	b.first, b.last = l, l
	b.narrowTop, b.narrowBottom = nil, nil
	b.narrowTopTail, b.narrowBottomHead = nil, nil
	b.Flags &^= BFNarrowed
	for _, m := range b.marks {
		m.Point = Point{Line: l, Offset: 0}
		m.parked = false
	}
	for _, w := range b.windows {
		w.narrowMark = nil
	}
	b.eachPointAndMark(func(pt *Point, isMark bool, m *Mark) {
		*pt = Point{Line: l, Offset: 0}
	})
	b.Flags |= BFChanged
}

// Region is a contiguous span within a buffer: a starting point plus a
// signed byte size and line count, per the data model's region derivation.
type Region struct {
	Start Point
	Size  int // signed byte length; negative means the region runs backward from Start
	Lines int // signed line count, same sign convention as Size
}

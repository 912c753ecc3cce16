package memacs

// This file implements the narrowing half of the Line/Buffer store design
// (spec §3/§4.B): temporarily truncating a buffer's line list to a
// contiguous middle segment, parking the excised head and tail fragments on
// the buffer rather than freeing them, so a later Widen restores the
// buffer byte-for-byte, invariants, marks, and all.

// narrowMarkBase is the first id in the window-preservation range (ids
// above '~', per mark.go's Mark.IsUser doc) used for the Mark value each
// displaying window's pre-narrow face is saved into.
const narrowMarkBase = '~' + 1

// Narrow truncates b to the n lines starting at start.Line (the
// narrow-to-line-count form). n must be positive; a count reaching past
// the buffer's last line simply narrows to the remaining lines.
func (b *Buffer) Narrow(start Point, n int) error {
	if n <= 0 {
		return NewOutcome(StatusScriptError, "narrow: line count must be positive")
	}
	if b.Flags&BFNarrowed != 0 {
		return NewOutcome(StatusFailure, "buffer %q is already narrowed", b.Name)
	}
	first := start.Line
	last := first
	for i := 1; i < n && last.next != nil; i++ {
		last = last.next
	}
	return b.narrowLines(first, last)
}

// NarrowToMark narrows b to the lines spanning pt and the mark named id,
// inclusive, whichever of the two comes first in the buffer (the
// narrow-to-mark form).
func (b *Buffer) NarrowToMark(pt Point, id byte) error {
	if b.Flags&BFNarrowed != 0 {
		return NewOutcome(StatusFailure, "buffer %q is already narrowed", b.Name)
	}
	m := b.Mark(id)
	if m == nil {
		return NewOutcome(StatusFailure, "no such mark %q", string(rune(id)))
	}
	first, last := pt.Line, m.Point.Line
	if b.lineOrder(first, last) > 0 {
		first, last = last, first
	}
	return b.narrowLines(first, last)
}

// narrowLines is the common primitive behind Narrow and NarrowToMark: park
// the fragments outside [first, last], set BFNarrowed, reset every
// displaying window's face to the narrowed first line, and hide user marks
// that fall outside the kept segment.
func (b *Buffer) narrowLines(first, last *Line) error {
	oldFirst, oldLast := b.first, b.last

	for _, w := range b.windows {
		w.narrowMark = &Mark{
			ID:         narrowMarkBase,
			Point:      w.Face.Point,
			ReframeRow: w.ReframeHint,
		}
		w.narrowFirstCol = w.Face.FirstCol
	}

	if first != oldFirst {
		b.narrowTop = oldFirst
		b.narrowTopTail = first.prev
	}
	if last != oldLast {
		b.narrowBottom = oldLast
		b.narrowBottomHead = last.next
	}

	b.first, b.last = first, last
	b.first.prev = b.last // re-establish the circular invariant over the kept segment
	b.last.next = nil
	b.Flags |= BFNarrowed

	for _, w := range b.windows {
		w.Face.TopLine = b.first
		w.Face.Point = Point{Line: b.first, Offset: 0}
		w.Face.FirstCol = 0
		w.MarkDirty(RedrawHard)
	}
	if !b.lineVisible(b.bg.Point.Line) {
		b.bg.Point = Point{Line: b.first, Offset: 0}
	}

	for _, m := range b.marks {
		if m.IsUser() && !b.lineVisible(m.Point.Line) {
			b.parkMark(m)
		}
	}
	return nil
}

// Widen reverses Narrow/NarrowToMark: relink the parked fragments, restore
// every hidden mark's offset, and restore each displaying window's face
// from the Mark Narrow saved it into.
func (b *Buffer) Widen() error {
	if b.Flags&BFNarrowed == 0 {
		return NewOutcome(StatusFailure, "buffer %q is not narrowed", b.Name)
	}

	for _, m := range b.marks {
		if m.IsUser() {
			b.unparkMark(m)
		}
	}

	if b.narrowTop != nil {
		b.narrowTopTail.next = b.first
		b.first.prev = b.narrowTopTail
		b.first = b.narrowTop
	}
	if b.narrowBottom != nil {
		b.last.next = b.narrowBottomHead
		b.narrowBottomHead.prev = b.last
		b.last = b.narrowBottom
	}
	b.first.prev = b.last
	b.last.next = nil
	b.narrowTop, b.narrowBottom, b.narrowTopTail, b.narrowBottomHead = nil, nil, nil, nil
	b.Flags &^= BFNarrowed

	for _, w := range b.windows {
		if w.narrowMark != nil {
			w.Face.Point = w.narrowMark.Point
			w.Face.TopLine = w.narrowMark.Point.Line
			w.Face.FirstCol = w.narrowFirstCol
			w.ReframeHint = w.narrowMark.ReframeRow
			w.narrowMark = nil
		}
		w.MarkDirty(RedrawHard)
	}
	return nil
}

// parkMark hides m by encoding its offset as -(offset+1), the invariant
// documented on Mark.origOffset: the negative encoding keeps an offset of
// 0 distinguishable from "not parked" without a second bit of state ever
// needing to be consulted by code that only looks at Point.Offset's sign.
func (b *Buffer) parkMark(m *Mark) {
	if m.parked {
		return
	}
	m.parked = true
	m.origOffset = m.Point.Offset
	m.Point.Offset = -(m.Point.Offset + 1)
}

// unparkMark reverses parkMark, restoring the original offset.
func (b *Buffer) unparkMark(m *Mark) {
	if !m.parked {
		return
	}
	m.parked = false
	m.Point.Offset = m.origOffset
	m.origOffset = 0
}

// lineVisible reports whether line lies within b's current (possibly
// narrowed) first..last segment.
func (b *Buffer) lineVisible(line *Line) bool {
	for l := b.first; l != nil; l = l.next {
		if l == line {
			return true
		}
		if l == b.last {
			break
		}
	}
	return false
}

// lineOrder reports whether a comes before (-1), at (0), or after (1) z in
// b's line list, walking forward from b.first.
func (b *Buffer) lineOrder(a, z *Line) int {
	if a == z {
		return 0
	}
	for l := b.first; l != nil; l = l.next {
		if l == a {
			return -1
		}
		if l == z {
			return 1
		}
	}
	return 0
}

package memacs

// This file implements the character/line insert and delete primitives from
// the edit primitives design (spec §4.B/§4.C). A Go *Line pointer's identity
// is stable across an in-place grow (unlike the C source's realloc, which
// can return a different address and forces an explicit swap-in step), so
// the single-line insert/delete primitives below need no line-swap: only
// newline insertion and cross-line deletion, which really do move content
// between two distinct Line values, retarget points and marks the way
// original_source/src/edit.c's lnewline/ldelete do.

// InsertBytes inserts data once at pt, the general form of the insert
// primitive (the "n copies of byte c" case in the spec is the common case
// of a funnel that calls this n times with a one-byte slice; see
// editops.go). It returns the point immediately after the inserted text.
// data must not contain a newline; use InsertNewline to split a line.
func (b *Buffer) InsertBytes(pt Point, data []byte) Point {
	n := len(data)
	line := pt.Line
	line.insertAt(pt.Offset, data, 1)

	b.eachPointAndMark(func(p *Point, isMark bool, m *Mark) {
		if isMark {
			adjustMarkForInsert(m, line, pt.Offset, n)
		} else {
			adjustPointForInsert(p, line, pt.Offset, n)
		}
	})

	b.Flags |= BFChanged
	for _, w := range b.windows {
		w.MarkDirty(RedrawEdit)
	}
	return Point{Line: line, Offset: pt.Offset + n}
}

// InsertNewline splits the line at pt into two lines: a new line holding
// the pre-point prefix, linked before the line that now holds the
// post-point suffix left-shifted into place. Every point and mark with
// offset < pt.Offset on the split line migrates to the new (prefix) line;
// positions with offset >= pt.Offset stay on the old line with their
// offset decremented by pt.Offset.
func (b *Buffer) InsertNewline(pt Point) Point {
	old := pt.Line
	prefix := append([]byte(nil), old.buf[:pt.Offset]...)
	suffix := old.buf[pt.Offset:]

	newLn := newLine(prefix)
	newLn.prev = old.prev
	newLn.next = old

	if old == b.first {
		b.first = newLn
		newLn.prev = b.last // keep first.prev == last invariant
	} else {
		old.prev.next = newLn
	}
	old.prev = newLn

	old.buf = append(old.buf[:0], suffix...)

	b.eachPointAndMark(func(p *Point, isMark bool, m *Mark) {
		if isMark {
			if m.Point.Line == old {
				if m.Point.Offset < pt.Offset {
					m.Point.Line = newLn
				} else {
					m.Point.Offset -= pt.Offset
				}
			}
		} else {
			if p.Line == old {
				if p.Offset < pt.Offset {
					p.Line = newLn
				} else {
					p.Offset -= pt.Offset
				}
			}
		}
	})

	b.Flags |= BFChanged
	for _, w := range b.windows {
		if w.Face.TopLine == old {
			w.Face.TopLine = newLn
		}
		w.MarkDirty(RedrawHard)
	}
	return Point{Line: old, Offset: 0}
}

// DeleteForward removes k bytes within a single line starting at pt,
// left-shifting the remainder. The caller guarantees k <= line.Used() -
// pt.Offset; cross-line deletion is handled by JoinNextLine. Returns the
// deleted bytes.
func (b *Buffer) DeleteForward(pt Point, k int) []byte {
	line := pt.Line
	deleted := append([]byte(nil), line.buf[pt.Offset:pt.Offset+k]...)
	line.deleteAt(pt.Offset, k)

	b.eachPointAndMark(func(p *Point, isMark bool, m *Mark) {
		if isMark {
			adjustMarkForDelete(m, line, pt.Offset, k)
		} else {
			adjustPointForDelete(p, line, pt.Offset, k)
		}
	})

	b.Flags |= BFChanged
	for _, w := range b.windows {
		w.MarkDirty(RedrawEdit)
	}
	return deleted
}

// JoinNextLine removes the newline that conceptually follows line,
// concatenating the next line's content onto it and unlinking the next
// line. Every point and mark on the removed line migrates to line, with
// its offset increased by line's original length.
func (b *Buffer) JoinNextLine(line *Line) {
	next := line.next
	if next == nil {
		return // last line has no implicit trailing delimiter to remove
	}
	shift := line.Used()
	line.buf = append(line.buf, next.buf...)

	line.next = next.next
	if next.next != nil {
		next.next.prev = line
	} else {
		b.last = line
		line.next = nil
	}
	if next == b.first {
		b.first = line
	}
	b.first.prev = b.last // restore the circular first.prev == last invariant

	b.eachPointAndMark(func(p *Point, isMark bool, m *Mark) {
		if isMark {
			if m.Point.Line == next {
				m.Point.Line = line
				m.Point.Offset += shift
			}
		} else {
			if p.Line == next {
				p.Line = line
				p.Offset += shift
			}
		}
	})

	b.Flags |= BFChanged
	for _, w := range b.windows {
		if w.Face.TopLine == next {
			w.Face.TopLine = line
		}
		w.MarkDirty(RedrawHard)
	}
}

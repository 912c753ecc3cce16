package memacs

// Point is the current insertion position in a buffer face: a line pointer
// plus a byte offset within that line (0 <= Offset <= line.Used()).
type Point struct {
	Line   *Line
	Offset int
}

// RootMarkID is the id of every buffer's root (region) mark.
const RootMarkID = '.'

// Mark is a named saved point within a buffer, plus the reframe-row hint
// used when a window's face is restored from a preservation mark (e.g.
// across narrow/widen or split/join). Marks with id <= '~' are user marks;
// ids above '~' are reserved for window-preservation marks created
// internally, per original_source/src/buffer.c.
type Mark struct {
	ID         byte
	Point      Point
	ReframeRow int

	// parked and origOffset hold a mark's pre-narrowing state while
	// narrow.go hides it outside the visible segment: origOffset is the
	// real offset, and Point.Offset is set to -(origOffset+1) so a parked
	// mark is recognizable (and its encoded offset reversible) even where
	// only Point is visible, without needing parked consulted too. Both
	// reset to false/0 on widen.
	parked     bool
	origOffset int
}

// IsUser reports whether m is a user-visible mark (creatable and listable
// by name) as opposed to an internal window-preservation mark.
func (m *Mark) IsUser() bool { return m.ID <= '~' }

// Face is the visible-position state of a buffer on a window: top line,
// point, and first displayed column.
type Face struct {
	TopLine *Line
	Point   Point
	FirstCol int
}

// adjustPointForInsert and adjustMarkForInsert implement Testable
// Property 3's insert half: for an
// insert of n bytes at (line, p), a point on that line slides forward when
// its offset is >= p (it "slides"); a mark on that line only slides when
// its offset is strictly > p (marks do not slide forward when text is
// inserted exactly at them).
func adjustPointForInsert(pt *Point, line *Line, p, n int) {
	if pt.Line == line && pt.Offset >= p {
		pt.Offset += n
	}
}

func adjustMarkForInsert(m *Mark, line *Line, p, n int) {
	if m.Point.Line == line && m.Point.Offset > p {
		m.Point.Offset += n
	}
}

// adjustOffsetForDelete implements Testable Property 3's delete half for a
// deletion of k bytes from (line, p) to (line, p+k):
//
//	q <= p        -> q' = q
//	p < q <= p+k  -> q' = p
//	q > p+k       -> q' = q - k
func adjustOffsetForDelete(offset, p, k int) int {
	switch {
	case offset <= p:
		return offset
	case offset <= p+k:
		return p
	default:
		return offset - k
	}
}

func adjustPointForDelete(pt *Point, line *Line, p, k int) {
	if pt.Line == line {
		pt.Offset = adjustOffsetForDelete(pt.Offset, p, k)
	}
}

func adjustMarkForDelete(m *Mark, line *Line, p, k int) {
	if m.Point.Line == line {
		m.Point.Offset = adjustOffsetForDelete(m.Point.Offset, p, k)
	}
}

// retargetPoint and retargetMark move a point/mark sitting on oldLine to
// newLine, preserving its offset. No function in the package calls them.
func retargetPoint(pt *Point, oldLine, newLine *Line) {
	if pt.Line == oldLine {
		pt.Line = newLine
	}
}

func retargetMark(m *Mark, oldLine, newLine *Line) {
	if m.Point.Line == oldLine {
		m.Point.Line = newLine
	}
}

package memacs

import "fmt"

// Screen is a collection of windows tiled top-to-bottom, plus the
// per-screen working directory and tab/wrap settings named in the data
// model. Screens are ordered in the Editor and one is current.
type Screen struct {
	Num     int
	Windows []*Window
	Dir     string

	HardTabSize int
	SoftTabSize int
	WrapCol     int

	Rows, Cols int
}

// NewScreen creates a screen with a single window displaying b, filling the
// whole screen, matching the invariant that the last window on a screen
// cannot be deleted without deleting the screen itself.
func NewScreen(num int, b *Buffer, rows, cols int) *Screen {
	s := &Screen{Num: num, Rows: rows, Cols: cols, HardTabSize: 8, SoftTabSize: 8, WrapCol: 0}
	w := &Window{screen: s, Rows: rows, Cols: cols}
	w.SetBuffer(b)
	s.Windows = []*Window{w}
	return s
}

// CurrentWindow returns the screen's sole notion of "current" for callers
// that track it externally (Editor.curWindow is authoritative); this is a
// convenience for the common single-window case used throughout tests.
func (s *Screen) CurrentWindow() *Window {
	if len(s.Windows) == 0 {
		return nil
	}
	return s.Windows[0]
}

// Split divides w vertically (top/bottom) into two windows both displaying
// w's buffer, returning the newly created window. topRows is the row count
// given to the existing window; the remainder goes to the new one.
func (s *Screen) Split(w *Window, topRows int) (*Window, error) {
	if topRows < 1 || topRows >= w.Rows {
		return nil, NewOutcome(StatusFailure, "window too small to split")
	}
	idx := s.indexOf(w)
	if idx < 0 {
		return nil, NewOutcome(StatusFailure, "window not on this screen")
	}
	nw := &Window{screen: s, Buffer: w.Buffer, Face: w.Face, Cols: w.Cols}
	nw.Rows = w.Rows - topRows
	nw.Top = w.Top + topRows
	w.Rows = topRows
	w.Buffer.addWindow(nw)
	windows := make([]*Window, 0, len(s.Windows)+1)
	windows = append(windows, s.Windows[:idx+1]...)
	windows = append(windows, nw)
	windows = append(windows, s.Windows[idx+1:]...)
	s.Windows = windows
	w.MarkDirty(RedrawHard)
	nw.MarkDirty(RedrawHard)
	return nw, nil
}

// Join removes w, giving its rows to the window immediately above it (or
// below, if w is the topmost window). Join on the last window of a screen
// is an error; delete the screen instead.
func (s *Screen) Join(w *Window) error {
	if len(s.Windows) == 1 {
		return NewOutcome(StatusFailure, "cannot join the only window on a screen")
	}
	idx := s.indexOf(w)
	if idx < 0 {
		return NewOutcome(StatusFailure, "window not on this screen")
	}
	var neighbor *Window
	if idx > 0 {
		neighbor = s.Windows[idx-1]
	} else {
		neighbor = s.Windows[idx+1]
	}
	neighbor.Rows += w.Rows
	w.Buffer.removeWindow(w)
	s.Windows = append(s.Windows[:idx], s.Windows[idx+1:]...)
	neighbor.MarkDirty(RedrawHard)
	return nil
}

// Only collapses s to a single window, w, occupying the full screen.
func (s *Screen) Only(w *Window) {
	for _, ow := range s.Windows {
		if ow != w {
			ow.Buffer.removeWindow(ow)
		}
	}
	w.Rows = s.Rows
	w.Top = 0
	s.Windows = []*Window{w}
	w.MarkDirty(RedrawHard)
}

func (s *Screen) indexOf(w *Window) int {
	for i, x := range s.Windows {
		if x == w {
			return i
		}
	}
	return -1
}

func (s *Screen) String() string {
	return fmt.Sprintf("Screen#%d(%dx%d, %d windows)", s.Num, s.Cols, s.Rows, len(s.Windows))
}

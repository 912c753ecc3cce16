package memacs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TermAttr is a display attribute a Terminal can render around a span of text.
type TermAttr int

const (
	AttrNone TermAttr = iota
	AttrBoldText
	AttrDimText
	AttrReverseText
	AttrUnderlineText
)

// Color names the fixed 16-ish color palette faces reference by name,
// generalizing output.go's fg*/bg* escape constant set to a Color enum a
// Terminal implementation maps to its own escape sequences.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
)

// Terminal is the consumed interface the screen/window redraw path writes
// through: raw-mode control, size queries, cursor movement, line/screen
// erasure, attributed output, and the bell. cmd/memacs supplies an
// ANSI-over-os.Stdin/Stdout implementation built on golang.org/x/term, the
// same library the teacher uses in prompt.go for raw-mode control and
// terminal size queries.
type Terminal interface {
	Size() (rows, cols int, err error)
	EnterRaw() (restore func() error, err error)
	ReadByte() (byte, error)

	MoveTo(row, col int)
	EraseLineToRight()
	EraseScreen()
	WriteString(s string)
	SetAttr(fg, bg Color, attrs TermAttr)
	ResetAttr()
	Beep()

	Flush() error
}

// ansiTerminal is the default Terminal: escape sequences written through a
// buffered writer, raw mode via golang.org/x/term, matching prompt.go's
// fd-based MakeRaw/Restore/GetSize calls.
type ansiTerminal struct {
	in  *bufio.Reader
	out *bufio.Writer
	fd  int
}

// NewANSITerminal builds a Terminal over the given file descriptor pair
// (normally os.Stdin/os.Stdout).
func NewANSITerminal(in *os.File, out *os.File) Terminal {
	return &ansiTerminal{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
		fd:  int(out.Fd()),
	}
}

func (t *ansiTerminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.fd)
	return rows, cols, err
}

func (t *ansiTerminal) EnterRaw() (func() error, error) {
	saved, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(t.fd, saved) }, nil
}

func (t *ansiTerminal) ReadByte() (byte, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, nil
}

func (t *ansiTerminal) MoveTo(row, col int) {
	fmt.Fprintf(t.out, "\x1b[%d;%dH", row+1, col+1)
}

func (t *ansiTerminal) EraseLineToRight() {
	_, _ = io.WriteString(t.out, "\x1b[K")
}

func (t *ansiTerminal) EraseScreen() {
	_, _ = io.WriteString(t.out, "\x1b[H\x1b[2J")
}

func (t *ansiTerminal) WriteString(s string) {
	_, _ = io.WriteString(t.out, s)
}

var ansiFg = map[Color]string{
	ColorDefault: "\x1b[39m", ColorBlack: "\x1b[30m", ColorRed: "\x1b[91m",
	ColorGreen: "\x1b[92m", ColorYellow: "\x1b[93m", ColorBlue: "\x1b[94m",
	ColorPurple: "\x1b[35m", ColorCyan: "\x1b[36m", ColorWhite: "\x1b[97m",
}

var ansiBg = map[Color]string{
	ColorDefault: "\x1b[49m", ColorBlack: "\x1b[40m", ColorRed: "\x1b[101m",
	ColorGreen: "\x1b[102m", ColorYellow: "\x1b[103m", ColorBlue: "\x1b[104m",
	ColorPurple: "\x1b[45m", ColorCyan: "\x1b[46m", ColorWhite: "\x1b[107m",
}

func (t *ansiTerminal) SetAttr(fg, bg Color, attrs TermAttr) {
	if s, ok := ansiFg[fg]; ok {
		_, _ = io.WriteString(t.out, s)
	}
	if s, ok := ansiBg[bg]; ok {
		_, _ = io.WriteString(t.out, s)
	}
	switch attrs {
	case AttrBoldText:
		_, _ = io.WriteString(t.out, "\x1b[1m")
	case AttrDimText:
		_, _ = io.WriteString(t.out, "\x1b[2m")
	case AttrReverseText:
		_, _ = io.WriteString(t.out, "\x1b[7m")
	case AttrUnderlineText:
		_, _ = io.WriteString(t.out, "\x1b[4m")
	}
}

func (t *ansiTerminal) ResetAttr() {
	_, _ = io.WriteString(t.out, "\x1b[0m")
}

func (t *ansiTerminal) Beep() {
	_, _ = t.out.WriteByte('\a')
}

func (t *ansiTerminal) Flush() error { return t.out.Flush() }

// Command memacs is the terminal front end: it wires a Terminal and
// FileSystem into an Editor, loads any files named on the command line, and
// runs the read-key/dispatch/redraw loop until a command returns an exit
// status.
package main

import (
	"fmt"
	"os"

	"github.com/italia389/memacs"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-d debuglog] [file ...]\n", os.Args[0])
}

func main() {
	var files []string
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-h", "--help":
			usage()
			return
		case "-d":
			if i+1 >= len(args) {
				usage()
				os.Exit(2)
			}
			i++
			os.Setenv("MEMACS_DEBUG", args[i])
		default:
			files = append(files, a)
		}
	}

	term := memacs.NewANSITerminal(os.Stdin, os.Stdout)
	ed := memacs.NewEditor(
		memacs.WithTerminal(term),
		memacs.WithFileSystem(memacs.NewOSFileSystem()),
	)

	if rows, cols, err := term.Size(); err == nil {
		ed.CurScreen().Rows, ed.CurScreen().Cols = rows, cols
		w := ed.CurWindow()
		w.Rows, w.Cols = rows-1, cols // bottom row reserved for the mode/message line
	}

	for _, path := range files {
		b, err := ed.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		ed.CurWindow().SetBuffer(b)
	}

	if err := run(ed, term); err != nil {
		if o, ok := err.(*memacs.Outcome); ok {
			if o.Status == memacs.StatusUserExit || o.Status == memacs.StatusHelpExit {
				return
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ed *memacs.Editor, term memacs.Terminal) error {
	restore, err := term.EnterRaw()
	if err != nil {
		return err
	}
	defer restore()

	kr := newReaderFrom(term)
	for {
		redraw(ed, term)

		key, err := kr()
		if err != nil {
			return err
		}

		v, err := ed.Dispatch(key)
		_ = v
		ed.Sweep()
		if err == nil {
			continue
		}
		o, ok := err.(*memacs.Outcome)
		if !ok {
			return err
		}
		if o.Status.IsExit() {
			return o
		}
		ed.ReturnMessage = o.Error()
	}
}

// newReaderFrom adapts a Terminal's byte reader into the ExtKey decoder the
// editor's key-bound commands expect.
func newReaderFrom(term memacs.Terminal) func() (memacs.ExtKey, error) {
	return memacs.NewKeyDecoder(term.ReadByte)
}

func redraw(ed *memacs.Editor, term memacs.Terminal) {
	w := ed.CurWindow()
	tabSize := ed.HardTabSize

	line := w.Face.TopLine
	for row := 0; row < w.Rows; row++ {
		term.MoveTo(row, 0)
		term.EraseLineToRight()
		if line != nil {
			term.WriteString(w.RenderLine(line, tabSize))
			line = line.Next()
		}
	}

	term.MoveTo(w.Rows, 0)
	term.EraseLineToRight()
	term.SetAttr(memacs.ColorDefault, memacs.ColorDefault, memacs.AttrReverseText)
	term.WriteString(fmt.Sprintf(" %s ", w.Buffer.Name))
	term.ResetAttr()
	if ed.ReturnMessage != "" {
		term.WriteString(fmt.Sprintf("  %s", ed.ReturnMessage))
	}

	col, _ := w.CursorColumn(tabSize)
	row := rowOf(w.Face.TopLine, w.Face.Point.Line)
	term.MoveTo(row, col)
	term.Flush()
}

func rowOf(top, target *memacs.Line) int {
	row := 0
	for l := top; l != nil; l = l.Next() {
		if l == target {
			return row
		}
		row++
	}
	return 0
}

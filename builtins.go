package memacs

import (
	"strings"
)

// RegisterBuiltins installs the curated built-in command and function set,
// generalizing bind.go's static baseCommands table (a name -> implementation
// map) into entries carrying the attribute flags, argument constraints, and
// help text the registry's Call dispatch and argument checker consult.
func RegisterBuiltins(r *Registry) {
	r.RegisterNative("abs", EntryBuiltinFunction, 0, 1, 1, []Kind{KindInt},
		"absolute value of an integer", func(ed *Editor, args []Value) (Value, error) {
			n := args[0].Int()
			if n < 0 {
				n = -n
			}
			return IntValue(n), nil
		})

	r.RegisterNative("length", EntryBuiltinFunction, 0, 1, 1, nil,
		"length of a string or array", func(ed *Editor, args []Value) (Value, error) {
			v := args[0]
			switch v.Kind() {
			case KindString:
				return IntValue(int64(len(v.Str()))), nil
			case KindArray:
				return IntValue(int64(len(v.Array().Elems))), nil
			default:
				return Nil(), NewOutcome(StatusScriptError, "length: argument must be string or array")
			}
		})

	r.RegisterNative("index", EntryBuiltinFunction, 0, 2, 2, []Kind{KindString, KindString},
		"byte offset of the first occurrence of a substring, or -1", func(ed *Editor, args []Value) (Value, error) {
			i := strings.Index(args[0].Str(), args[1].Str())
			return IntValue(int64(i)), nil
		})

	// sub(source, pattern, replacement[, n]) replaces up to n occurrences
	// (all, if n is omitted or <= 0) of pattern in source with replacement.
	r.RegisterNative("sub", EntryBuiltinFunction, 0, 3, 4, nil,
		"substitute occurrences of a literal pattern in a string", func(ed *Editor, args []Value) (Value, error) {
			src, pat, repl := args[0].Str(), args[1].Str(), args[2].Str()
			n := -1
			if len(args) == 4 {
				n = int(args[3].Int())
			}
			if n <= 0 {
				n = -1
			}
			return StringValue(strings.Replace(src, pat, repl, n)), nil
		})

	r.RegisterNative("strip", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString},
		"remove leading and trailing whitespace", func(ed *Editor, args []Value) (Value, error) {
			return StringValue(strings.TrimSpace(args[0].Str())), nil
		})

	r.RegisterNative("upper", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString},
		"uppercase a string", func(ed *Editor, args []Value) (Value, error) {
			return StringValue(strings.ToUpper(args[0].Str())), nil
		})

	r.RegisterNative("lower", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString},
		"lowercase a string", func(ed *Editor, args []Value) (Value, error) {
			return StringValue(strings.ToLower(args[0].Str())), nil
		})

	r.RegisterNative("eval", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString},
		"evaluate a string as an expression", func(ed *Editor, args []Value) (Value, error) {
			return ed.EvalSource(args[0].Str())
		})

	r.RegisterNative("message", EntryBuiltinCommand, 0, 1, -1, nil,
		"set the return message", func(ed *Editor, args []Value) (Value, error) {
			var b strings.Builder
			for i, a := range args {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(a.Stringify())
			}
			ed.ReturnMessage = b.String()
			return StringValue(ed.ReturnMessage), nil
		})

	r.RegisterNative("quote", EntryBuiltinFunction, 0, 1, 1, nil,
		"render a value as a re-parseable literal", func(ed *Editor, args []Value) (Value, error) {
			return StringValue(args[0].Literal()), nil
		})

	// Ring-backed editing commands (component D), exercising ring.go and
	// editops.go's disposition logic.
	r.RegisterNative("kill-region", EntryBuiltinCommand, AttrEdit, 0, 1, []Kind{KindInt},
		"kill n characters forward from point, accumulating on the kill ring", func(ed *Editor, args []Value) (Value, error) {
			n := countArg(args, 1)
			w := ed.CurWindow()
			text, pt := ed.killOrDelete(w.Buffer, w.Face.Point, n, DispKill, 1)
			w.Face.Point = pt
			return StringValue(string(text)), nil
		})

	r.RegisterNative("yank", EntryBuiltinCommand, AttrEdit, 0, 0, nil,
		"insert the kill ring's current entry at point", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			w.Face.Point = ed.Yank(w.Buffer, w.Face.Point, RingKill)
			return Nil(), nil
		})

	r.RegisterNative("ring-cycle", EntryBuiltinCommand, AttrEdit, 1, 1, []Kind{KindInt},
		"cycle a ring's current entry by n", func(ed *Editor, args []Value) (Value, error) {
			ed.Rings[RingKill].Cycle(int(args[0].Int()))
			return Nil(), nil
		})

	r.RegisterNative("forward-char", EntryBuiltinCommand, 0, 0, 1, []Kind{KindInt},
		"move point forward n characters", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			w.Face.Point = forward(w.Face.Point, countArg(args, 1))
			return Nil(), nil
		})

	r.RegisterNative("backward-char", EntryBuiltinCommand, 0, 0, 1, []Kind{KindInt},
		"move point backward n characters", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			w.Face.Point = backward(w.Face.Point, countArg(args, 1))
			return Nil(), nil
		})

	r.RegisterNative("beginning-of-line", EntryBuiltinCommand, 0, 0, 0, nil,
		"move point to the start of the current line", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			w.Face.Point.Offset = 0
			return Nil(), nil
		})

	r.RegisterNative("end-of-line", EntryBuiltinCommand, 0, 0, 0, nil,
		"move point to the end of the current line", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			w.Face.Point.Offset = w.Face.Point.Line.Used()
			return Nil(), nil
		})

	r.RegisterNative("previous-line", EntryBuiltinCommand, 0, 0, 1, []Kind{KindInt},
		"move point up n lines, preserving offset where possible", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			pt := w.Face.Point
			for i := 0; i < countArg(args, 1) && pt.Line.Prev() != nil; i++ {
				pt.Line = pt.Line.Prev()
			}
			if pt.Offset > pt.Line.Used() {
				pt.Offset = pt.Line.Used()
			}
			w.Face.Point = pt
			return Nil(), nil
		})

	r.RegisterNative("next-line", EntryBuiltinCommand, 0, 0, 1, []Kind{KindInt},
		"move point down n lines, preserving offset where possible", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			pt := w.Face.Point
			for i := 0; i < countArg(args, 1) && pt.Line.Next() != nil; i++ {
				pt.Line = pt.Line.Next()
			}
			if pt.Offset > pt.Line.Used() {
				pt.Offset = pt.Line.Used()
			}
			w.Face.Point = pt
			return Nil(), nil
		})

	r.RegisterNative("delete-char", EntryBuiltinCommand, AttrEdit, 0, 1, []Kind{KindInt},
		"delete n characters forward from point, accumulating on the delete ring", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			_, pt := ed.killOrDelete(w.Buffer, w.Face.Point, countArg(args, 1), DispDelete, 1)
			w.Face.Point = pt
			return Nil(), nil
		})

	r.RegisterNative("backward-delete-char", EntryBuiltinCommand, AttrEdit, 0, 1, []Kind{KindInt},
		"delete n characters backward from point, accumulating on the delete ring", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			_, pt := ed.killOrDelete(w.Buffer, w.Face.Point, countArg(args, 1), DispDelete, -1)
			w.Face.Point = pt
			return Nil(), nil
		})

	r.RegisterNative("shell-command", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString},
		"run a shell command and return its captured output", func(ed *Editor, args []Value) (Value, error) {
			out, err := ShellPipe("/bin/sh", "-c", args[0].Str())
			if err != nil {
				return Nil(), err
			}
			return StringValue(out), nil
		})

	r.RegisterNative("insert-shell-output", EntryBuiltinCommand, AttrEdit, 1, 1, []Kind{KindString},
		"run a shell command and insert its output at point", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			pt, err := ed.InsertShellOutput(w.Buffer, w.Face.Point, "/bin/sh", "-c", args[0].Str())
			if err != nil {
				return Nil(), err
			}
			w.Face.Point = pt
			return Nil(), nil
		})

	r.RegisterNative("abort", EntryBuiltinCommand, AttrPermanent, 0, 0, nil,
		"abort the current command", func(ed *Editor, args []Value) (Value, error) {
			return Nil(), NewOutcome(StatusUserAbort, "Aborted")
		})

	// Narrowing (component B), exercising narrow.go's Buffer.Narrow and
	// Buffer.Widen.
	r.RegisterNative("narrowBuf", EntryBuiltinCommand, AttrEdit, 0, 1, []Kind{KindInt},
		"narrow the current buffer to n lines starting at point", func(ed *Editor, args []Value) (Value, error) {
			w := ed.CurWindow()
			if err := w.Buffer.Narrow(w.Face.Point, countArg(args, 1)); err != nil {
				return Nil(), err
			}
			return Nil(), nil
		})

	r.RegisterNative("narrowToMark", EntryBuiltinCommand, AttrEdit, 1, 1, []Kind{KindString},
		"narrow the current buffer to the lines spanning point and the named mark", func(ed *Editor, args []Value) (Value, error) {
			id := args[0].Str()
			if len(id) != 1 {
				return Nil(), NewOutcome(StatusScriptError, "narrowToMark: mark id must be one character")
			}
			w := ed.CurWindow()
			if err := w.Buffer.NarrowToMark(w.Face.Point, id[0]); err != nil {
				return Nil(), err
			}
			return Nil(), nil
		})

	r.RegisterNative("widen", EntryBuiltinCommand, AttrEdit, 0, 0, nil,
		"restore the current buffer's full line list after narrowing", func(ed *Editor, args []Value) (Value, error) {
			return Nil(), ed.CurWindow().Buffer.Widen()
		})
}

func countArg(args []Value, def int) int {
	if len(args) == 0 {
		return def
	}
	return int(args[0].Int())
}

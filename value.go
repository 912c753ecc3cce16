package memacs

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the dynamically typed Value union described by the
// data model: nil, bool, int, string, or array.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "?"
	}
}

// Value is a discriminated value: nil, true, false, a signed 64-bit integer,
// an arbitrary-byte string, or a reference to an Array. All kinds but array
// are copy-by-value; an Array is shared by reference and lives on the
// process-wide garbage list (garbage.go).
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	a    *Array
}

// Nil returns the nil value.
func Nil() Value { return Value{kind: KindNil} }

// True and False return the two bool values.
func True() Value  { return Value{kind: KindBool, b: true} }
func False() Value { return Value{kind: KindBool, b: false} }

func BoolValue(b bool) Value {
	if b {
		return True()
	}
	return False()
}

func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func ArrayValue(a *Array) Value { return Value{kind: KindArray, a: a} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNil() bool  { return v.kind == KindNil }
func (v Value) Bool() bool   { return v.b }
func (v Value) Int() int64   { return v.i }
func (v Value) Str() string  { return v.s }
func (v Value) Array() *Array { return v.a }

// Truth implements the editor's truthiness rule: nil and false are false;
// the integer 0 and the empty string are also false (matching the C
// evaluator's C-flavored truthiness), everything else is true.
func (v Value) Truth() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return true
	default:
		return false
	}
}

// Stringify converts v to its display/concatenation string form. Arrays
// render as a comma-separated, bracketed list of their elements' stringified
// form, with self-referential cycles rendered as "[...]" so Stringify always
// terminates.
func (v Value) Stringify() string {
	var buf strings.Builder
	v.stringifyInto(&buf, nil)
	return buf.String()
}

func (v Value) stringifyInto(buf *strings.Builder, seen map[*Array]bool) {
	switch v.kind {
	case KindNil:
		buf.WriteString("nil")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindString:
		buf.WriteString(v.s)
	case KindArray:
		if seen == nil {
			seen = make(map[*Array]bool)
		}
		if seen[v.a] {
			buf.WriteString("[...]")
			return
		}
		seen[v.a] = true
		buf.WriteByte('[')
		for i, e := range v.a.Elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			e.stringifyInto(buf, seen)
		}
		buf.WriteByte(']')
	}
}

// Equal implements the "==" operator's default element-wise semantics for
// arrays (same length, pairwise equal elements) and value equality for
// scalars. Differing kinds are never equal except that nil compares equal
// only to nil.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindArray:
		if v.a == o.a {
			return true
		}
		if len(v.a.Elems) != len(o.a.Elems) {
			return false
		}
		for i := range v.a.Elems {
			if !v.a.Elems[i].Equal(o.a.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v Value) GoString() string {
	return fmt.Sprintf("Value{%s: %s}", v.kind, v.Stringify())
}

// Literal renders v as source text that, re-parsed as an expression,
// reproduces an equal value: strings are quoted and escaped, arrays render
// as a bracketed literal of their elements' own Literal form, and a
// self-referential array renders its repeated element as "[...]" so the
// result is always a finite, syntactically valid expression (though no
// longer one that reproduces the cycle).
func (v Value) Literal() string {
	var buf strings.Builder
	v.literalInto(&buf, nil)
	return buf.String()
}

func (v Value) literalInto(buf *strings.Builder, seen map[*Array]bool) {
	switch v.kind {
	case KindNil:
		buf.WriteString("nil")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindString:
		buf.WriteString(strconv.Quote(v.s))
	case KindArray:
		if seen == nil {
			seen = make(map[*Array]bool)
		}
		if seen[v.a] {
			buf.WriteString("[...]")
			return
		}
		seen[v.a] = true
		buf.WriteByte('[')
		for i, e := range v.a.Elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			e.literalInto(buf, seen)
		}
		buf.WriteByte(']')
	}
}

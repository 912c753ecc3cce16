package memacs

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// classifyBinaryOp maps a binary operator symbol, together with the kind of
// its left operand, to the operation class the coercion table is indexed
// by. Several symbols name two different operations depending on the left
// operand's runtime kind (e.g. `*` is arithmetic multiply on ints and set
// intersection on arrays); the parser accepts every symbol at one fixed
// precedence slot (parser.go) and this function performs the kind-based
// dispatch the grammar's multi-level table otherwise encodes structurally.
func classifyBinaryOp(op string, left Kind) opClass {
	switch op {
	case "+":
		return opMath
	case "-":
		if left == KindArray {
			return opSetExclude
		}
		return opMath
	case "*":
		if left == KindArray {
			return opSetIntersect
		}
		return opMath
	case "/":
		return opMath
	case "%":
		if left == KindString {
			return opFormat
		}
		return opMath
	case "<<", ">>":
		return opShift
	case "&":
		if left == KindString || left == KindArray {
			return opConcat
		}
		return opBitwise
	case "|":
		if left == KindArray {
			return opSetUnion
		}
		return opBitwise
	case "^":
		return opBitwise
	case "<", "<=", ">", ">=":
		return opRelational
	case "==", "!=":
		return opEquality
	case "=~", "!~":
		return opREMatch
	default:
		return opMath
	}
}

// applyBinary evaluates a binary operator node's already-evaluated operands
// against the coercion table, then performs the operation. gl is the
// garbage list any newly constructed array result is pushed onto, per the
// invariant that a fresh array must be on the list before it becomes
// reachable from any variable or expression node.
func applyBinary(op string, l, r Value, gl *garbageList) (Value, error) {
	class := classifyBinaryOp(op, l.Kind())
	cell := lookupCoerce(class, l.Kind(), r.Kind())
	if !cell.legal {
		return Nil(), wrongOperandType(op, l.Kind(), r.Kind())
	}
	if cell.stringifyLeft {
		l = StringValue(l.Stringify())
	}
	if cell.stringifyRight {
		r = StringValue(r.Stringify())
	}

	switch class {
	case opMath:
		return evalMath(op, l, r)
	case opShift:
		if op == "<<" {
			return IntValue(l.Int() << uint(r.Int())), nil
		}
		return IntValue(l.Int() >> uint(r.Int())), nil
	case opBitwise:
		switch op {
		case "&":
			return IntValue(l.Int() & r.Int()), nil
		case "|":
			return IntValue(l.Int() | r.Int()), nil
		case "^":
			return IntValue(l.Int() ^ r.Int()), nil
		}
	case opFormat:
		return StringValue(formatString(l.Str(), r)), nil
	case opSetIntersect:
		return setIntersect(gl, l.Array(), r.Array()), nil
	case opSetExclude:
		return setExclude(gl, l.Array(), r.Array()), nil
	case opSetUnion:
		return setUnion(gl, l.Array(), r.Array()), nil
	case opConcat:
		return concat(gl, l, r), nil
	case opRelational:
		return evalRelational(op, l, r), nil
	case opEquality:
		eq := l.Equal(r)
		if op == "!=" {
			eq = !eq
		}
		return BoolValue(eq), nil
	case opREMatch:
		matched, err := regexp.MatchString(r.Str(), l.Str())
		if err != nil {
			return Nil(), NewOutcome(StatusScriptError, "invalid pattern: %v", err)
		}
		if op == "!~" {
			matched = !matched
		}
		return BoolValue(matched), nil
	}
	return Nil(), fmt.Errorf("unhandled operator class for %q", op)
}

func evalMath(op string, l, r Value) (Value, error) {
	a, b := l.Int(), r.Int()
	switch op {
	case "+":
		return IntValue(a + b), nil
	case "-":
		return IntValue(a - b), nil
	case "*":
		return IntValue(a * b), nil
	case "/":
		if b == 0 {
			return Nil(), NewOutcome(StatusScriptError, "division by zero")
		}
		return IntValue(a / b), nil
	case "%":
		if b == 0 {
			return Nil(), NewOutcome(StatusScriptError, "division by zero")
		}
		return IntValue(a % b), nil
	}
	return Nil(), fmt.Errorf("unknown math operator %q", op)
}

func evalRelational(op string, l, r Value) Value {
	var lt, eq bool
	if l.Kind() == KindInt {
		lt = l.Int() < r.Int()
		eq = l.Int() == r.Int()
	} else {
		lt = l.Str() < r.Str()
		eq = l.Str() == r.Str()
	}
	switch op {
	case "<":
		return BoolValue(lt)
	case "<=":
		return BoolValue(lt || eq)
	case ">":
		return BoolValue(!lt && !eq)
	case ">=":
		return BoolValue(!lt)
	}
	return False()
}

// formatString implements the `%` format operator: "x=%d" % 5. When rhs is
// an array, its elements supply successive verbs; otherwise rhs supplies
// the sole argument.
func formatString(pattern string, rhs Value) string {
	var args []interface{}
	if rhs.Kind() == KindArray {
		for _, e := range rhs.Array().Elems {
			args = append(args, formatArg(e))
		}
	} else {
		args = append(args, formatArg(rhs))
	}
	pattern = strings.ReplaceAll(pattern, "%s", "%v")
	return fmt.Sprintf(pattern, args...)
}

func formatArg(v Value) interface{} {
	switch v.Kind() {
	case KindInt:
		return v.Int()
	case KindString:
		return v.Str()
	default:
		return v.Stringify()
	}
}

func setIntersect(gl *garbageList, l, r *Array) Value {
	var out []Value
	for _, e := range l.Elems {
		if arrayContains(r, e) && !arrayContains(&Array{Elems: out}, e) {
			out = append(out, e)
		}
	}
	return ArrayValue(gl.NewArray(out...))
}

func setExclude(gl *garbageList, l, r *Array) Value {
	var out []Value
	for _, e := range l.Elems {
		if !arrayContains(r, e) {
			out = append(out, e)
		}
	}
	return ArrayValue(gl.NewArray(out...))
}

func setUnion(gl *garbageList, l, r *Array) Value {
	var out []Value
	for _, e := range l.Elems {
		if !arrayContains(&Array{Elems: out}, e) {
			out = append(out, e)
		}
	}
	for _, e := range r.Elems {
		if !arrayContains(&Array{Elems: out}, e) {
			out = append(out, e)
		}
	}
	return ArrayValue(gl.NewArray(out...))
}

func arrayContains(a *Array, v Value) bool {
	for _, e := range a.Elems {
		if e.Equal(v) {
			return true
		}
	}
	return false
}

func concat(gl *garbageList, l, r Value) Value {
	if l.Kind() == KindArray {
		out := append([]Value(nil), l.Array().Elems...)
		out = append(out, r.Array().Elems...)
		return ArrayValue(gl.NewArray(out...))
	}
	return StringValue(l.Str() + r.Str())
}

// sortStrings sorts ss in place, in descending order when desc is set. No
// function in the package calls it.
func sortStrings(ss []string, desc bool) {
	sort.Slice(ss, func(i, j int) bool {
		if desc {
			return ss[i] > ss[j]
		}
		return ss[i] < ss[j]
	})
}

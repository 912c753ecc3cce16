package memacs

import "fmt"

// Eval evaluates expr against the editor's global variable table and
// function registry, honoring the coercion table and short-circuit
// evaluation. Local variables are out of scope for this port: user
// commands/functions read and write the same global table an expression
// statement would, consistent with a scripting language whose "local"
// scope is just the current call's argument bindings (callUserRoutine in
// exec.go stores them in Globals under the routine's declared argument
// names and restores the previous values when the call returns).
func (ed *Editor) Eval(expr Expr) (Value, error) {
	switch n := expr.(type) {
	case IntLit:
		return IntValue(n.Val), nil
	case BoolLit:
		return BoolValue(n.Val), nil
	case NilLit:
		return Nil(), nil
	case StrLit:
		if n.Parts == nil {
			return StringValue(n.Val), nil
		}
		return ed.evalInterpolated(n.Parts)
	case Ident:
		return ed.lookupVar(n.Name), nil
	case GlobalVar:
		return ed.lookupVar(n.Name), nil
	case ArrayLit:
		return ed.evalArrayLit(n)
	case Unary:
		return ed.evalUnary(n)
	case Postfix:
		return ed.evalPostfix(n)
	case Binary:
		return ed.evalBinary(n)
	case Ternary:
		return ed.evalTernary(n)
	case Assign:
		return ed.evalAssign(n)
	case ParallelAssign:
		return ed.evalParallelAssign(n)
	case Call:
		return ed.evalCall(n)
	case Index:
		return ed.evalIndex(n)
	case NumPrefixCall:
		return ed.evalNumPrefixCall(n)
	default:
		return Nil(), fmt.Errorf("unhandled expression node %T", expr)
	}
}

func (ed *Editor) lookupVar(name string) Value {
	if v, ok := ed.Globals[name]; ok {
		return v
	}
	return Nil()
}

func (ed *Editor) evalInterpolated(parts []StrPart) (Value, error) {
	var out string
	for _, p := range parts {
		if p.Expr == "" {
			out += p.Lit
			continue
		}
		e, err := ParseExpr(p.Expr)
		if err != nil {
			return Nil(), err
		}
		v, err := ed.Eval(e)
		if err != nil {
			return Nil(), err
		}
		out += v.Stringify()
	}
	return StringValue(out), nil
}

func (ed *Editor) evalArrayLit(n ArrayLit) (Value, error) {
	elems := make([]Value, len(n.Elems))
	for i, e := range n.Elems {
		v, err := ed.Eval(e)
		if err != nil {
			return Nil(), err
		}
		elems[i] = v
	}
	return ArrayValue(ed.Garbage.NewArray(elems...)), nil
}

func (ed *Editor) evalUnary(n Unary) (Value, error) {
	if n.Op == "not" {
		x, err := ed.Eval(n.X)
		if err != nil {
			return Nil(), err
		}
		if !ed.evaluating {
			return Nil(), nil
		}
		return BoolValue(!x.Truth()), nil
	}
	if n.Op == "pre++" || n.Op == "pre--" {
		v, err := ed.Eval(n.X)
		if err != nil {
			return Nil(), err
		}
		delta := int64(1)
		if n.Op == "pre--" {
			delta = -1
		}
		nv := IntValue(v.Int() + delta)
		if err := ed.assignTo(n.X, nv); err != nil {
			return Nil(), err
		}
		return nv, nil
	}
	x, err := ed.Eval(n.X)
	if err != nil {
		return Nil(), err
	}
	if !ed.evaluating {
		return Nil(), nil
	}
	switch n.Op {
	case "+":
		return IntValue(x.Int()), nil
	case "-":
		return IntValue(-x.Int()), nil
	case "!":
		return BoolValue(!x.Truth()), nil
	case "~":
		return IntValue(^x.Int()), nil
	}
	return Nil(), fmt.Errorf("unknown prefix operator %q", n.Op)
}

func (ed *Editor) evalPostfix(n Postfix) (Value, error) {
	v, err := ed.Eval(n.X)
	if err != nil {
		return Nil(), err
	}
	delta := int64(1)
	if n.Op == "--" {
		delta = -1
	}
	if err := ed.assignTo(n.X, IntValue(v.Int()+delta)); err != nil {
		return Nil(), err
	}
	return v, nil
}

// evalBinary implements short-circuit evaluation for &&, ||, and/or via the
// editor's evaluating flag: the skipped branch is evaluated with evaluating
// cleared so side-effecting calls within it no-op, then restored.
func (ed *Editor) evalBinary(n Binary) (Value, error) {
	switch n.Op {
	case "&&", "and":
		l, err := ed.Eval(n.L)
		if err != nil {
			return Nil(), err
		}
		if !l.Truth() {
			if _, err := ed.evalNonEvaluating(n.R); err != nil {
				return Nil(), err
			}
			return BoolValue(false), nil
		}
		r, err := ed.Eval(n.R)
		if err != nil {
			return Nil(), err
		}
		return BoolValue(r.Truth()), nil
	case "||", "or":
		l, err := ed.Eval(n.L)
		if err != nil {
			return Nil(), err
		}
		if l.Truth() {
			if _, err := ed.evalNonEvaluating(n.R); err != nil {
				return Nil(), err
			}
			return BoolValue(true), nil
		}
		r, err := ed.Eval(n.R)
		if err != nil {
			return Nil(), err
		}
		return BoolValue(r.Truth()), nil
	}

	l, err := ed.Eval(n.L)
	if err != nil {
		return Nil(), err
	}
	r, err := ed.Eval(n.R)
	if err != nil {
		return Nil(), err
	}
	if !ed.evaluating {
		return Nil(), nil
	}
	return applyBinary(n.Op, l, r, ed.Garbage)
}

func (ed *Editor) evalNonEvaluating(x Expr) (Value, error) {
	saved := ed.evaluating
	ed.evaluating = false
	v, err := ed.Eval(x)
	ed.evaluating = saved
	return v, err
}

func (ed *Editor) evalTernary(n Ternary) (Value, error) {
	cond, err := ed.Eval(n.Cond)
	if err != nil {
		return Nil(), err
	}
	if cond.Truth() {
		if _, err := ed.evalNonEvaluating(n.Else); err != nil {
			return Nil(), err
		}
		return ed.Eval(n.Then)
	}
	if _, err := ed.evalNonEvaluating(n.Then); err != nil {
		return Nil(), err
	}
	return ed.Eval(n.Else)
}

func (ed *Editor) evalAssign(n Assign) (Value, error) {
	r, err := ed.Eval(n.R)
	if err != nil {
		return Nil(), err
	}
	if n.Op != "=" {
		l, err := ed.Eval(n.L)
		if err != nil {
			return Nil(), err
		}
		r, err = applyBinary(n.Op[:len(n.Op)-1], l, r, ed.Garbage)
		if err != nil {
			return Nil(), err
		}
	}
	if err := ed.assignTo(n.L, r); err != nil {
		return Nil(), err
	}
	return r, nil
}

func (ed *Editor) evalParallelAssign(n ParallelAssign) (Value, error) {
	rv, err := ed.Eval(n.RHS)
	if err != nil {
		return Nil(), err
	}
	if rv.Kind() != KindArray {
		return Nil(), NewOutcome(StatusScriptError, "parallel assignment requires an array right-hand side")
	}
	elems := rv.Array().Elems
	for i, lhs := range n.LHS {
		var v Value
		if i < len(elems) {
			v = elems[i]
		} else {
			v = Nil()
		}
		if err := ed.assignTo(lhs, v); err != nil {
			return Nil(), err
		}
	}
	return rv, nil
}

// assignTo is lvalue resolution: an identifier (global-named variable) or
// an array subscript of an lvalue.
func (ed *Editor) assignTo(lhs Expr, v Value) error {
	switch l := lhs.(type) {
	case Ident:
		ed.Globals[l.Name] = v
		return nil
	case GlobalVar:
		ed.Globals[l.Name] = v
		return nil
	case Index:
		arrv, err := ed.Eval(l.X)
		if err != nil {
			return err
		}
		if arrv.Kind() != KindArray {
			return NewOutcome(StatusScriptError, "subscript assignment requires an array")
		}
		iv, err := ed.Eval(l.I)
		if err != nil {
			return err
		}
		i := int(iv.Int())
		elems := arrv.Array().Elems
		if i < 0 || i >= len(elems) {
			return NewOutcome(StatusScriptError, "array index %d out of range", i)
		}
		elems[i] = v
		return nil
	default:
		return NewOutcome(StatusScriptError, "invalid assignment target")
	}
}

func (ed *Editor) evalCall(n Call) (Value, error) {
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ed.Eval(a)
		if err != nil {
			return Nil(), err
		}
		args[i] = v
	}
	if !ed.evaluating {
		return Nil(), nil
	}
	return ed.Registry.Call(ed, n.Callee, args)
}

func (ed *Editor) evalNumPrefixCall(n NumPrefixCall) (Value, error) {
	nv, err := ed.Eval(n.N)
	if err != nil {
		return Nil(), err
	}
	args := make([]Value, len(n.Call.Args)+1)
	args[0] = nv
	for i, a := range n.Call.Args {
		v, err := ed.Eval(a)
		if err != nil {
			return Nil(), err
		}
		args[i+1] = v
	}
	if !ed.evaluating {
		return Nil(), nil
	}
	return ed.Registry.Call(ed, n.Call.Callee, args)
}

func (ed *Editor) evalIndex(n Index) (Value, error) {
	xv, err := ed.Eval(n.X)
	if err != nil {
		return Nil(), err
	}
	if xv.Kind() != KindArray {
		return Nil(), NewOutcome(StatusScriptError, "subscript of non-array value")
	}
	elems := xv.Array().Elems
	iv, err := ed.Eval(n.I)
	if err != nil {
		return Nil(), err
	}
	i := int(iv.Int())
	if n.Slice {
		jv, err := ed.Eval(n.J)
		if err != nil {
			return Nil(), err
		}
		j := int(jv.Int())
		if i < 0 || j > len(elems) || i > j {
			return Nil(), NewOutcome(StatusScriptError, "slice [%d,%d] out of range", i, j)
		}
		return ArrayValue(ed.Garbage.NewArray(append([]Value(nil), elems[i:j]...)...)), nil
	}
	if i < 0 || i >= len(elems) {
		return Nil(), NewOutcome(StatusScriptError, "array index %d out of range", i)
	}
	return elems[i], nil
}

// EvalSource parses and evaluates a single expression's source text, the
// entry point for the `eval` built-in and for re-entrant parses (e.g.
// #{...} interpolation handled separately above for literals already
// lexed; this path is for runtime-constructed source).
func (ed *Editor) EvalSource(src string) (Value, error) {
	e, err := ParseExpr(src)
	if err != nil {
		return Nil(), err
	}
	ed.evaluating = true
	return ed.Eval(e)
}

package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSourceLiterals(t *testing.T) {
	ed := NewEditor()

	v, err := ed.EvalSource("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int())

	v, err = ed.EvalSource(`"a" & "b"`)
	require.NoError(t, err)
	assert.Equal(t, "ab", v.Str())

	v, err = ed.EvalSource("true")
	require.NoError(t, err)
	assert.True(t, v.Truth())

	v, err = ed.EvalSource("nil")
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestEvalSourceIdentDefaultsToNilThenAssignable(t *testing.T) {
	ed := NewEditor()

	v, err := ed.EvalSource("unset")
	require.NoError(t, err)
	assert.True(t, v.IsNil(), "an unset bareword reads as nil")

	_, err = ed.EvalSource("unset = 5")
	require.NoError(t, err)

	v, err = ed.EvalSource("unset")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())
}

func TestEvalSourceGlobalVarHasDollarPrefixedKey(t *testing.T) {
	ed := NewEditor()

	_, err := ed.EvalSource("$x = 10")
	require.NoError(t, err)

	assert.Equal(t, int64(10), ed.Globals["$x"].Int(), "GlobalVar's Name carries the $ prefix into Globals")

	v, err := ed.EvalSource("$x")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.Int())

	// A bareword of the same spelling, without the $, is a distinct binding.
	v, err = ed.EvalSource("x")
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestEvalSourceCompoundAssign(t *testing.T) {
	ed := NewEditor()
	_, err := ed.EvalSource("$n = 3")
	require.NoError(t, err)

	v, err := ed.EvalSource("$n += 4")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int())
	assert.Equal(t, int64(7), ed.Globals["$n"].Int())
}

func TestEvalSourceArrayLiteralAndIndex(t *testing.T) {
	ed := NewEditor()

	v, err := ed.EvalSource("[10, 20, 30][1]")
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.Int())

	v, err = ed.EvalSource(`["a", "b", "c"][0, 2]`)
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())
	assert.Len(t, v.Array().Elems, 2)
}

func TestEvalSourceTernarySuppressesUntakenBranchSideEffects(t *testing.T) {
	ed := NewEditor()
	ed.Registry.RegisterNative("bump", EntryBuiltinFunction, 0, 0, 0, nil, "", func(ed *Editor, args []Value) (Value, error) {
		cur := ed.Globals["$calls"]
		ed.Globals["$calls"] = IntValue(cur.Int() + 1)
		return IntValue(1), nil
	})

	v, err := ed.EvalSource("true ? 1 : bump()")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())
	assert.True(t, ed.Globals["$calls"].IsNil(), "the untaken else-branch must not run bump()")

	v, err = ed.EvalSource("false ? bump() : 2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())
	assert.True(t, ed.Globals["$calls"].IsNil(), "the untaken then-branch must not run bump()")
}

func TestEvalSourceShortCircuitAndOr(t *testing.T) {
	ed := NewEditor()
	ed.Registry.RegisterNative("sideEffect", EntryBuiltinFunction, 0, 0, 0, nil, "", func(ed *Editor, args []Value) (Value, error) {
		ed.Globals["$ran"] = BoolValue(true)
		return BoolValue(true), nil
	})

	v, err := ed.EvalSource("false && sideEffect()")
	require.NoError(t, err)
	assert.False(t, v.Truth())
	assert.True(t, ed.Globals["$ran"].IsNil(), "&& must not evaluate its right side once the left is false")

	v, err = ed.EvalSource("true || sideEffect()")
	require.NoError(t, err)
	assert.True(t, v.Truth())
	assert.True(t, ed.Globals["$ran"].IsNil(), "|| must not evaluate its right side once the left is true")

	v, err = ed.EvalSource("true && sideEffect()")
	require.NoError(t, err)
	assert.True(t, v.Truth())
	assert.True(t, ed.Globals["$ran"].Truth(), "&& must evaluate its right side when the left is true")
}

func TestEvalSourceBarewordCallRequiresNoSpaceBeforeParen(t *testing.T) {
	ed := NewEditor()
	ed.Registry.RegisterNative("answer", EntryBuiltinFunction, 0, 0, 0, nil, "", func(ed *Editor, args []Value) (Value, error) {
		return IntValue(42), nil
	})

	v, err := ed.EvalSource("answer()")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int())
}

func TestEvalSourceStringInterpolation(t *testing.T) {
	ed := NewEditor()
	_, err := ed.EvalSource("$name = \"world\"")
	require.NoError(t, err)

	v, err := ed.EvalSource(`"hello #{$name}"`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.Str())
}

func TestEvalSourceDivisionByZeroIsScriptError(t *testing.T) {
	ed := NewEditor()
	_, err := ed.EvalSource("1 / 0")
	o := outcomeOf(err)
	require.NotNil(t, o)
	assert.Equal(t, StatusScriptError, o.Status)
}

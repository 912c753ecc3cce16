package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndCall(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("double", EntryBuiltinFunction, 0, 1, 1, []Kind{KindInt},
		"doubles an integer", func(ed *Editor, args []Value) (Value, error) {
			return IntValue(args[0].Int() * 2), nil
		})

	v, err := r.Call(nil, "double", []Value{IntValue(21)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int())
}

func TestRegistryCallUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call(nil, "nope", nil)
	o := outcomeOf(err)
	require.NotNil(t, o)
	assert.Equal(t, StatusNotFound, o.Status)
}

func TestRegistryArgCountChecking(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("needs2", EntryBuiltinFunction, 0, 2, 2, nil, "", func(ed *Editor, args []Value) (Value, error) {
		return Nil(), nil
	})

	_, err := r.Call(nil, "needs2", []Value{IntValue(1)})
	assert.Error(t, err)

	_, err = r.Call(nil, "needs2", []Value{IntValue(1), IntValue(2), IntValue(3)})
	assert.Error(t, err)

	_, err = r.Call(nil, "needs2", []Value{IntValue(1), IntValue(2)})
	assert.NoError(t, err)
}

func TestRegistryArgTypeChecking(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("wantstr", EntryBuiltinFunction, 0, 1, 1, []Kind{KindString}, "", func(ed *Editor, args []Value) (Value, error) {
		return Nil(), nil
	})

	_, err := r.Call(nil, "wantstr", []Value{IntValue(1)})
	assert.Error(t, err)

	_, err = r.Call(nil, "wantstr", []Value{StringValue("ok")})
	assert.NoError(t, err)
}

func TestRegistryAliasIndirection(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("real", EntryBuiltinFunction, 0, 0, 0, nil, "", func(ed *Editor, args []Value) (Value, error) {
		return StringValue("hit"), nil
	})
	require.NoError(t, r.Alias("nickname", "real"))

	v, err := r.Call(nil, "nickname", nil)
	require.NoError(t, err)
	assert.Equal(t, "hit", v.Str())

	assert.Equal(t, []string{"nickname"}, r.Aliases())

	require.NoError(t, r.DeleteAlias("nickname"))
	assert.Empty(t, r.Aliases())
}

func TestRegistryAliasRejectsUnknownTargetOrDuplicateName(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("real", EntryBuiltinFunction, 0, 0, 0, nil, "", nil)

	assert.Error(t, r.Alias("x", "missing"))

	require.NoError(t, r.Alias("x", "real"))
	assert.Error(t, r.Alias("x", "real"), "name already in use")
}

func TestRegistryAliasesStaySorted(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("real", EntryBuiltinFunction, 0, 0, 0, nil, "", nil)
	require.NoError(t, r.Alias("zeta", "real"))
	require.NoError(t, r.Alias("alpha", "real"))
	require.NoError(t, r.Alias("mid", "real"))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Aliases())
}

func TestRegistryUnbindProtectsPermanentSoleBinding(t *testing.T) {
	r := NewRegistry()
	e := r.RegisterNative("abort", EntryBuiltinCommand, AttrPermanent, 0, 0, nil, "", nil)
	e.keyBindCount = 1

	err := r.Unbind("abort")
	assert.Error(t, err)

	e.keyBindCount = 2
	assert.NoError(t, r.Unbind("abort"))
	assert.Equal(t, 1, e.keyBindCount)
}

func TestRegistryHelpText(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("foo", EntryBuiltinFunction, 0, 0, 0, nil, "does foo things", nil)
	assert.Equal(t, "foo - does foo things", r.HelpText("foo"))
	assert.Equal(t, "", r.HelpText("missing"))
}

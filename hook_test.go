package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookUnboundIsNoop(t *testing.T) {
	ed := NewEditor()
	v, err := ed.Hooks.Invoke(ed, HookCreateBuf, StringValue("scratch"))
	require.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestHookInvokesBoundTarget(t *testing.T) {
	ed := NewEditor()
	ed.Registry.RegisterNative("onCreate", EntryBuiltinFunction, 0, 0, -1, nil, "", func(ed *Editor, args []Value) (Value, error) {
		return StringValue("ran"), nil
	})
	ed.Hooks.Bind(HookCreateBuf, "onCreate")

	v, err := ed.Hooks.Invoke(ed, HookCreateBuf)
	require.NoError(t, err)
	assert.Equal(t, "ran", v.Str())
	assert.Equal(t, "onCreate", ed.Hooks.BoundTo(HookCreateBuf))
}

func TestHookDisablesOnFailure(t *testing.T) {
	ed := NewEditor()
	ed.Registry.RegisterNative("boom", EntryBuiltinFunction, 0, 0, -1, nil, "", func(ed *Editor, args []Value) (Value, error) {
		return Nil(), NewOutcome(StatusFailure, "kaboom")
	})
	ed.Hooks.Bind(HookWrite, "boom")

	_, err := ed.Hooks.Invoke(ed, HookWrite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled 'write' hook")
	assert.Equal(t, "", ed.Hooks.BoundTo(HookWrite), "a failing hook unbinds itself")

	v, err := ed.Hooks.Invoke(ed, HookWrite)
	require.NoError(t, err)
	assert.True(t, v.IsNil(), "now unbound, subsequent invokes are a no-op")
}

func TestHookRejectsReentrantInvoke(t *testing.T) {
	ed := NewEditor()
	var called int
	ed.Registry.RegisterNative("selfTrigger", EntryBuiltinFunction, 0, 0, -1, nil, "", func(ed *Editor, args []Value) (Value, error) {
		called++
		v, err := ed.Hooks.Invoke(ed, HookHelp)
		require.NoError(t, err)
		assert.True(t, v.IsNil(), "re-entrant invoke of the same hook is a silent no-op")
		return Nil(), nil
	})
	ed.Hooks.Bind(HookHelp, "selfTrigger")

	_, err := ed.Hooks.Invoke(ed, HookHelp)
	require.NoError(t, err)
	assert.Equal(t, 1, called)
}

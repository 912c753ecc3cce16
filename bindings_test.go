package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingsDefaultLookup(t *testing.T) {
	b := NewBindings()
	assert.Equal(t, "forward-char", b.Lookup(namedExtKeys["right"]))
	assert.Equal(t, "abort", b.Lookup(ExtKey('g')|KeyCtrl))
	assert.Equal(t, "", b.Lookup(ExtKey('z')|KeyCtrl))
}

func TestBindingsRebind(t *testing.T) {
	r := NewRegistry()
	r.RegisterNative("forward-char", EntryBuiltinCommand, 0, 0, 1, nil, "", nil)
	r.RegisterNative("my-command", EntryBuiltinCommand, 0, 0, 0, nil, "", nil)

	b := NewBindings()
	require.NoError(t, b.Bind(r, namedExtKeys["right"], "my-command"))
	assert.Equal(t, "my-command", b.Lookup(namedExtKeys["right"]))
}

func TestBindingsProtectsPermanentSoleBinding(t *testing.T) {
	r := NewRegistry()
	e := r.RegisterNative("abort", EntryBuiltinCommand, AttrPermanent, 0, 0, nil, "", nil)
	e.keyBindCount = 1

	b := NewBindings()
	err := b.Bind(r, ExtKey('g')|KeyCtrl, "something-else")
	assert.Error(t, err)
	assert.Equal(t, "abort", b.Lookup(ExtKey('g')|KeyCtrl))
}

func TestEditorDispatchUnboundKey(t *testing.T) {
	ed := NewEditor()
	_, err := ed.Dispatch(ExtKey('z') | KeyCtrl)
	o := outcomeOf(err)
	require.NotNil(t, o)
	assert.Equal(t, StatusNotFound, o.Status)
}

func TestEditorDispatchRunsHooksAroundCall(t *testing.T) {
	ed := NewEditor()
	var order []string
	ed.Hooks.Bind(HookPreKey, "markPre")
	ed.Hooks.Bind(HookPostKey, "markPost")
	ed.Registry.RegisterNative("markPre", EntryBuiltinFunction, 0, 0, -1, nil, "", func(ed *Editor, args []Value) (Value, error) {
		order = append(order, "pre")
		return Nil(), nil
	})
	ed.Registry.RegisterNative("markPost", EntryBuiltinFunction, 0, 0, -1, nil, "", func(ed *Editor, args []Value) (Value, error) {
		order = append(order, "post")
		return Nil(), nil
	})

	_, err := ed.Dispatch(ExtKey('a') | KeyCtrl) // beginning-of-line, a builtin with no side effects to assert on
	require.NoError(t, err)
	assert.Equal(t, []string{"pre", "post"}, order)
}

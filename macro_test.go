package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroRecordAndPlayback(t *testing.T) {
	var m MacroRecorder
	require.NoError(t, m.BeginRecord())
	m.Record(ExtKey('a'))
	m.Record(ExtKey('b'))
	m.Record(ExtKey('c'))
	require.NoError(t, m.EndRecord())

	assert.False(t, m.Empty())

	var played []ExtKey
	require.NoError(t, m.Play(2, 100, func(k ExtKey) error {
		played = append(played, k)
		return nil
	}))
	assert.Equal(t, []ExtKey{'a', 'b', 'c', 'a', 'b', 'c'}, played)
}

func TestMacroRejectsNestedRecord(t *testing.T) {
	var m MacroRecorder
	require.NoError(t, m.BeginRecord())
	assert.Error(t, m.BeginRecord())
}

func TestMacroEndRecordWithoutBeginIsError(t *testing.T) {
	var m MacroRecorder
	assert.Error(t, m.EndRecord())
}

func TestMacroPlayWhileRecordingIsRejected(t *testing.T) {
	var m MacroRecorder
	require.NoError(t, m.BeginRecord())
	m.Record(ExtKey('x'))
	err := m.Play(1, 100, func(ExtKey) error { return nil })
	assert.Error(t, err)
}

func TestMacroPlayEmptyIsRejected(t *testing.T) {
	var m MacroRecorder
	err := m.Play(1, 100, func(ExtKey) error { return nil })
	assert.Error(t, err)
}

func TestMacroPlayUnlimitedBoundedByMaxLoop(t *testing.T) {
	var m MacroRecorder
	require.NoError(t, m.BeginRecord())
	m.Record(ExtKey('z'))
	require.NoError(t, m.EndRecord())

	count := 0
	require.NoError(t, m.Play(-1, 5, func(ExtKey) error {
		count++
		return nil
	}))
	assert.Equal(t, 5, count)
}

func TestMacroPlayStopsOnError(t *testing.T) {
	var m MacroRecorder
	require.NoError(t, m.BeginRecord())
	m.Record(ExtKey('a'))
	m.Record(ExtKey('b'))
	require.NoError(t, m.EndRecord())

	count := 0
	err := m.Play(3, 100, func(k ExtKey) error {
		count++
		if k == 'b' {
			return NewOutcome(StatusFailure, "boom")
		}
		return nil
	})
	assert.Error(t, err)
	assert.Equal(t, 2, count, "playback stops at the failing key of the first iteration")
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRemove(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.SetItem("k", "v"))
	v, ok, err := m.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, m.RemoveItem("k"))
	_, ok, err = m.GetItem("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is fine.
	assert.NoError(t, m.RemoveItem("missing"))
}

func TestMemory_Quota(t *testing.T) {
	m := NewMemory().WithQuota(10)

	require.NoError(t, m.SetItem("abc", "defg"))
	assert.ErrorIs(t, m.SetItem("xyz", "1234"), ErrQuotaExceeded)

	// Overwriting an existing key only counts the new value.
	assert.NoError(t, m.SetItem("abc", "1234567"))
}

func TestMemory_Disabled(t *testing.T) {
	m := NewMemory()
	m.Put("k", "v")
	m.SetDisabled(true)

	_, _, err := m.GetItem("k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, m.SetItem("k", "w"), ErrUnavailable)
	assert.ErrorIs(t, m.RemoveItem("k"), ErrUnavailable)
	assert.Equal(t, "v", m.Raw("k"))

	reads, writes := m.Calls()
	assert.Zero(t, reads)
	assert.Zero(t, writes)
}

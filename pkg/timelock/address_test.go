package timelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalStateAddress_Deterministic(t *testing.T) {
	a1, bump1, err := GlobalStateAddress()
	require.NoError(t, err)
	a2, bump2, err := GlobalStateAddress()
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, bump1, bump2)
	assert.Len(t, a1, 32)
}

func TestLockAddress_DistinctPerId(t *testing.T) {
	a1, _, err := LockAddress(0)
	require.NoError(t, err)
	a2, _, err := LockAddress(1)
	require.NoError(t, err)

	assert.False(t, a1.Equal(a2))
}

func TestLockAddress_Deterministic(t *testing.T) {
	a1, bump1, err := LockAddress(42)
	require.NoError(t, err)
	a2, bump2, err := LockAddress(42)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, bump1, bump2)
}

func TestVaultAddress_DistinctFromLockAddress(t *testing.T) {
	lock, _, err := LockAddress(7)
	require.NoError(t, err)
	vault, _, err := VaultAddress(7)
	require.NoError(t, err)

	assert.False(t, lock.Equal(vault))
}

func TestVaultAddress_DistinctPerId(t *testing.T) {
	v1, _, err := VaultAddress(1)
	require.NoError(t, err)
	v2, _, err := VaultAddress(2)
	require.NoError(t, err)

	assert.False(t, v1.Equal(v2))
}

func TestIdSeed_LittleEndian(t *testing.T) {
	seed := idSeed(1)
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, seed)
}

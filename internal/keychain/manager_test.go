// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManagerWithRing(keyring.NewArrayKeyring(nil))
}

func TestSetGetRemove(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Set("userRole", "ROLE_USER"))
	v, err := m.Get("userRole")
	require.NoError(t, err)
	assert.Equal(t, "ROLE_USER", v)

	require.NoError(t, m.Set("userRole", "ROLE_ADMIN"))
	v, err = m.Get("userRole")
	require.NoError(t, err)
	assert.Equal(t, "ROLE_ADMIN", v)

	require.NoError(t, m.Remove("userRole"))
	_, err = m.Get("userRole")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	m := newTestManager()
	assert.NoError(t, m.Remove("userRole"))
	assert.NoError(t, m.Remove("userRole"))
}

func TestClearAll(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.Set("userRole", "ROLE_USER"))
	require.NoError(t, m.Set("lastView", "/movies"))

	require.NoError(t, m.ClearAll())
	for _, k := range []string{"userRole", "lastView"} {
		_, err := m.Get(k)
		assert.ErrorIs(t, err, ErrNotFound, k)
	}
	assert.NoError(t, m.ClearAll(), "clearing an empty keychain is a no-op")
}

func TestAllowedBackendsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, allowedBackends())
}

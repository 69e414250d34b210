// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"boxoffice/cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f failingStore) Set(context.Context, string, string) error { return f.err }
func (f failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, f.err
}
func (f failingStore) Remove(context.Context, string) error { return f.err }

func TestNewSessionIsLoggedOut(t *testing.T) {
	s := NewSession(store.NewMemory(), nil)

	assert.False(t, s.IsAuthenticated())
	role, ok := s.CurrentRole()
	assert.False(t, ok)
	assert.Equal(t, "", role)
	assert.False(t, s.HasRole(""), "absent role never matches")
	assert.False(t, s.HasRole(RoleUser))
}

func TestLogin(t *testing.T) {
	roles := []string{RoleUser, RoleAdmin, "ROLE_MANAGER", "role_user"}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			ctx := context.Background()
			st := store.NewMemory()
			s := NewSession(st, nil)

			require.NoError(t, s.Login(ctx, role))

			assert.True(t, s.IsAuthenticated())
			assert.True(t, s.HasRole(role))
			for _, other := range roles {
				if other != role {
					assert.False(t, s.HasRole(other), "HasRole(%q)", other)
				}
			}
			stored, ok, err := st.Get(ctx, KeyUserRole)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, role, stored)
		})
	}
}

func TestHasRoleIsCaseSensitive(t *testing.T) {
	s := NewSession(store.NewMemory(), nil)
	require.NoError(t, s.Login(context.Background(), RoleAdmin))

	assert.False(t, s.HasRole("role_admin"))
	assert.False(t, s.HasRole(" ROLE_ADMIN"))
}

func TestLoginEmptyRole(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)

	require.NoError(t, s.Login(ctx, ""))

	assert.True(t, s.IsAuthenticated())
	role, ok := s.CurrentRole()
	assert.True(t, ok, "empty role is present, not absent")
	assert.Equal(t, "", role)
	assert.True(t, s.HasRole(""))
	assert.False(t, s.HasRole(RoleUser))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)
	require.NoError(t, s.Login(ctx, RoleUser))

	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated())
	_, ok := s.CurrentRole()
	assert.False(t, ok)
	for _, r := range []string{RoleUser, RoleAdmin, ""} {
		assert.False(t, s.HasRole(r))
	}
	_, ok, err := st.Get(ctx, KeyUserRole)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)
	require.NoError(t, s.Login(ctx, RoleAdmin))

	require.NoError(t, s.Logout(ctx))
	onceAuth := s.IsAuthenticated()
	onceRole, onceOK := s.CurrentRole()

	require.NoError(t, s.Logout(ctx))
	twiceRole, twiceOK := s.CurrentRole()

	assert.Equal(t, onceAuth, s.IsAuthenticated())
	assert.Equal(t, onceRole, twiceRole)
	assert.Equal(t, onceOK, twiceOK)
	assert.Equal(t, 0, st.Len())
}

func TestReloginOverwritesRole(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)

	require.NoError(t, s.Login(ctx, RoleUser))
	require.NoError(t, s.Login(ctx, RoleAdmin))

	assert.True(t, s.HasRole(RoleAdmin))
	assert.False(t, s.HasRole(RoleUser))
	stored, _, err := st.Get(ctx, KeyUserRole)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, stored)
}

func TestRestoreAfterRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.yaml")

	first := NewSession(store.NewFile(path), nil)
	require.NoError(t, first.Login(ctx, RoleUser))

	second := NewSession(store.NewFile(path), nil)
	assert.False(t, second.IsAuthenticated(), "loggedIn itself is not persisted")

	require.NoError(t, second.RestoreSession(ctx))
	assert.True(t, second.IsAuthenticated())
	role, ok := second.CurrentRole()
	assert.True(t, ok)
	assert.Equal(t, RoleUser, role)
}

func TestRestoreWithEmptyStore(t *testing.T) {
	s := NewSession(store.NewMemory(), nil)

	require.NoError(t, s.RestoreSession(context.Background()))

	assert.False(t, s.IsAuthenticated())
	_, ok := s.CurrentRole()
	assert.False(t, ok)
}

func TestRestoreKeepsStateWhenStoreEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)
	require.NoError(t, s.Login(ctx, RoleAdmin))
	require.NoError(t, st.Remove(ctx, KeyUserRole))

	require.NoError(t, s.RestoreSession(ctx))

	assert.True(t, s.IsAuthenticated(), "restore never forces a logout")
	assert.True(t, s.HasRole(RoleAdmin))
}

func TestRestoreIgnoresEmptyStoredRole(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, KeyUserRole, ""))
	s := NewSession(st, nil)

	require.NoError(t, s.RestoreSession(ctx))

	assert.False(t, s.IsAuthenticated())
}

func TestRestoreOverwritesCurrentRole(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	s := NewSession(st, nil)
	require.NoError(t, s.Login(ctx, RoleUser))
	require.NoError(t, st.Set(ctx, KeyUserRole, RoleAdmin))

	require.NoError(t, s.RestoreSession(ctx))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.HasRole(RoleAdmin))
	assert.False(t, s.HasRole(RoleUser))
}

func TestStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage disabled")
	s := NewSession(failingStore{err: boom}, nil)

	err := s.Login(ctx, RoleUser)
	assert.ErrorIs(t, err, boom)
	assert.True(t, s.IsAuthenticated(), "memory state is updated before the write")

	err = s.Logout(ctx)
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.IsAuthenticated())

	err = s.RestoreSession(ctx)
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.IsAuthenticated())
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemory(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Login(ctx, RoleUser)
			} else {
				_ = s.Logout(ctx)
			}
			_ = s.HasRole(RoleUser)
			_, _ = s.CurrentRole()
		}(i)
	}
	wg.Wait()

	auth := s.IsAuthenticated()
	_, ok := s.CurrentRole()
	assert.Equal(t, auth, ok, "loggedIn and role presence move together")
}

func TestKnownRoles(t *testing.T) {
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, KnownRoles())
	assert.True(t, IsKnownRole(RoleAdmin))
	assert.False(t, IsKnownRole("ROLE_GUEST"))
}

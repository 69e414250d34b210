// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth holds the client-side session state for boxoffice.
//
// A Session tracks whether the user is logged in and which role they hold,
// and mirrors the role into a durable store under KeyUserRole so a later
// process can restore it. Logging in only records the role the caller
// supplies. Nothing here verifies credentials or issues tokens.
//
// One Session is built per process by the command layer and shared by
// reference with every consumer.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"boxoffice/cli/internal/store"
)

// KeyUserRole is the durable store key holding the current role.
const KeyUserRole = "userRole"

// Session is the process-wide authentication state.
// It is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	loggedIn bool
	role     string
	hasRole  bool

	store store.Store
	log   *slog.Logger
}

// NewSession returns a logged-out Session persisting to st.
func NewSession(st store.Store, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{store: st, log: log}
}

// Login marks the session as logged in with role and persists the role.
// Any role string is accepted, including the empty string, and an earlier
// role is overwritten without a logout. The in-memory state changes even
// when the store write fails; the store error is returned.
func (s *Session) Login(ctx context.Context, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = true
	s.role, s.hasRole = role, true
	s.log.Debug("session login", "role", role)

	if err := s.store.Set(ctx, KeyUserRole, role); err != nil {
		return fmt.Errorf("persist role: %w", err)
	}
	return nil
}

// Logout clears the session and removes the persisted role.
// Calling it while logged out is harmless.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = false
	s.role, s.hasRole = "", false
	s.log.Debug("session logout")

	if err := s.store.Remove(ctx, KeyUserRole); err != nil {
		return fmt.Errorf("remove persisted role: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the session is logged in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// HasRole reports whether a role is present and equals candidate exactly.
// A session without a role never matches, not even the empty string.
func (s *Session) HasRole(candidate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasRole && s.role == candidate
}

// CurrentRole returns the role and whether one is present.
func (s *Session) CurrentRole() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role, s.hasRole
}

// RestoreSession reloads the persisted role. A non-empty stored role logs the
// session in with that role, replacing whatever role it held. A missing or
// empty record leaves the session untouched; it never forces a logout.
//
// The stored role alone is enough to count as logged in. Nothing checks that
// it was written by a real login.
func (s *Session) RestoreSession(ctx context.Context) error {
	role, ok, err := s.store.Get(ctx, KeyUserRole)
	if err != nil {
		return fmt.Errorf("load persisted role: %w", err)
	}
	if !ok || role == "" {
		s.log.Debug("session restore: nothing stored")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.role, s.hasRole = role, true
	s.log.Debug("session restored", "role", role)
	return nil
}

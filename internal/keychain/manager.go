// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides thread-safe access to the OS keychain/credential
// store for boxoffice. It exposes the keyring as a flat string key-value map
// scoped to the boxoffice service name, which is what the keyring store
// backend needs to mirror the session role.
//
// Native backends are preferred on every platform: macOS Keychain, Windows
// Credential Manager, and Secret Service or KWallet on Linux, with pass as
// the last resort.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "boxoffice"

// ErrNotFound is returned by Get when the key has no entry.
var ErrNotFound = errors.New("key not found")

// Manager provides thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring under ServiceName.
func NewManager() (*Manager, error) {
	ring, err := openRing(ServiceName)
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// allowedBackends lists the native keyring backends for the current OS.
func allowedBackends() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		// pass covers macOS releases where the Keychain API is unavailable.
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend}
	default:
		return []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	}
}

// openRing opens the OS keyring using native platform backends only.
// No encrypted-file fallback; the file store covers that case.
func openRing(service string) (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:     service,
		AllowedBackends: allowedBackends(),
		PassPrefix:      service,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = service
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}
	return ring, nil
}

// Set stores value under key, replacing any previous entry.
// This method is thread-safe.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: ServiceName + " " + key,
	})
}

// Get retrieves the value stored under key.
// It returns ErrNotFound when there is no entry.
// This method is thread-safe.
func (m *Manager) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(it.Data), nil
}

// Remove deletes the entry under key. A missing entry is not an error.
// This method is thread-safe.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// ClearAll removes every boxoffice entry from the keychain.
// This method is thread-safe and should be used with caution.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys, err := m.ring.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := m.ring.Remove(k); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			return err
		}
	}
	return nil
}

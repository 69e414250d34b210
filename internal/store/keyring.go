package store

import (
	"context"
	"errors"

	apperrors "boxoffice/cli/internal/errors"
	"boxoffice/cli/internal/keychain"
)

// Keyring is a Store backed by the OS credential store.
type Keyring struct {
	km *keychain.Manager
}

// NewKeyring wraps a keychain manager as a Store.
func NewKeyring(km *keychain.Manager) *Keyring {
	return &Keyring{km: km}
}

// Set stores value under key in the OS keychain.
func (k *Keyring) Set(_ context.Context, key, value string) error {
	if err := k.km.Set(key, value); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "keyring set "+key, err)
	}
	return nil
}

// Get returns the value under key and whether it was present.
func (k *Keyring) Get(_ context.Context, key string) (string, bool, error) {
	v, err := k.km.Get(key)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.StoreRead, "keyring get "+key, err)
	}
	return v, true, nil
}

// Remove deletes key from the OS keychain.
func (k *Keyring) Remove(_ context.Context, key string) error {
	if err := k.km.Remove(key); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "keyring remove "+key, err)
	}
	return nil
}

// Clear removes every boxoffice entry from the OS keychain.
func (k *Keyring) Clear(_ context.Context) error {
	if err := k.km.ClearAll(); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "keyring clear", err)
	}
	return nil
}

// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package store provides the durable key-value stores the session layer
// mirrors its role into. Every backend offers the same three operations,
// set, get and remove, over flat string keys with no versioning, namespacing
// beyond a fixed prefix, or expiry.
//
// Removing a missing key always succeeds, so logout stays idempotent on every
// backend.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"boxoffice/cli/internal/config"
	apperrors "boxoffice/cli/internal/errors"
	"boxoffice/cli/internal/keychain"
	"boxoffice/cli/internal/xdg"

	"github.com/redis/go-redis/v9"
)

// Store is a synchronous string key-value accessor.
type Store interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Remove deletes key. A missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Clearer is implemented by stores that can drop every boxoffice entry,
// not just the session role.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Closer is implemented by stores that hold connections.
type Closer interface {
	Close() error
}

// Open builds the store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil

	case config.BackendFile:
		path := cfg.File
		if path == "" {
			dir, err := xdg.StateDir()
			if err != nil {
				return nil, apperrors.Wrap(apperrors.StoreUnavailable, "resolve state dir", err)
			}
			path = filepath.Join(dir, "session.yaml")
		}
		log.Debug("store opened", "backend", cfg.Backend, "path", path)
		return NewFile(path), nil

	case config.BackendKeyring:
		km, err := keychain.NewManager()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.StoreUnavailable, "open keyring", err)
		}
		log.Debug("store opened", "backend", cfg.Backend, "service", keychain.ServiceName)
		return NewKeyring(km), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, apperrors.Wrap(apperrors.StoreUnavailable, "connect redis at "+cfg.Redis.Addr, err)
		}
		log.Debug("store opened", "backend", cfg.Backend, "addr", cfg.Redis.Addr, "namespace", cfg.Namespace)
		return NewRedis(client, cfg.Namespace), nil
	}
	return nil, apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown store backend %q", cfg.Backend))
}

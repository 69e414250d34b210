// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"io"
	"log/slog"

	"boxoffice/cli/internal/auth"
	"boxoffice/cli/internal/config"
	"boxoffice/cli/internal/logging"
	"boxoffice/cli/internal/navbar"
	"boxoffice/cli/internal/router"
	"boxoffice/cli/internal/store"
)

// app is the composition root: one of each collaborator per process.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	store   store.Store
	session *auth.Session
	router  *router.Router
	navbar  *navbar.Presenter
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFrom(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}

// newApp loads configuration, opens the store and restores the saved session.
func newApp(ctx context.Context, opts *rootOptions, out, errOut io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.store != "" {
		cfg.Store.Backend = opts.store
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel, errOut)
	st, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		return nil, err
	}

	session := auth.NewSession(st, log)
	if err := session.RestoreSession(ctx); err != nil {
		closeStore(st)
		return nil, err
	}

	r := router.New(log)
	registerViews(r, out)

	return &app{
		cfg:     cfg,
		log:     log,
		store:   st,
		session: session,
		router:  r,
		navbar:  navbar.NewPresenter(session, r),
	}, nil
}

func (a *app) close() {
	closeStore(a.store)
}

func closeStore(st store.Store) {
	if c, ok := st.(store.Closer); ok {
		_ = c.Close()
	}
}

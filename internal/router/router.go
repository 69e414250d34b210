// Package router maps navigation paths onto terminal views.
//
// It is the CLI counterpart of a browser router: a view is registered per
// path, Navigate switches to it, and the router remembers where the user has
// been. The navigation bar only ever sees it through navbar.Navigator.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	apperrors "boxoffice/cli/internal/errors"
)

// View renders the screen for a path.
type View func(ctx context.Context, path string) error

// Router dispatches paths to registered views. It is safe for concurrent use.
type Router struct {
	mu      sync.Mutex
	views   map[string]View
	current string
	history []string
	log     *slog.Logger
}

// New returns a router with no views.
func New(log *slog.Logger) *Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Router{views: make(map[string]View), log: log}
}

// Handle registers v for path, replacing any earlier registration.
func (r *Router) Handle(path string, v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[normalize(path)] = v
}

// Navigate switches to the view registered for path. An unknown path leaves
// the current location unchanged. A failing view is recorded as visited, and
// its error is returned wrapped.
func (r *Router) Navigate(ctx context.Context, path string) error {
	p := normalize(path)

	r.mu.Lock()
	v, ok := r.views[p]
	if !ok {
		r.mu.Unlock()
		return apperrors.New(apperrors.NavigationFailed, fmt.Sprintf("no view registered for %q", path))
	}
	r.current = p
	r.history = append(r.history, p)
	r.mu.Unlock()

	r.log.Debug("navigate", "path", p)
	if err := v(ctx, p); err != nil {
		return apperrors.Wrap(apperrors.NavigationFailed, "render "+p, err)
	}
	return nil
}

// Current returns the last path navigated to, or "" before any navigation.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns every path navigated to, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// normalize trims surrounding space and trailing slashes and ensures a
// leading slash, so "login", "/login/" and "/login" are the same route.
func normalize(path string) string {
	p := strings.TrimSpace(path)
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package navbar decides what the boxoffice navigation bar offers for the
// current session and performs the navigation it triggers.
package navbar

import (
	"context"
	"fmt"
	"io"
	"strings"

	"boxoffice/cli/internal/auth"

	"github.com/pterm/pterm"
)

// Paths the navigation bar links to.
const (
	PathLogin          = "/login"
	PathMovies         = "/movies"
	PathTickets        = "/tickets"
	PathManageMovies   = "/admin/movies"
	PathManageBookings = "/admin/bookings"
	PathLogout         = "/logout"
)

// Navigator moves the UI to another view.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// Session is the part of auth.Session the navigation bar reads and mutates.
type Session interface {
	IsAuthenticated() bool
	HasRole(role string) bool
	CurrentRole() (string, bool)
	Logout(ctx context.Context) error
}

var _ Session = (*auth.Session)(nil)

// Item is one affordance in the navigation bar.
type Item struct {
	Label    string
	Path     string
	Position string // PositionLeft or PositionRight
}

// Item positions. Left items browse the site; right items manage the session.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

var (
	itemLogin          = Item{Label: "Login", Path: PathLogin, Position: PositionRight}
	itemMovies         = Item{Label: "Movies", Path: PathMovies, Position: PositionLeft}
	itemTickets        = Item{Label: "My Tickets", Path: PathTickets, Position: PositionLeft}
	itemManageMovies   = Item{Label: "Manage Movies", Path: PathManageMovies, Position: PositionLeft}
	itemManageBookings = Item{Label: "Bookings", Path: PathManageBookings, Position: PositionLeft}
	itemLogout         = Item{Label: "Logout", Path: PathLogout, Position: PositionRight}
)

// Presenter exposes session-derived visibility checks and the logout action.
type Presenter struct {
	session Session
	nav     Navigator
}

// NewPresenter returns a presenter over session that navigates through nav.
func NewPresenter(session Session, nav Navigator) *Presenter {
	return &Presenter{session: session, nav: nav}
}

// IsUser reports whether the session holds ROLE_USER.
func (p *Presenter) IsUser() bool {
	return p.session.HasRole(auth.RoleUser)
}

// IsAdmin reports whether the session holds ROLE_ADMIN.
func (p *Presenter) IsAdmin() bool {
	return p.session.HasRole(auth.RoleAdmin)
}

// IsAuthenticated reports whether the session is logged in.
func (p *Presenter) IsAuthenticated() bool {
	return p.session.IsAuthenticated()
}

// Logout clears the session and navigates to the login view.
// Navigation errors are returned as-is.
func (p *Presenter) Logout(ctx context.Context) error {
	if err := p.session.Logout(ctx); err != nil {
		return err
	}
	return p.nav.Navigate(ctx, PathLogin)
}

// Items returns the visible affordances, left-aligned items first.
func (p *Presenter) Items() []Item {
	if !p.IsAuthenticated() {
		return []Item{itemLogin}
	}
	var items []Item
	switch {
	case p.IsAdmin():
		items = append(items, itemMovies, itemManageMovies, itemManageBookings)
	case p.IsUser():
		items = append(items, itemMovies, itemTickets)
	}
	return append(items, itemLogout)
}

// Select activates the visible item labelled label. Logout runs the logout
// action; every other item navigates to its path.
func (p *Presenter) Select(ctx context.Context, label string) error {
	for _, it := range p.Items() {
		if it.Label != label {
			continue
		}
		if it.Path == PathLogout {
			return p.Logout(ctx)
		}
		return p.nav.Navigate(ctx, it.Path)
	}
	return fmt.Errorf("navbar: no visible item %q", label)
}

// Labels returns the labels of Items in order.
func (p *Presenter) Labels() []string {
	items := p.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

// Split groups Items by position, keeping their order.
func (p *Presenter) Split() (left, right []Item) {
	for _, it := range p.Items() {
		if it.Position == PositionRight {
			right = append(right, it)
		} else {
			left = append(left, it)
		}
	}
	return left, right
}

// Render writes the navigation bar as a titled box to w: browsing items
// first, then a divider, then the session items.
func (p *Presenter) Render(w io.Writer) error {
	left, right := p.Split()

	var sections []string
	for _, group := range [][]Item{left, right} {
		if len(group) == 0 {
			continue
		}
		list, err := renderList(group)
		if err != nil {
			return err
		}
		sections = append(sections, list)
	}

	title := "Guest"
	if role, ok := p.session.CurrentRole(); ok && p.IsAuthenticated() {
		title = role
		if title == "" {
			title = "(no role)"
		}
	}
	box := pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("boxoffice · " + title)).
		Sprint(strings.Join(sections, Divider+"\n"))
	_, err := fmt.Fprintln(w, box)
	return err
}

// Divider separates browsing items from session items in Render.
const Divider = "────────────────────"

func renderList(items []Item) (string, error) {
	bullets := make([]pterm.BulletListItem, 0, len(items))
	for _, it := range items {
		bullets = append(bullets, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("%-14s %s", it.Label, pterm.FgGray.Sprint(it.Path)),
		})
	}
	return pterm.DefaultBulletList.WithItems(bullets).Srender()
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"boxoffice/cli/internal/navbar"
	"boxoffice/cli/internal/router"
)

// registerViews wires every navigation target to a terminal screen.
func registerViews(r *router.Router, out io.Writer) {
	r.Handle(navbar.PathLogin, func(_ context.Context, _ string) error {
		_, err := fmt.Fprintln(out, "🔒 You're logged out.\n   Run 'boxoffice login' to sign in again.")
		return err
	})
	screens := map[string]string{
		navbar.PathMovies:         "🎬 Now showing",
		navbar.PathTickets:        "🎟️  My tickets",
		navbar.PathManageMovies:   "🛠️  Manage movies",
		navbar.PathManageBookings: "📋 Bookings",
	}
	for path, title := range screens {
		r.Handle(path, func(_ context.Context, p string) error {
			_, err := fmt.Fprintf(out, "%s (%s)\n", title, p)
			return err
		})
	}
}

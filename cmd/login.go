// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"boxoffice/cli/internal/auth"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newLoginCmd builds the login command. It records the chosen role as the
// current session and persists it so later invocations start logged in.
func newLoginCmd(stdin *os.File) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:     "login [ROLE]",
		Aliases: []string{"signin"},
		Short:   "Start a session with the given role",
		Long: `The login command starts a local session with a role such as ROLE_USER or
ROLE_ADMIN. The role is saved to the configured store and restored on the next run.

When no role is given and stdin is a terminal, an interactive picker is shown.
Logging in again with a different role replaces the current one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFrom(ctx)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if role != "" && role != args[0] {
					return fmt.Errorf("conflicting roles %q and %q", role, args[0])
				}
				role = args[0]
			}
			if !cmd.Flags().Changed("role") && len(args) == 0 {
				picked, err := pickRole(stdin)
				if err != nil {
					return err
				}
				role = picked
			}

			// The session was just restored from the store, so an identical
			// role is already persisted there; Login would rewrite the same value.
			if a.session.IsAuthenticated() && a.session.HasRole(role) {
				fmt.Fprintf(out, "Already logged in as %s\n", role)
				return nil
			}
			if !auth.IsKnownRole(role) {
				a.log.Warn("logging in with a role the navigation bar does not know", "role", role)
			}

			if err := a.session.Login(ctx, role); err != nil {
				return err
			}
			fmt.Fprintln(out, loginGreeting(role))
			return a.navbar.Render(out)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Role to log in with (ROLE_USER, ROLE_ADMIN)")
	return cmd
}

var (
	errRoleRequired   = errors.New("no role given: pass --role ROLE_USER or --role ROLE_ADMIN")
	errNotInteractive = errors.New("interactive mode needs a terminal on stdin")
)

// pickRole asks for a role interactively. Without a terminal it fails so
// scripts never block on a prompt.
func pickRole(stdin *os.File) (string, error) {
	if stdin == nil || !term.IsTerminal(int(stdin.Fd())) {
		return "", errRoleRequired
	}
	return pterm.DefaultInteractiveSelect.
		WithOptions(auth.KnownRoles()).
		WithDefaultText("Log in as").
		Show()
}

// loginGreeting returns a random greeting phrase with the role
func loginGreeting(role string) string {
	greetings := []string{
		"🎉 Welcome back! Logged in as %s",
		"🍿 Grab your popcorn, you're in as %s",
		"🎬 Lights, camera, %s!",
		"✅ Login successful: %s",
	}
	label := role
	if label == "" {
		label = "(no role)"
	}
	return fmt.Sprintf(greetings[rand.IntN(len(greetings))], label)
}

func printNotLoggedIn(out io.Writer) {
	fmt.Fprintln(out, "🔒 You're not logged in yet!")
	fmt.Fprintln(out, "   Run 'boxoffice login' to get started.")
}

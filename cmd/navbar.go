// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newNavbarCmd builds the navbar command, which shows the navigation bar for
// the current session and optionally follows one of its items.
func newNavbarCmd(stdin *os.File) *cobra.Command {
	var (
		selectItem  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "navbar",
		Aliases: []string{"nav", "menu"},
		Short:   "Show the navigation bar for the current session",
		Long: `The navbar command renders the navigation items available to the current
session: Login when logged out, customer items for ROLE_USER, management items
for ROLE_ADMIN and Logout whenever logged in.

Use --select to follow an item by label, or -i to pick one interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFrom(ctx)

			if err := a.navbar.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if selectItem == "" && interactive {
				if stdin == nil || !term.IsTerminal(int(stdin.Fd())) {
					return errNotInteractive
				}
				picked, err := pterm.DefaultInteractiveSelect.
					WithOptions(a.navbar.Labels()).
					WithDefaultText("Go to").
					Show()
				if err != nil {
					return err
				}
				selectItem = picked
			}
			if selectItem == "" {
				return nil
			}
			return a.navbar.Select(ctx, selectItem)
		},
	}

	cmd.Flags().StringVarP(&selectItem, "select", "s", "", "Follow the navigation item with this label")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a navigation item interactively")
	return cmd
}

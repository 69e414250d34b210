// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"boxoffice/cli/internal/store"

	"github.com/spf13/cobra"
)

// newLogoutCmd builds the logout command. It clears the session through the
// navigation bar, which then takes the user to the login screen.
func newLogoutCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Long: `The logout command clears the local session and removes the saved role from
the configured store, then shows the login screen. Running it while logged out
is harmless.

With --all, every entry boxoffice keeps in the store is removed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a := appFrom(ctx)

			if err := a.navbar.Logout(ctx); err != nil {
				return err
			}
			if !all {
				return nil
			}
			c, ok := a.store.(store.Clearer)
			if !ok {
				return fmt.Errorf("store %q cannot be cleared", a.cfg.Store.Backend)
			}
			if err := c.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ All saved boxoffice data has been removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also remove every other entry boxoffice keeps in the store")
	return cmd
}

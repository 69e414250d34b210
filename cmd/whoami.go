package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newWhoamiCmd builds the whoami command for displaying the restored session.
func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Aliases: []string{"me"},
		Short:   "Show the current session role",
		Long: `The whoami command shows the role of the current session as restored from
the configured store. If no role is saved, it tells you that you're not logged in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())
			out := cmd.OutOrStdout()

			role, ok := a.session.CurrentRole()
			if !a.session.IsAuthenticated() || !ok {
				printNotLoggedIn(out)
				return nil
			}
			if role == "" {
				role = "(no role)"
			}
			fmt.Fprintf(out, "👤 Current role: %s\n", role)
			return nil
		},
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"boxoffice/cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd builds the config command group.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	group := &cobra.Command{
		Use:   "config",
		Short: "Manage the boxoffice configuration file",
	}
	group.AddCommand(newConfigInitCmd(opts))
	return group
}

// newConfigInitCmd writes a starter config.yaml. The --store flag, if given,
// becomes the saved backend.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a default config.yaml",
		Annotations: map[string]string{"skipApp": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			c := config.Default()
			if opts.store != "" {
				c.Store.Backend = opts.store
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

// Copyright (c) 2025 Boxoffice
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the boxoffice client.
// It implements the session subcommands (login, logout, whoami, navbar) using
// the Cobra CLI framework and renders output with pterm.
//
// The root command's pre-run is the composition root: it builds the one
// Session, store, router and navigation bar for the process and hands them
// to the subcommand through the command context.
package cmd

import (
	"fmt"
	"io"
	"os"

	"boxoffice/cli/internal/logging"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	store       string
	verbose     bool
	showVersion bool

	// app is set by the pre-run hook and closed by run.
	app *app
}

// closeApp releases the store opened for this invocation, if any.
func (o *rootOptions) closeApp() {
	if o.app != nil {
		o.app.close()
	}
}

// newRootCmd builds the command tree over opts. stdin is only consulted by
// interactive prompts.
func newRootCmd(stdin *os.File, opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "boxoffice",
		Short:         "boxoffice CLI for the movie ticket booking service",
		Long:          `boxoffice is a command-line client for the movie ticket booking service. It keeps a local session (your role) and shows the navigation available to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			a, err := newApp(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.app = a
			cmd.SetContext(withApp(cmd.Context(), a))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "boxoffice %s\n", Version)
				return nil
			}
			// If no flag is set, show help
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: XDG config dir)")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "Session store backend: file, keyring, redis or memory")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.Flags().BoolVar(&opts.showVersion, "version", false, "Show CLI version information")

	root.AddCommand(
		newLoginCmd(stdin),
		newLogoutCmd(),
		newWhoamiCmd(),
		newNavbarCmd(stdin),
		newVersionCmd(),
		newConfigCmd(opts),
	)
	return root
}

// needsApp reports whether cmd works on the session. The root itself, help,
// completion and annotated commands run without opening a store.
func needsApp(cmd *cobra.Command) bool {
	if !cmd.HasParent() || cmd.Annotations["skipApp"] == "true" {
		return false
	}
	for c := cmd; c.HasParent(); c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}
	return true
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	opts := &rootOptions{}
	root := newRootCmd(os.Stdin, opts)
	if err := run(root, opts, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes root and closes the store whether or not the command failed.
func run(root *cobra.Command, opts *rootOptions, errOut io.Writer) error {
	defer opts.closeApp()

	err := root.Execute()
	if err != nil {
		logging.ShowError(errOut, "running boxoffice", err)
	}
	return err
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/z5labs/loaden"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "loaden",
		Short:        "Inspect loaden configuration files",
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var require []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <config file>",
		Short: "Load a config file, resolve its includes and validate required keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []loaden.Option{
				loaden.Required(require...),
			}
			if verbose {
				opts = append(opts, loaden.LogHandler(slog.NewTextHandler(
					cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug},
				)))
			}

			doc, err := loaden.Load(args[0], opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d top level keys)\n", args[0], len(doc))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&require, "require", nil, "dot-separated key paths that must be present")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log include resolution and env seeding")
	return cmd
}

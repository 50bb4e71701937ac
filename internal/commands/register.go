// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(log *slog.Logger, getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "partconv",
		Short: "Convert schema-described partition files to JSON Lines",
	}

	registerInitCmd(rootCmd)
	registerConvertCmd(rootCmd, log, getenv)
	registerDatasetsCmd(rootCmd, getenv)
	registerSchemaCmd(rootCmd, getenv)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerDatasetsCmd(parent *cobra.Command, getenv func(string) string) {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Inspect datasets under the source root",
	}

	cmd.AddCommand(newDatasetsListCmd(getenv))

	parent.AddCommand(cmd)
}

func registerSchemaCmd(parent *cobra.Command, getenv func(string) string) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the dataset schema document",
	}

	cmd.AddCommand(newSchemaDescribeCmd(getenv))

	parent.AddCommand(cmd)
}

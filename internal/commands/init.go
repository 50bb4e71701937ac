// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/partconv/internal/config"
	"github.com/dacolabs/partconv/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	source         string
	target         string
	delimiter      string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a partconv project",
		Long: `Initialize a partconv project with a partconv.yaml configuration file
holding the source root, target root, and field delimiter.`,
		Example: `  # Interactive mode
  partconv init

  # Non-interactive
  partconv init --source /data/raw --target /data/json --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source root directory")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Target root directory")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "Field delimiter (default \",\")")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --source and --target)")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.source == "" || opts.target == "" {
			return errors.New("non-interactive mode requires --source and --target")
		}
	} else {
		if err := prompts.RunInitForm(&opts.source, &opts.target, &opts.delimiter); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:    config.CurrentConfigVersion,
		SourceRoot: opts.source,
		TargetRoot: opts.target,
		Delimiter:  opts.delimiter,
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Source", Value: cfg.SourceRoot},
		{Label: "Target", Value: cfg.TargetRoot},
	}, "Project initialized")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dacolabs/partconv/internal/config"
	"github.com/dacolabs/partconv/internal/convert"
	"github.com/dacolabs/partconv/internal/partition"
	"github.com/dacolabs/partconv/internal/prompts"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	source      string
	target      string
	datasets    string
	delimiter   string
	interactive bool
}

func registerConvertCmd(parent *cobra.Command, log *slog.Logger, getenv func(string) string) {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert partition files to JSON Lines using the dataset schema",
		Long: `Convert headerless delimited partition files to JSON Lines.

Column names and their order come from schemas.json under the source root.
Each partition file <source>/<dataset>/part-* produces one output file
<target>/<dataset>/<partition>.json with one JSON object per row.`,
		Example: `  # Convert every dataset discovered under the source root
  partconv convert

  # Convert specific datasets
  partconv convert --dataset orders,customers

  # Pick datasets interactively
  partconv convert --select

  # Override roots configured in partconv.yaml or the environment
  partconv convert --source /data/raw --target /data/json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(log, getenv, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source root ($"+config.EnvSourceRoot+")")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Target root ($"+config.EnvTargetRoot+")")
	cmd.Flags().StringVarP(&opts.datasets, "dataset", "d", "", "Dataset name(s), comma-separated (default: discover all)")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "Field delimiter (default \",\")")
	cmd.Flags().BoolVar(&opts.interactive, "select", false, "Select datasets interactively from the discovered set")

	parent.AddCommand(cmd)
}

func runConvert(log *slog.Logger, getenv func(string) string, opts *convertOptions) error {
	if opts.interactive && opts.datasets != "" {
		return fmt.Errorf("--select and --dataset are mutually exclusive")
	}

	cfg, err := loadProjectConfig(opts.source, opts.target)
	if err != nil {
		return err
	}
	if err := cfg.Resolve(getenv); err != nil {
		log.Error("configuration incomplete", "error", err)
		return err
	}

	datasets := cfg.Datasets
	if opts.datasets != "" {
		datasets = nil
		for _, n := range strings.Split(opts.datasets, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			datasets = append(datasets, n)
		}
	}

	if opts.interactive {
		discovered, err := partition.Discover(cfg.SourceRoot)
		if err != nil {
			return err
		}
		datasets = nil
		if err := prompts.RunDatasetMultiSelect(discovered, &datasets); err != nil {
			return err
		}
	}

	delimStr := opts.delimiter
	if delimStr == "" {
		delimStr = cfg.Delimiter
	}
	delim, err := delimiterRune(delimStr)
	if err != nil {
		return err
	}

	runner := &convert.Runner{
		SourceRoot: cfg.SourceRoot,
		TargetRoot: cfg.TargetRoot,
		Delimiter:  delim,
		Log:        log,
	}
	if err := runner.Run(datasets); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Source", Value: cfg.SourceRoot},
		{Label: "Target", Value: cfg.TargetRoot},
		{Label: "Datasets", Value: datasetsDisplay(datasets)},
	}, "Conversion complete")
	return nil
}

func datasetsDisplay(datasets []string) string {
	if len(datasets) == 0 {
		return "all (discovered)"
	}
	return strings.Join(datasets, ", ") + " (" + strconv.Itoa(len(datasets)) + ")"
}

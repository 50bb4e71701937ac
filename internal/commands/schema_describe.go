// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dacolabs/partconv/internal/prompts"
	"github.com/dacolabs/partconv/internal/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type schemaDescribeOptions struct {
	source string
	output string
}

func newSchemaDescribeCmd(getenv func(string) string) *cobra.Command {
	opts := &schemaDescribeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [DATASET]",
		Short: "Show the resolved column order for a dataset",
		Long: `Display the column names of a dataset in output order, as resolved from
the schema document. If no dataset name is provided, an interactive
selection prompt is shown.`,
		Example: `  # Interactive selection
  partconv schema describe

  # Show column order for a dataset
  partconv schema describe orders

  # Show as JSON
  partconv schema describe orders -o json

  # Show as YAML
  partconv schema describe orders -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dataset string
			if len(args) > 0 {
				dataset = args[0]
			}
			return runSchemaDescribe(getenv, dataset, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source root ($SRC_BASE_DIR)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSchemaDescribe(getenv func(string) string, dataset string, opts *schemaDescribeOptions) error {
	cfg, err := loadProjectConfig(opts.source, "")
	if err != nil {
		return err
	}
	if err := cfg.ResolveSource(getenv); err != nil {
		return err
	}

	sch, err := schema.Load(cfg.SourceRoot)
	if err != nil {
		return err
	}

	if dataset == "" {
		names := sch.Datasets()
		if len(names) == 0 {
			return fmt.Errorf("no datasets defined in %s", schema.FileName)
		}
		if err := prompts.RunDatasetSelect("Select dataset to describe", names, &dataset); err != nil {
			return err
		}
	}

	columns, err := schema.Columns(sch, dataset, schema.DefaultSortKey)
	if err != nil {
		return err
	}

	switch opts.output {
	case "json":
		data, err := json.MarshalIndent(columns, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(columns)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "#\tCOLUMN")
		for i, col := range columns {
			_, _ = fmt.Fprintf(w, "%d\t%s\n", i, col)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format %q (text, json, yaml)", opts.output)
	}
	return nil
}

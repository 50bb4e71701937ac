// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dacolabs/partconv/internal/partition"
	"github.com/dacolabs/partconv/internal/schema"
	"github.com/spf13/cobra"
)

type datasetsListOptions struct {
	source string
}

func newDatasetsListCmd(getenv func(string) string) *cobra.Command {
	opts := &datasetsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets that hold partition files",
		Long: `List every dataset under the source root that holds at least one
partition file, with its partition count and whether the schema document
defines it.`,
		Example: `  # List datasets
  partconv datasets list

  # List datasets under an explicit source root
  partconv datasets list --source /data/raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetsList(getenv, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source root ($SRC_BASE_DIR)")

	return cmd
}

func runDatasetsList(getenv func(string) string, opts *datasetsListOptions) error {
	cfg, err := loadProjectConfig(opts.source, "")
	if err != nil {
		return err
	}
	if err := cfg.ResolveSource(getenv); err != nil {
		return err
	}

	datasets, err := partition.Discover(cfg.SourceRoot)
	if err != nil {
		return err
	}

	// The schema document is optional here; datasets are listed either way.
	sch, err := schema.Load(cfg.SourceRoot)
	if err != nil && !errors.Is(err, schema.ErrNotFound) {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPARTITIONS\tIN SCHEMA")

	for _, name := range datasets {
		parts, err := partition.Find(cfg.SourceRoot, name)
		if err != nil {
			return err
		}

		inSchema := "no"
		if _, ok := sch[name]; ok {
			inSchema = "yes"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, strconv.Itoa(len(parts)), inSchema)
	}

	return w.Flush()
}

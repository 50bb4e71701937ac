// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package convert implements the partition-to-JSON-Lines conversion
// pipeline: parse headerless delimited partition files against a resolved
// column order and emit one JSON Lines file per partition.
package convert

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dacolabs/partconv/internal/partition"
	"github.com/dacolabs/partconv/internal/schema"
)

// DefaultDelimiter separates fields in partition files unless configured
// otherwise.
const DefaultDelimiter = ','

// Runner executes the conversion pipeline for one run. Datasets and their
// partitions are processed sequentially; the first fatal error aborts the
// run, while per-partition write failures are logged and skipped.
type Runner struct {
	SourceRoot string
	TargetRoot string
	Delimiter  rune
	Log        *slog.Logger
}

// Run converts the given datasets. When datasets is empty, every dataset
// holding partitions under the source root is converted.
func (r *Runner) Run(datasets []string) error {
	log := r.logger()

	if len(datasets) == 0 {
		log.Warn("no dataset names supplied, discovering datasets", "source", r.SourceRoot)
		discovered, err := partition.Discover(r.SourceRoot)
		if err != nil {
			log.Error("dataset discovery failed", "source", r.SourceRoot, "error", err)
			return err
		}
		datasets = discovered
	}
	log.Info("converting datasets", "datasets", datasets)

	sch, err := schema.Load(r.SourceRoot)
	if err != nil {
		log.Error("schema load failed", "source", r.SourceRoot, "error", err)
		return err
	}
	log.Info("schema loaded", "path", filepath.Join(r.SourceRoot, schema.FileName))

	for _, dataset := range datasets {
		if err := r.convertDataset(sch, dataset); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) convertDataset(sch schema.Schema, dataset string) error {
	log := r.logger().With("dataset", dataset)

	columns, err := schema.Columns(sch, dataset, schema.DefaultSortKey)
	if err != nil {
		log.Error("column resolution failed", "error", err)
		return err
	}
	log.Info("columns resolved", "columns", columns)

	partitions, err := partition.Find(r.SourceRoot, dataset)
	if err != nil {
		log.Error("partition lookup failed", "error", err)
		return err
	}

	for _, part := range partitions {
		records, err := ParseFile(part, columns, r.delimiter())
		if err != nil {
			log.Error("partition parse failed", "partition", part, "error", err)
			return err
		}

		res, err := WriteRecords(records, r.TargetRoot, dataset, part)
		if err != nil {
			log.Error("partition write failed", "partition", part, "error", err)
			return err
		}
		if !res.OK {
			log.Error("partition write failed", "partition", part, "error", res.Err)
			continue
		}
		log.Info("partition converted", "partition", part, "target", res.Path, "records", res.Records)
	}
	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *Runner) delimiter() rune {
	if r.Delimiter == 0 {
		return DefaultDelimiter
	}
	return r.Delimiter
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema loads the dataset schema document and resolves the
// ordered column names for a dataset.
package schema

import (
	"errors"
	"fmt"
	"sort"
)

// Keys every column entry must carry. Entries may carry additional keys;
// they are ignored.
const (
	NameKey        = "column_name"
	DefaultSortKey = "column_position"
)

var (
	// ErrUnknownDataset indicates the dataset has no entry in the schema document.
	ErrUnknownDataset = errors.New("dataset not present in schema")

	// ErrMalformedColumn indicates a column entry lacks the name or sort key.
	ErrMalformedColumn = errors.New("malformed column entry")
)

// Schema maps a dataset name to its column entries, in document order.
type Schema map[string][]ColumnEntry

// ColumnEntry is one column descriptor as loaded from the schema document.
type ColumnEntry map[string]any

// Datasets returns the dataset names defined in the schema, sorted.
func (s Schema) Datasets() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns returns the column names for a dataset sorted ascending by
// sortKey. The sort is stable: entries with equal sort values keep their
// document order. Positions need not be contiguous, only ordered.
func Columns(s Schema, dataset, sortKey string) ([]string, error) {
	entries, ok := s[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, dataset)
	}

	type keyedColumn struct {
		name string
		pos  float64
	}

	keyed := make([]keyedColumn, len(entries))
	for i, entry := range entries {
		name, err := columnName(entry)
		if err != nil {
			return nil, fmt.Errorf("dataset %q, entry %d: %w", dataset, i, err)
		}
		pos, err := sortValue(entry, sortKey)
		if err != nil {
			return nil, fmt.Errorf("dataset %q, entry %d: %w", dataset, i, err)
		}
		keyed[i] = keyedColumn{name: name, pos: pos}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].pos < keyed[j].pos
	})

	columns := make([]string, len(keyed))
	for i, k := range keyed {
		columns[i] = k.name
	}
	return columns, nil
}

func columnName(entry ColumnEntry) (string, error) {
	v, ok := entry[NameKey]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedColumn, NameKey)
	}
	name, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrMalformedColumn, NameKey)
	}
	return name, nil
}

func sortValue(entry ColumnEntry, sortKey string) (float64, error) {
	v, ok := entry[sortKey]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformedColumn, sortKey)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %q is not numeric", ErrMalformedColumn, sortKey)
	}
}

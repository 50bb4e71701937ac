// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package partition discovers datasets and their partition files under a
// source root laid out as <sourceRoot>/<dataset>/part-*.
package partition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// filePattern matches partition files within a dataset directory.
const filePattern = "part-*"

var (
	// ErrNoPartitions indicates a dataset directory holds no partition files.
	ErrNoPartitions = errors.New("no partition files found")

	// ErrNoDatasets indicates no dataset under the source root holds partition files.
	ErrNoDatasets = errors.New("no datasets found")
)

// Find returns the partition files under <sourceRoot>/<dataset>, sorted
// lexicographically. An empty match set is an error, never an empty success.
func Find(sourceRoot, dataset string) ([]string, error) {
	pattern := filepath.Join(sourceRoot, dataset, filePattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			files = append(files, m)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: pattern %s", ErrNoPartitions, pattern)
	}

	sort.Strings(files)
	return files, nil
}

// Discover returns the names of all datasets that hold at least one
// partition file under the source root, deduplicated and sorted.
func Discover(sourceRoot string) ([]string, error) {
	pattern := filepath.Join(sourceRoot, "*", filePattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		name := filepath.Base(filepath.Dir(m))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: pattern %s", ErrNoDatasets, pattern)
	}

	sort.Strings(names)
	return names, nil
}

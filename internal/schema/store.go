// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the schema document under the source root.
const FileName = "schemas.json"

var (
	// ErrNotFound indicates the schema document does not exist.
	ErrNotFound = errors.New("schema document not found")

	// ErrMalformed indicates the schema document could not be parsed.
	ErrMalformed = errors.New("schema document is not valid JSON")
)

// Load reads the schema document at <sourceRoot>/schemas.json.
// It is read once per run; the returned Schema is never mutated.
func Load(sourceRoot string) (Schema, error) {
	path := filepath.Join(sourceRoot, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return s, nil
}

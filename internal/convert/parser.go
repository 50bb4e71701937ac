// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// RowError reports an unrecoverable parse failure at a specific row of a
// partition file. It is fatal for the whole partition.
type RowError struct {
	Path string
	Row  int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ParseFile reads a headerless delimited partition file and binds the i-th
// field of each row to the i-th column name. Rows may carry fewer or more
// fields than columns; see NewRecord for the binding policy.
func ParseFile(path string, columns []string, delimiter rune) ([]Record, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from partition discovery
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1

	var records []Record
	row := 0
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := row + 1
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &RowError{Path: path, Row: line, Err: err}
		}
		row++
		records = append(records, NewRecord(columns, fields))
	}
	return records, nil
}

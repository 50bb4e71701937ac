// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// WriteResult reports the outcome of writing one partition's records.
// OK is false for I/O failures the caller should log and skip; Err holds
// the cause in that case.
type WriteResult struct {
	Path    string
	Records int
	OK      bool
	Err     error
}

// TargetPath computes the output path for a partition file:
// <targetRoot>/<dataset>/<partition base name without extension>.json.
func TargetPath(targetRoot, dataset, partition string) string {
	base := filepath.Base(partition)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(targetRoot, dataset, base+".json")
}

// WriteRecords serializes records as JSON Lines to the target path,
// creating the dataset directory when needed and overwriting any file left
// by a prior run. Storage-level failures are soft: they come back in the
// result rather than as an error, so the caller can continue with the
// next partition. Serialization failures propagate.
func WriteRecords(records []Record, targetRoot, dataset, partition string) (WriteResult, error) {
	res := WriteResult{Path: TargetPath(targetRoot, dataset, partition)}

	var buf bytes.Buffer
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return res, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(res.Path), 0o750); err != nil {
		res.Err = err
		return res, nil
	}
	if err := os.WriteFile(res.Path, buf.Bytes(), 0o600); err != nil {
		res.Err = err
		return res, nil
	}

	res.Records = len(records)
	res.OK = true
	return res, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/partconv/internal/partition"
	"github.com/dacolabs/partconv/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesSchema = `{
	"sales": [
		{"column_name": "id", "column_position": 0},
		{"column_name": "name", "column_position": 1},
		{"column_name": "price", "column_position": 2}
	]
}`

func writeSourceFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newSalesSource(t *testing.T) string {
	t.Helper()
	source := t.TempDir()
	writeSourceFile(t, filepath.Join(source, schema.FileName), salesSchema)
	writeSourceFile(t, filepath.Join(source, "sales", "part-001"), "1,Widget,9.99\n2,Gadget,19.99\n")
	return source
}

func TestRunner_DiscoversAndConverts(t *testing.T) {
	source := newSalesSource(t)
	target := t.TempDir()

	runner := &Runner{SourceRoot: source, TargetRoot: target}
	require.NoError(t, runner.Run(nil))

	content, err := os.ReadFile(filepath.Join(target, "sales", "part-001.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":"1","name":"Widget","price":"9.99"}`+"\n"+
			`{"id":"2","name":"Gadget","price":"19.99"}`+"\n",
		string(content))
}

func TestRunner_IdempotentReruns(t *testing.T) {
	source := newSalesSource(t)
	target := t.TempDir()

	runner := &Runner{SourceRoot: source, TargetRoot: target}
	require.NoError(t, runner.Run([]string{"sales"}))

	outPath := filepath.Join(target, "sales", "part-001.json")
	first, err := os.ReadFile(outPath) //nolint:gosec // test file path
	require.NoError(t, err)

	require.NoError(t, runner.Run([]string{"sales"}))
	second, err := os.ReadFile(outPath) //nolint:gosec // test file path
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunner_MissingSchemaAbortsBeforeWriting(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	writeSourceFile(t, filepath.Join(source, "sales", "part-001"), "1,Widget,9.99\n")

	runner := &Runner{SourceRoot: source, TargetRoot: target}
	err := runner.Run(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrNotFound)

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_UnknownDatasetAbortsRun(t *testing.T) {
	source := newSalesSource(t)
	target := t.TempDir()
	writeSourceFile(t, filepath.Join(source, "returns", "part-001"), "1\n")

	runner := &Runner{SourceRoot: source, TargetRoot: target}
	err := runner.Run([]string{"returns", "sales"})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnknownDataset)

	// The run aborts on the first fatal error; sales is never reached.
	_, statErr := os.Stat(filepath.Join(target, "sales", "part-001.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_NoPartitionsAbortsRun(t *testing.T) {
	source := t.TempDir()
	writeSourceFile(t, filepath.Join(source, schema.FileName), salesSchema)
	require.NoError(t, os.MkdirAll(filepath.Join(source, "sales"), 0o750))

	runner := &Runner{SourceRoot: source, TargetRoot: t.TempDir()}
	err := runner.Run([]string{"sales"})
	require.Error(t, err)
	assert.ErrorIs(t, err, partition.ErrNoPartitions)
}

func TestRunner_ParseFailureAbortsRun(t *testing.T) {
	source := newSalesSource(t)
	writeSourceFile(t, filepath.Join(source, "sales", "part-000"), "1,Gad\"get,9.99\n")

	runner := &Runner{SourceRoot: source, TargetRoot: t.TempDir()}
	err := runner.Run([]string{"sales"})
	require.Error(t, err)

	var rowErr *RowError
	assert.ErrorAs(t, err, &rowErr)
}

func TestRunner_SoftWriteFailureContinues(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	writeSourceFile(t, filepath.Join(source, schema.FileName), `{
		"blocked": [{"column_name": "id", "column_position": 0}],
		"sales": [
			{"column_name": "id", "column_position": 0},
			{"column_name": "name", "column_position": 1},
			{"column_name": "price", "column_position": 2}
		]
	}`)
	writeSourceFile(t, filepath.Join(source, "blocked", "part-001"), "1\n")
	writeSourceFile(t, filepath.Join(source, "sales", "part-001"), "1,Widget,9.99\n")

	// A regular file at the blocked dataset's target directory forces a
	// soft write failure for its partition.
	require.NoError(t, os.WriteFile(filepath.Join(target, "blocked"), []byte("in the way"), 0o600))

	runner := &Runner{SourceRoot: source, TargetRoot: target}
	require.NoError(t, runner.Run([]string{"blocked", "sales"}))

	// The blocked partition is skipped; the run still converts sales.
	_, err := os.Stat(filepath.Join(target, "sales", "part-001.json"))
	assert.NoError(t, err)
}

func TestRunner_CustomDelimiter(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	writeSourceFile(t, filepath.Join(source, schema.FileName), salesSchema)
	writeSourceFile(t, filepath.Join(source, "sales", "part-001"), "1|Widget|9.99\n")

	runner := &Runner{SourceRoot: source, TargetRoot: target, Delimiter: '|'}
	require.NoError(t, runner.Run([]string{"sales"}))

	content, err := os.ReadFile(filepath.Join(target, "sales", "part-001.json")) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1","name":"Widget","price":"9.99"}`+"\n", string(content))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePartition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part-00000")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func marshalRecords(t *testing.T, records []Record) []string {
	t.Helper()
	lines := make([]string, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		require.NoError(t, err)
		lines[i] = string(data)
	}
	return lines
}

func TestParseFile(t *testing.T) {
	path := writePartition(t, "1,Widget,9.99\n2,Gadget,19.99\n")

	records, err := ParseFile(path, []string{"id", "name", "price"}, ',')
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		`{"id":"1","name":"Widget","price":"9.99"}`,
		`{"id":"2","name":"Gadget","price":"19.99"}`,
	}, marshalRecords(t, records))
}

func TestParseFile_ShortRowPadsNull(t *testing.T) {
	path := writePartition(t, "1,Widget\n")

	records, err := ParseFile(path, []string{"id", "name", "price"}, ',')
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, `{"id":"1","name":"Widget","price":null}`, marshalRecords(t, records)[0])
}

func TestParseFile_LongRowDropsExcess(t *testing.T) {
	path := writePartition(t, "1,Widget,9.99,leftover\n")

	records, err := ParseFile(path, []string{"id", "name", "price"}, ',')
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, `{"id":"1","name":"Widget","price":"9.99"}`, marshalRecords(t, records)[0])
}

func TestParseFile_QuotedFields(t *testing.T) {
	path := writePartition(t, "1,\"Widget, large\",9.99\n")

	records, err := ParseFile(path, []string{"id", "name", "price"}, ',')
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1","name":"Widget, large","price":"9.99"}`, marshalRecords(t, records)[0])
}

func TestParseFile_CustomDelimiter(t *testing.T) {
	path := writePartition(t, "1|Widget|9.99\n")

	records, err := ParseFile(path, []string{"id", "name", "price"}, '|')
	require.NoError(t, err)

	assert.Equal(t, `{"id":"1","name":"Widget","price":"9.99"}`, marshalRecords(t, records)[0])
}

func TestParseFile_BareQuote(t *testing.T) {
	path := writePartition(t, "1,Widget,9.99\n2,Gad\"get,19.99\n")

	_, err := ParseFile(path, []string{"id", "name", "price"}, ',')
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, path, rowErr.Path)
	assert.Equal(t, 2, rowErr.Row)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "part-nope"), []string{"id"}, ',')
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package convert

import (
	"bytes"
	"encoding/json"
)

// Record is one parsed row bound to column names in schema order.
type Record struct {
	columns []string
	values  []*string
}

// NewRecord binds raw fields to columns positionally. A row with fewer
// fields than columns leaves the trailing columns null; excess fields
// are dropped.
func NewRecord(columns []string, fields []string) Record {
	values := make([]*string, len(columns))
	for i := range columns {
		if i < len(fields) {
			v := fields[i]
			values[i] = &v
		}
	}
	return Record{columns: columns, values: values}
}

// Len returns the number of columns bound in the record.
func (r Record) Len() int {
	return len(r.columns)
}

// MarshalJSON writes the record as a single JSON object whose key order
// matches the resolved column order. Null stands for a missing field.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if r.values[i] == nil {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(*r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

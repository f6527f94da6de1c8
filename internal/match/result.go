package match

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the normalized output of one (template, raw text) parse: an
// ordered field header and zero or more uniform rows. Field sets are fixed
// at construction; every row carries one cell per header field.
type Result struct {
	Header []string
	Rows   [][]string
}

// NewResult builds a Result, verifying each row matches the header width.
func NewResult(header []string, rows [][]string) (*Result, error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d fields", i, len(row), len(header))
		}
	}
	return &Result{Header: header, Rows: rows}, nil
}

// RecordCount returns the number of parsed records.
func (r *Result) RecordCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// FieldCount returns the number of fields per record.
func (r *Result) FieldCount() int {
	if r == nil {
		return 0
	}
	return len(r.Header)
}

// MarshalJSON renders the rows as an array of objects with fields emitted
// in header order, keeping output artifacts byte-stable across runs.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range r.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, field := range r.Header {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}
			value, err := json.Marshal(row[j])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Outcome is the best (template, parse, score) triple for one text against
// one filter. A zero Outcome means no candidate parsed successfully.
type Outcome struct {
	Template string
	Result   *Result
	Score    float64
}

// Matched reports whether any candidate produced a scored parse.
func (o Outcome) Matched() bool {
	return o.Result != nil
}

package match

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sirikothe/gotextfsm"
)

// Engine parses raw text against one template definition. Implementations
// must treat any single-template failure as an error return, never a fatal
// condition; the matcher skips failing candidates.
type Engine interface {
	Parse(definition, raw string) (*Result, error)
}

// TextFSMEngine adapts the gotextfsm parser to the Engine boundary.
type TextFSMEngine struct{}

// NewTextFSMEngine returns the production parsing engine.
func NewTextFSMEngine() *TextFSMEngine {
	return &TextFSMEngine{}
}

// valueNamePattern extracts the field name from a TextFSM Value line:
// "Value [option[,option]] NAME (regex)".
var valueNamePattern = regexp.MustCompile(`^Value(?:\s+[A-Za-z][A-Za-z,]*)?\s+(\w+)\s+\(`)

// Parse runs the template against raw text. Malformed templates and parse
// errors surface as errors; panics inside the parser are contained, since
// corpus templates are untrusted input to this tool.
func (e *TextFSMEngine) Parse(definition, raw string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("textfsm: recovered from panic: %v", r)
		}
	}()

	fsm := gotextfsm.TextFSM{}
	if err := fsm.ParseString(definition); err != nil {
		return nil, fmt.Errorf("textfsm: parse template: %w", err)
	}

	parser := gotextfsm.ParserOutput{}
	if err := parser.ParseTextString(raw, fsm, true); err != nil {
		return nil, fmt.Errorf("textfsm: parse text: %w", err)
	}

	header := declaredHeader(definition, parser.Dict)
	rows := make([][]string, 0, len(parser.Dict))
	for _, record := range parser.Dict {
		row := make([]string, len(header))
		for i, field := range header {
			row[i] = cellString(record[field])
		}
		rows = append(rows, row)
	}
	return &Result{Header: header, Rows: rows}, nil
}

// declaredHeader recovers field order from the template's Value lines,
// which gotextfsm does not preserve in its record maps. Fields that never
// appear in a parsed record are kept; names the scan misses fall back to
// sorted record keys so the header always covers every record.
func declaredHeader(definition string, records []map[string]interface{}) []string {
	var header []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(definition, "\n") {
		m := valueNamePattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		if !seen[m[1]] {
			seen[m[1]] = true
			header = append(header, m[1])
		}
	}

	if len(records) > 0 {
		var missing []string
		for field := range records[0] {
			if !seen[field] {
				missing = append(missing, field)
			}
		}
		sort.Strings(missing)
		header = append(header, missing...)
	}
	return header
}

// cellString flattens a parsed value to a scalar. List-typed TextFSM
// values arrive as string slices and are joined for scoring and output.
func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

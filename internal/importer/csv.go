package importer

import (
	"encoding/json"
	"strings"
)

// Row is one parsed CSV data row, keyed by header column name. Cell values
// are strings, []string (pipe-split list columns), or decoded JSON values.
type Row map[string]interface{}

// listColumns are split on '|' when their cell does not parse as JSON.
var listColumns = map[string]bool{
	"options":         true,
	"correct_answers": true,
	"tags":            true,
}

// ParseCSV parses the flat quiz table format: first non-empty line is the
// header, each following non-empty line is a data row. Rows whose field count
// does not match the header are silently dropped.
//
// There is no quote or escape handling: a literal comma inside a field is not
// supported. This is a known limitation of the format, kept so that existing
// documents import identically.
func ParseCSV(text string) []Row {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	header := strings.Split(lines[0], ",")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(header) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = parseCell(name, fields[i])
		}
		rows = append(rows, row)
	}
	return rows
}

// parseCell applies the per-cell policy: JSON detection first for cells that
// look like objects or arrays (falling back to the raw string on parse
// failure), then pipe-splitting for the list columns, then the trimmed
// literal.
func parseCell(column, raw string) interface{} {
	value := strings.TrimSpace(raw)

	if strings.HasPrefix(value, "{") || strings.HasPrefix(value, "[") {
		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			return decoded
		}
		// Fall through: a JSON-looking cell that fails to parse is kept
		// as its raw string, never an error.
	}

	if listColumns[column] {
		return splitList(value)
	}

	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// ===== CELL ACCESSORS =====

func (r Row) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

// strs returns a cell as a string list, accepting both the pipe-split form
// and a JSON array.
func (r Row) strs(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return splitList(v)
	default:
		return nil
	}
}

func (r Row) object(key string) map[string]interface{} {
	if v, ok := r[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func (r Row) has(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return true
	}
}

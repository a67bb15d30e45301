package dictionary

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ext is the extension of all dictionary input files.
const ext = ".yaml"

// Record is a raw structured record as decoded from a YAML mapping. The
// Parse* factories accept Records so that callers can construct entities
// from any source, not only from files.
type Record map[string]any

// str returns the value under key rendered as a string, or "" when the key
// is absent or null. Non-string scalars (an id written as a bare number)
// are rendered with their YAML scalar form.
func (r Record) str(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// strDefault returns the string under key, or def when absent.
func (r Record) strDefault(key, def string) string {
	if _, ok := r[key]; !ok {
		return def
	}
	return r.str(key)
}

// flag returns the boolean under key, false when absent or not a bool.
func (r Record) flag(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// intVal returns the integer under key. The second return is false when the
// key is absent or the value cannot be converted to an integer.
func (r Record) intVal(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// attrs returns the open attribute map under key, or an empty map when
// absent. Attribute maps are schema-less by design; their consumers are
// external code generators.
func (r Record) attrs(key string) map[string]any {
	if m, ok := r[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// recordList returns the list of child records under key. Absent keys yield
// nil. List elements that are not mappings decode to empty Records, which
// the per-record factories then reject for their missing required fields.
func (r Record) recordList(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	recs := make([]Record, len(raw))
	for i, item := range raw {
		if m, ok := item.(map[string]any); ok {
			recs[i] = Record(m)
		} else {
			recs[i] = Record{}
		}
	}
	return recs
}

// readRecord reads a single YAML mapping from path. Errors are returned raw;
// callers wrap them in a LoadError with path context.
func readRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// readRecordList reads an ordered list of YAML mappings from path. Errors
// are returned raw; callers wrap them in a LoadError with path context.
func readRecordList(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	recs := make([]Record, len(raw))
	for i, item := range raw {
		if m, ok := item.(map[string]any); ok {
			recs[i] = Record(m)
		} else {
			recs[i] = Record{}
		}
	}
	return recs, nil
}

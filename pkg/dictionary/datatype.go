package dictionary

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Data type semantics values conventionally used by dictionaries. Semantics
// is not enforced at load time; any string is accepted.
const (
	SemanticsValue     = "value"
	SemanticsReference = "reference"
)

// DataType is a reusable primitive or compound type descriptor. Attributes
// is an open, schema-less map consumed by downstream code generators.
type DataType struct {
	ID          string
	Name        string
	Description string
	Semantics   string
	Attributes  map[string]any
	Deprecated  bool

	dictionary *Dictionary
}

// Dictionary returns the dictionary this data type belongs to, nil when
// constructed standalone.
func (t *DataType) Dictionary() *Dictionary { return t.dictionary }

// ParseDataType builds a DataType from a raw record. dict may be nil.
// Semantics defaults to "value" and attributes to an empty map.
func ParseDataType(dict *Dictionary, rec Record) (*DataType, error) {
	slog.Debug("loading data type", "id", rec.str("id"))
	t := &DataType{dictionary: dict}
	t.ID = rec.str("id")
	if t.ID == "" {
		return nil, loadErrorf("missing id in data type")
	}
	t.Name = rec.str("name")
	if t.Name == "" {
		return nil, loadErrorf("missing name in data type %s", t.ID)
	}
	t.Description = rec.str("description")
	t.Semantics = rec.strDefault("semantics", SemanticsValue)
	t.Attributes = rec.attrs("attributes")
	t.Deprecated = rec.flag("deprecated")
	return t, nil
}

// LoadDataTypes reads an ordered list of data type records from a YAML file.
// For each type, a sibling data-type-attributes/<id>.yaml file, when
// present, fully replaces the type's inline attributes. Absence of the
// sibling file is not an error.
func LoadDataTypes(dict *Dictionary, path string) ([]*DataType, error) {
	slog.Debug("loading data types", "path", path)
	recs, err := readRecordList(path)
	if err != nil {
		return nil, &LoadError{Message: "error reading data type file", Path: path, Err: err}
	}
	types := make([]*DataType, 0, len(recs))
	for _, rec := range recs {
		t, err := ParseDataType(dict, rec)
		if err != nil {
			return nil, err
		}
		attrPath := filepath.Join(filepath.Dir(path), "data-type-attributes", t.ID+ext)
		if _, err := os.Stat(attrPath); err == nil {
			slog.Debug("loading data type attributes", "id", t.ID, "path", attrPath)
			attrs, err := readRecord(attrPath)
			if err != nil {
				return nil, &LoadError{Message: "error reading data type attributes file", Path: attrPath, Err: err}
			}
			t.Attributes = attrs
		}
		types = append(types, t)
	}
	return types, nil
}

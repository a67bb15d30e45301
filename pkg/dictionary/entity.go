package dictionary

import (
	"log/slog"
	"path/filepath"
)

// Entity is a record type definition owning an ordered collection of
// Properties, looked up by property id.
type Entity struct {
	ID          string
	Name        string
	Description string
	Properties  []*Property
	Attributes  map[string]any
	Deprecated  bool

	dictionary     *Dictionary
	propertiesByID map[string]*Property
}

// Dictionary returns the dictionary this entity belongs to, nil when
// constructed standalone.
func (e *Entity) Dictionary() *Dictionary { return e.dictionary }

// PropertyByID returns the property with the given id, or nil when the
// entity has no such property. Unlike Enumeration.ValueForID, an unknown id
// is not an error.
func (e *Entity) PropertyByID(id string) *Property {
	return e.propertiesByID[id]
}

// indexProperties rebuilds the id lookup table from Properties. Duplicate
// property ids are not rejected; the last occurrence wins.
func (e *Entity) indexProperties() {
	e.propertiesByID = make(map[string]*Property, len(e.Properties))
	for _, p := range e.Properties {
		e.propertiesByID[p.ID] = p
	}
}

// ParseEntity builds an Entity from a raw record. dict may be nil. An
// inline properties list, when present, is parsed immediately and indexed.
func ParseEntity(dict *Dictionary, rec Record) (*Entity, error) {
	slog.Debug("loading entity", "id", rec.str("id"))
	e := &Entity{dictionary: dict}
	e.ID = rec.str("id")
	if e.ID == "" {
		return nil, loadErrorf("missing id in entity")
	}
	e.Name = rec.str("name")
	if e.Name == "" {
		return nil, loadErrorf("missing name in entity %s", e.ID)
	}
	e.Description = rec.str("description")
	for _, prec := range rec.recordList("properties") {
		p, err := ParseProperty(e, prec)
		if err != nil {
			return nil, err
		}
		e.Properties = append(e.Properties, p)
	}
	e.indexProperties()
	e.Attributes = rec.attrs("attributes")
	e.Deprecated = rec.flag("deprecated")
	return e, nil
}

// LoadEntities reads an ordered list of entity records from a YAML file.
// Every entity must have a sibling properties-by-entity/<id>.yaml file; its
// contents replace any inline properties already parsed, and its absence is
// a loading failure, not a fallback to the inline data.
func LoadEntities(dict *Dictionary, path string) ([]*Entity, error) {
	slog.Debug("loading entities", "path", path)
	recs, err := readRecordList(path)
	if err != nil {
		return nil, &LoadError{Message: "error reading entity file", Path: path, Err: err}
	}
	entities := make([]*Entity, 0, len(recs))
	for _, rec := range recs {
		e, err := ParseEntity(dict, rec)
		if err != nil {
			return nil, err
		}
		propsPath := filepath.Join(filepath.Dir(path), "properties-by-entity", e.ID+ext)
		props, err := LoadProperties(e, propsPath)
		if err != nil {
			return nil, err
		}
		e.Properties = props
		e.indexProperties()
		entities = append(entities, e)
	}
	return entities, nil
}

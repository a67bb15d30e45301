package dictionary

import (
	"fmt"
	"log/slog"
)

// EnumerationValue is a single named, uniquely-numbered entry in an
// Enumeration.
type EnumerationValue struct {
	ID            string
	IntegralValue int
	Description   string
	Deprecated    bool

	enumeration *Enumeration
}

// Enumeration returns the enumeration this value belongs to, nil when the
// value was constructed standalone.
func (v *EnumerationValue) Enumeration() *Enumeration { return v.enumeration }

// Entity returns the entity this value belongs to, through its enumeration.
func (v *EnumerationValue) Entity() *Entity {
	if v.enumeration == nil {
		return nil
	}
	return v.enumeration.Entity()
}

// Dictionary returns the dictionary this value belongs to, through its
// enumeration and entity.
func (v *EnumerationValue) Dictionary() *Dictionary {
	if v.enumeration == nil {
		return nil
	}
	return v.enumeration.Dictionary()
}

// ParseEnumerationValue builds an EnumerationValue from a raw record.
// enum may be nil when constructing a value standalone. The record must
// carry a non-empty id and an integer-convertible integral_value.
func ParseEnumerationValue(enum *Enumeration, rec Record) (*EnumerationValue, error) {
	v := &EnumerationValue{enumeration: enum}
	v.ID = rec.str("id")
	if v.ID == "" {
		return nil, loadErrorf("missing id in enumeration value")
	}
	n, ok := rec.intVal("integral_value")
	if !ok {
		return nil, loadErrorf("invalid integral_value in enumeration value %s", v.ID)
	}
	v.IntegralValue = n
	v.Description = rec.str("description")
	v.Deprecated = rec.flag("deprecated")
	return v, nil
}

// Enumeration is a closed, ordered set of named, uniquely-numbered values
// with lookup by value id.
type Enumeration struct {
	ID          string
	Name        string
	Description string
	Values      []*EnumerationValue
	Deprecated  bool

	entity     *Entity
	valuesByID map[string]*EnumerationValue
}

// Entity returns the entity this enumeration belongs to, nil when
// constructed standalone.
func (e *Enumeration) Entity() *Entity { return e.entity }

// Dictionary returns the dictionary this enumeration belongs to, through
// its entity.
func (e *Enumeration) Dictionary() *Dictionary {
	if e.entity == nil {
		return nil
	}
	return e.entity.Dictionary()
}

// ValueForID returns the value with the given id. Unlike
// Entity.PropertyByID, an unknown id is a hard failure.
func (e *Enumeration) ValueForID(id string) (*EnumerationValue, error) {
	v, ok := e.valuesByID[id]
	if !ok {
		return nil, fmt.Errorf("no value with id %q in enumeration %s", id, e.ID)
	}
	return v, nil
}

// ParseEnumeration builds an Enumeration from a raw record. entity may be
// nil. All values are parsed first, in order; the duplicate-id and
// duplicate-integral-value checks run only after every value parsed.
func ParseEnumeration(entity *Entity, rec Record) (*Enumeration, error) {
	slog.Debug("loading enumeration", "id", rec.str("id"))
	e := &Enumeration{entity: entity}
	e.ID = rec.str("id")
	if e.ID == "" {
		return nil, loadErrorf("missing id in enumeration")
	}
	e.Name = rec.str("name")
	if e.Name == "" {
		return nil, loadErrorf("missing name in enumeration %s", e.ID)
	}
	e.Description = rec.str("description")
	e.Deprecated = rec.flag("deprecated")

	for _, vrec := range rec.recordList("values") {
		v, err := ParseEnumerationValue(e, vrec)
		if err != nil {
			return nil, err
		}
		e.Values = append(e.Values, v)
	}

	ids := make(map[string]struct{}, len(e.Values))
	integrals := make(map[int]struct{}, len(e.Values))
	for _, v := range e.Values {
		ids[v.ID] = struct{}{}
		integrals[v.IntegralValue] = struct{}{}
	}
	if len(ids) != len(e.Values) {
		return nil, validationErrorf("duplicate value ids in enumeration %s", e.ID)
	}
	if len(integrals) != len(e.Values) {
		return nil, validationErrorf("duplicate integral values in enumeration %s", e.ID)
	}

	e.valuesByID = make(map[string]*EnumerationValue, len(e.Values))
	for _, v := range e.Values {
		e.valuesByID[v.ID] = v
	}
	return e, nil
}

// LoadEnumerations reads an ordered list of enumeration records from a YAML
// file. File and parse failures are wrapped in a LoadError carrying the
// path; per-record failures propagate unchanged.
func LoadEnumerations(entity *Entity, path string) ([]*Enumeration, error) {
	slog.Debug("loading enumerations", "path", path)
	recs, err := readRecordList(path)
	if err != nil {
		return nil, &LoadError{Message: "error reading enumeration file", Path: path, Err: err}
	}
	enums := make([]*Enumeration, 0, len(recs))
	for _, rec := range recs {
		e, err := ParseEnumeration(entity, rec)
		if err != nil {
			return nil, err
		}
		enums = append(enums, e)
	}
	return enums, nil
}

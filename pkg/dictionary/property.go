package dictionary

import "log/slog"

// Property is a named, typed field belonging to an Entity. TypeID references
// a DataType by id; the reference is resolved lazily through the owning
// dictionary.
type Property struct {
	ID          string
	Name        string
	TypeID      string
	Description string
	Attributes  map[string]any
	Deprecated  bool

	entity *Entity
}

// Entity returns the entity this property belongs to, nil when constructed
// standalone.
func (p *Property) Entity() *Entity { return p.entity }

// Dictionary returns the dictionary this property belongs to, through its
// entity.
func (p *Property) Dictionary() *Dictionary {
	if p.entity == nil {
		return nil
	}
	return p.entity.Dictionary()
}

// DictionaryType resolves TypeID against the owning dictionary's data types.
// Returns nil when no owning entity or dictionary is set, or when the
// dictionary has no type with that id.
func (p *Property) DictionaryType() *DataType {
	d := p.Dictionary()
	if d == nil {
		return nil
	}
	return d.TypeByID(p.TypeID)
}

// ParseProperty builds a Property from a raw record. entity may be nil.
// The record must carry non-empty id, name and type fields.
func ParseProperty(entity *Entity, rec Record) (*Property, error) {
	slog.Debug("loading property", "id", rec.str("id"))
	p := &Property{entity: entity}
	p.ID = rec.str("id")
	if p.ID == "" {
		return nil, loadErrorf("missing id in property")
	}
	p.Name = rec.str("name")
	if p.Name == "" {
		return nil, loadErrorf("missing name in property %s", p.ID)
	}
	p.TypeID = rec.str("type")
	if p.TypeID == "" {
		return nil, loadErrorf("missing type in property %s", p.ID)
	}
	p.Description = rec.str("description")
	p.Attributes = rec.attrs("attributes")
	p.Deprecated = rec.flag("deprecated")
	return p, nil
}

// LoadProperties reads an ordered list of property records from a YAML file.
// File and parse failures are wrapped in a LoadError carrying the path;
// per-record failures propagate unchanged.
func LoadProperties(entity *Entity, path string) ([]*Property, error) {
	slog.Debug("loading properties", "path", path)
	recs, err := readRecordList(path)
	if err != nil {
		return nil, &LoadError{Message: "error reading property list file", Path: path, Err: err}
	}
	props := make([]*Property, 0, len(recs))
	for _, rec := range recs {
		p, err := ParseProperty(entity, rec)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

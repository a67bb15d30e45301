package dictionary

import (
	"log/slog"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// Version literals accepted in place of a semantic version.
const (
	VersionMaster      = "master"
	VersionDevelopment = "development"
)

// Rule is an aggregate-level validation rule run by Dictionary.Validate.
// Rules see the fully-loaded graph and return human-readable error strings.
type Rule func(*Dictionary) []string

// Dictionary is the root aggregate of shared type, entity, property and
// enumeration definitions bridging dialects.
type Dictionary struct {
	ID          string
	Name        string
	Description string
	Version     string
	DataTypes   []*DataType
	Entities    []*Entity
	Deprecated  bool

	// Rules are the cross-entity validation rules run by Validate. The
	// default set is empty; deeper consistency checks plug in here.
	Rules []Rule
}

// TypeByID returns the data type with the given id, or nil.
func (d *Dictionary) TypeByID(id string) *DataType {
	for _, t := range d.DataTypes {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EntityByID returns the entity with the given id, or nil.
func (d *Dictionary) EntityByID(id string) *Entity {
	for _, e := range d.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Validate runs the dictionary's aggregate validation rules and returns
// their findings in order. With no rules attached it returns no errors.
func (d *Dictionary) Validate() []string {
	var errs []string
	for _, rule := range d.Rules {
		errs = append(errs, rule(d)...)
	}
	return errs
}

// ParseDictionary builds a partial Dictionary (id, name, description,
// version, deprecated) from a raw record. Data types and entities are
// attached by Load. Version must be "master", "development" or a valid
// semantic version.
func ParseDictionary(rec Record) (*Dictionary, error) {
	slog.Debug("loading dictionary", "id", rec.str("id"))
	d := &Dictionary{}
	d.ID = rec.str("id")
	if d.ID == "" {
		return nil, loadErrorf("missing id in dictionary")
	}
	d.Name = rec.str("name")
	if d.Name == "" {
		return nil, loadErrorf("missing name in dictionary %s", d.ID)
	}
	d.Description = rec.str("description")
	d.Version = rec.str("version")
	if d.Version == "" {
		return nil, loadErrorf("missing version in dictionary %s", d.ID)
	}
	if d.Version != VersionMaster && d.Version != VersionDevelopment {
		if _, err := semver.StrictNewVersion(d.Version); err != nil {
			return nil, validationErrorf("version %s in dictionary %s is invalid", d.Version, d.ID)
		}
	}
	d.Deprecated = rec.flag("deprecated")
	return d, nil
}

// Load reads a full dictionary from the root file at path, then loads the
// data-types.yaml and entities.yaml siblings from the same directory. Any
// failure at any stage aborts the load with an error carrying the
// responsible path.
func Load(path string) (*Dictionary, error) {
	slog.Debug("loading dictionary", "path", path)
	rec, err := readRecord(path)
	if err != nil {
		return nil, &LoadError{Message: "error reading dictionary file", Path: path, Err: err}
	}
	d, err := ParseDictionary(rec)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	d.DataTypes, err = LoadDataTypes(d, filepath.Join(dir, "data-types"+ext))
	if err != nil {
		return nil, err
	}
	d.Entities, err = LoadEntities(d, filepath.Join(dir, "entities"+ext))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Package dictionary loads and validates a cross-dialect common dictionary:
// data types, entities, properties and enumerations described by a directory
// of YAML files. Loading produces an immutable in-memory object graph rooted
// at Dictionary, intended as input for downstream code generators and
// translation tools.
//
// The on-disk layout is fixed relative to the root dictionary file:
//
//	dictionary.yaml                    root record (id, name, version, ...)
//	data-types.yaml                    list of data type records
//	data-type-attributes/<id>.yaml     optional per-type attribute override
//	entities.yaml                      list of entity records
//	properties-by-entity/<id>.yaml     required per-entity property list
//
// Enumeration files are loaded independently of the main dictionary tree
// via LoadEnumerations.
//
// Failures fall into two kinds: LoadError (missing or unreadable file,
// malformed YAML, missing required field) and ValidationError (well-formed
// input violating a domain invariant such as duplicate enumeration values
// or an invalid version string).
package dictionary

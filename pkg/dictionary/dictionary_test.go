package dictionary

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/crossdialect/rosetta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionaryErrors(t *testing.T) {
	tests := []struct {
		name       string
		rec        Record
		want       string
		validation bool
	}{
		{"missing id", Record{"name": "n", "version": "0.0.1"}, "missing id in dictionary", false},
		{"missing name", Record{"id": "d", "version": "0.0.1"}, "missing name in dictionary d", false},
		{"missing version", Record{"id": "d", "name": "n"}, "missing version in dictionary d", false},
		{"bad version", Record{"id": "d", "name": "n", "version": "not-a-version"}, "version not-a-version in dictionary d is invalid", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDictionary(tt.rec)
			require.Error(t, err)
			if tt.validation {
				assert.True(t, IsValidationError(err), "want ValidationError, got %v", err)
			} else {
				assert.True(t, IsLoadError(err), "want LoadError, got %v", err)
			}
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseDictionaryVersionAcceptance(t *testing.T) {
	accepted := []string{"master", "development", "0.0.1", "1.2.3-rc.1", "2.0.0+build.5"}
	for _, v := range accepted {
		t.Run(v, func(t *testing.T) {
			d, err := ParseDictionary(Record{"id": "d", "name": "n", "version": v})
			require.NoError(t, err)
			assert.Equal(t, v, d.Version)
		})
	}

	rejected := []string{"not-a-version", "1", "1.2", "v1.2.3"}
	for _, v := range rejected {
		t.Run(v, func(t *testing.T) {
			_, err := ParseDictionary(Record{"id": "d", "name": "n", "version": v})
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestLoad(t *testing.T) {
	old := slog.Default()
	slog.SetDefault(testutil.NewTestLogger(t, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(old) })

	d, err := Load(filepath.Join("testdata", "dictionary_ok", "dictionary.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ok.dictionary", d.ID)
	assert.Equal(t, "A proper Dictionary", d.Name)
	assert.Equal(t, "Happy path test", d.Description)
	assert.Equal(t, "0.0.1", d.Version)
	require.NotEmpty(t, d.DataTypes)
	require.NotEmpty(t, d.Entities)

	// Order-preserving collections.
	assert.Equal(t, "int32", d.DataTypes[0].ID)
	assert.Equal(t, "bool", d.DataTypes[1].ID)

	// The bool type's attributes come entirely from the override file.
	bt := d.TypeByID("bool")
	require.NotNil(t, bt)
	assert.Equal(t, true, bt.Attributes["boolean_attribute"])
	assert.NotContains(t, bt.Attributes, "inline_attribute")

	// Nested lookups resolve by id, upward references reach the root.
	ent := d.Entities[0]
	assert.Same(t, d, ent.Dictionary())
	p := ent.PropertyByID("ok.index")
	require.NotNil(t, p)
	assert.Equal(t, true, p.Attributes["important"])
	assert.Same(t, d.TypeByID("int32"), p.DictionaryType())

	assert.Same(t, ent, d.EntityByID("ok"))
	assert.Nil(t, d.EntityByID("nope"))
	assert.Nil(t, d.TypeByID("nope"))
}

func TestLoadErrors(t *testing.T) {
	dir := "testdata"
	tests := []struct {
		name       string
		path       string
		validation bool
	}{
		{"nonexistent root", filepath.Join(dir, "nonexistent.yaml"), false},
		{"missing id", filepath.Join(dir, "dictionary_no_id.yaml"), false},
		{"missing name", filepath.Join(dir, "dictionary_no_name.yaml"), false},
		{"missing version", filepath.Join(dir, "dictionary_no_version.yaml"), false},
		{"bad version", filepath.Join(dir, "dictionary_bad_version.yaml"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			if tt.validation {
				assert.True(t, IsValidationError(err), "want ValidationError, got %v", err)
			} else {
				assert.True(t, IsLoadError(err), "want LoadError, got %v", err)
			}
		})
	}
}

func TestLoadNonexistentPathIsWrapped(t *testing.T) {
	path := filepath.Join("testdata", "nonexistent.yaml")
	_, err := Load(path)
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
	assert.Error(t, le.Unwrap())
}

func TestValidateDefaultIsEmpty(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "dictionary_ok", "dictionary.yaml"))
	require.NoError(t, err)
	assert.Empty(t, d.Validate())
}

func TestValidateRunsAttachedRules(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "dictionary_ok", "dictionary.yaml"))
	require.NoError(t, err)

	d.Rules = []Rule{
		func(d *Dictionary) []string { return []string{"first: " + d.ID} },
		func(*Dictionary) []string { return nil },
		func(*Dictionary) []string { return []string{"second"} },
	}
	assert.Equal(t, []string{"first: ok.dictionary", "second"}, d.Validate())
}

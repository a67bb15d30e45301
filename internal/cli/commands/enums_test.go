package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/crossdialect/rosetta/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enumFixture = `- id: colour
  name: Colour
  values:
    - id: red
      integral_value: 1
    - id: green
      integral_value: 2
`

const enumDuplicateFixture = `- id: colour
  name: Colour
  values:
    - id: red
      integral_value: 1
    - id: red
      integral_value: 2
`

func TestEnumsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.yaml")
	writeFile(t, path, enumFixture)

	out, _, err := execute(t, NewEnumsCommand(), output.ModeText, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Enumerations (1 total)")
	assert.Contains(t, out, "colour")
}

func TestEnumsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.yaml")
	writeFile(t, path, enumFixture)

	out, _, err := execute(t, NewEnumsCommand(), output.ModeJSON, path)
	require.NoError(t, err)

	var entries []struct {
		ID     string `json:"id"`
		Values []struct {
			ID            string `json:"id"`
			IntegralValue int    `json:"integral_value"`
		} `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Values, 2)
	assert.Equal(t, 2, entries[0].Values[1].IntegralValue)
}

func TestEnumsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums.yaml")
	writeFile(t, path, enumDuplicateFixture)

	_, _, err := execute(t, NewEnumsCommand(), output.ModeText, path)
	require.Error(t, err)
	assert.True(t, dictionary.IsValidationError(err))
}

func TestEnumsNonexistentFile(t *testing.T) {
	_, _, err := execute(t, NewEnumsCommand(), output.ModeText, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, dictionary.IsLoadError(err))
}

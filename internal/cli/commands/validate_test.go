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

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	assert.Equal(t, "validate <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)
	assert.NotNil(t, cmd.Flags().Lookup("watch"))
}

func TestValidateOK(t *testing.T) {
	dir := writeDictionary(t, "0.0.1")

	out, _, err := execute(t, NewValidateCommand(), output.ModeText, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No errors found")
}

func TestValidateAcceptsRootFilePath(t *testing.T) {
	dir := writeDictionary(t, "master")

	_, _, err := execute(t, NewValidateCommand(), output.ModeText, filepath.Join(dir, "dictionary.yaml"))
	require.NoError(t, err)
}

func TestValidateNonexistentPath(t *testing.T) {
	_, _, err := execute(t, NewValidateCommand(), output.ModeText, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, dictionary.IsLoadError(err))
}

func TestValidateBadVersion(t *testing.T) {
	dir := writeDictionary(t, "not-a-version")

	_, _, err := execute(t, NewValidateCommand(), output.ModeText, dir)
	require.Error(t, err)
	assert.True(t, dictionary.IsValidationError(err))
}

func TestValidateJSONReport(t *testing.T) {
	dir := writeDictionary(t, "0.0.1")

	out, _, err := execute(t, NewValidateCommand(), output.ModeJSON, dir)
	require.NoError(t, err)

	var report struct {
		ID      string   `json:"id"`
		Version string   `json:"version"`
		Valid   bool     `json:"valid"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "test.dictionary", report.ID)
	assert.Equal(t, "0.0.1", report.Version)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidateReportsRuleFindings(t *testing.T) {
	dir := writeDictionary(t, "0.0.1")
	d, err := dictionary.Load(filepath.Join(dir, "dictionary.yaml"))
	require.NoError(t, err)

	d.Rules = []dictionary.Rule{
		func(*dictionary.Dictionary) []string { return []string{"entity thing has no description"} },
	}
	errs := d.Validate()
	require.Len(t, errs, 1)
}

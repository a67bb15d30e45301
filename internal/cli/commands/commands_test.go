package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// writeDictionary writes a minimal well-formed dictionary tree into a temp
// directory and returns the directory path.
func writeDictionary(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "dictionary.yaml"),
		"id: test.dictionary\nname: A test Dictionary\ndescription: fixture\nversion: "+version+"\n")
	writeFile(t, filepath.Join(dir, "data-types.yaml"),
		"- id: int32\n  name: 32 bit integer\n- id: bool\n  name: Boolean\n")
	writeFile(t, filepath.Join(dir, "entities.yaml"),
		"- id: thing\n  name: A thing\n  description: The canonical thing\n")
	writeFile(t, filepath.Join(dir, "properties-by-entity", "thing.yaml"),
		"- id: thing.index\n  name: Index\n  type: int32\n  attributes:\n    important: true\n")

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// execute runs a command with args and an optional renderer mode, returning
// stdout, stderr and the execution error.
func execute(t *testing.T, cmd *cobra.Command, mode output.Mode, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	ctx := context.WithValue(context.Background(), RendererKey{},
		output.NewRenderer(out, errOut, mode))
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

package commands

import (
	"strconv"

	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/crossdialect/rosetta/pkg/dictionary"
	"github.com/spf13/cobra"
)

// NewEnumsCommand creates the enums command.
func NewEnumsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enums <file>",
		Short: "Check a standalone enumeration file",
		Long: `Load a YAML file containing a list of enumerations and report its
contents. Enumeration files live outside the main dictionary tree and are
checked independently.

Exits non-zero when the file fails to load, contains duplicate value ids or
duplicate integral values.`,
		Example: `  # Check an enumeration file
  rosetta enums ./dictionaries/core/enumerations.yaml

  # Machine-readable report
  rosetta enums -o json ./dictionaries/core/enumerations.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enums, err := dictionary.LoadEnumerations(nil, args[0])
			if err != nil {
				return err
			}
			r := renderer(cmd)
			if r.EffectiveMode() == output.ModeJSON {
				return enumsJSON(enums, r)
			}
			enumsText(enums, r)
			return nil
		},
	}
}

func enumsText(enums []*dictionary.Enumeration, r *output.Renderer) {
	r.Printf("Enumerations (%d total):\n", len(enums))
	rows := make([][]string, 0, len(enums))
	for _, e := range enums {
		rows = append(rows, []string{e.ID, e.Name, strconv.Itoa(len(e.Values)), deprecatedMark(e.Deprecated)})
	}
	r.Table([]string{"ID", "Name", "Values", "Deprecated"}, rows)
}

func enumsJSON(enums []*dictionary.Enumeration, r *output.Renderer) error {
	type valueEntry struct {
		ID            string `json:"id"`
		IntegralValue int    `json:"integral_value"`
		Description   string `json:"description,omitempty"`
		Deprecated    bool   `json:"deprecated,omitempty"`
	}
	type enumEntry struct {
		ID         string       `json:"id"`
		Name       string       `json:"name"`
		Values     []valueEntry `json:"values"`
		Deprecated bool         `json:"deprecated,omitempty"`
	}

	entries := make([]enumEntry, 0, len(enums))
	for _, e := range enums {
		entry := enumEntry{ID: e.ID, Name: e.Name, Deprecated: e.Deprecated}
		for _, v := range e.Values {
			entry.Values = append(entry.Values, valueEntry{
				ID: v.ID, IntegralValue: v.IntegralValue,
				Description: v.Description, Deprecated: v.Deprecated,
			})
		}
		entries = append(entries, entry)
	}
	return r.JSON(entries)
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/crossdialect/rosetta/pkg/dictionary"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <path>",
		Short: "List the data types and entities of a dictionary",
		Long: `Load the dictionary rooted at the given file (or a directory containing a
dictionary.yaml) and list its data types and entities.

Use --output to choose the format: auto, text, json`,
		Example: `  # List as tables
  rosetta list ./dictionaries/core

  # List as JSON
  rosetta list -o json ./dictionaries/core`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveDictionaryPath(args[0])
			d, err := dictionary.Load(path)
			if err != nil {
				return err
			}
			r := renderer(cmd)
			if r.EffectiveMode() == output.ModeJSON {
				return listJSON(d, r)
			}
			listText(d, r, cliConfig(cmd).Verbose)
			return nil
		},
	}
}

func listText(d *dictionary.Dictionary, r *output.Renderer, verbose bool) {
	r.Printf("%s %s (%s)\n\n", d.ID, d.Version, d.Name)

	typeHeader := []string{"ID", "Name", "Semantics", "Deprecated"}
	entityHeader := []string{"ID", "Name", "Properties", "Deprecated"}
	if verbose {
		typeHeader = append(typeHeader, "Description")
		entityHeader = append(entityHeader, "Description")
	}

	r.Printf("Data types (%d total):\n", len(d.DataTypes))
	typeRows := make([][]string, 0, len(d.DataTypes))
	for _, t := range d.DataTypes {
		row := []string{t.ID, t.Name, t.Semantics, deprecatedMark(t.Deprecated)}
		if verbose {
			row = append(row, t.Description)
		}
		typeRows = append(typeRows, row)
	}
	r.Table(typeHeader, typeRows)

	r.Printf("\nEntities (%d total):\n", len(d.Entities))
	entityRows := make([][]string, 0, len(d.Entities))
	for _, e := range d.Entities {
		row := []string{e.ID, e.Name, strconv.Itoa(len(e.Properties)), deprecatedMark(e.Deprecated)}
		if verbose {
			row = append(row, e.Description)
		}
		entityRows = append(entityRows, row)
	}
	r.Table(entityHeader, entityRows)
}

func deprecatedMark(deprecated bool) string {
	if deprecated {
		return "yes"
	}
	return ""
}

// listJSON dumps the dictionary summary as JSON.
func listJSON(d *dictionary.Dictionary, r *output.Renderer) error {
	type typeEntry struct {
		ID         string         `json:"id"`
		Name       string         `json:"name"`
		Semantics  string         `json:"semantics"`
		Attributes map[string]any `json:"attributes,omitempty"`
		Deprecated bool           `json:"deprecated,omitempty"`
	}
	type propertyEntry struct {
		ID         string         `json:"id"`
		Name       string         `json:"name"`
		Type       string         `json:"type"`
		Attributes map[string]any `json:"attributes,omitempty"`
		Deprecated bool           `json:"deprecated,omitempty"`
	}
	type entityEntry struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		Properties []propertyEntry `json:"properties"`
		Deprecated bool            `json:"deprecated,omitempty"`
	}

	summary := struct {
		ID        string        `json:"id"`
		Name      string        `json:"name"`
		Version   string        `json:"version"`
		DataTypes []typeEntry   `json:"data_types"`
		Entities  []entityEntry `json:"entities"`
	}{
		ID:      d.ID,
		Name:    d.Name,
		Version: d.Version,
	}
	for _, t := range d.DataTypes {
		summary.DataTypes = append(summary.DataTypes, typeEntry{
			ID: t.ID, Name: t.Name, Semantics: t.Semantics,
			Attributes: t.Attributes, Deprecated: t.Deprecated,
		})
	}
	for _, e := range d.Entities {
		entry := entityEntry{ID: e.ID, Name: e.Name, Deprecated: e.Deprecated}
		for _, p := range e.Properties {
			entry.Properties = append(entry.Properties, propertyEntry{
				ID: p.ID, Name: p.Name, Type: p.TypeID,
				Attributes: p.Attributes, Deprecated: p.Deprecated,
			})
		}
		summary.Entities = append(summary.Entities, entry)
	}

	if err := r.JSON(summary); err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}
	return nil
}

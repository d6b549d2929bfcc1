package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"unit-converter/internal/conversion"
	"unit-converter/internal/types"
)

func unitsCmd(d *deps) *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List categories and their units",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			catalog := d.service.Catalog()

			if category != "" {
				cat, err := types.ParseCategory(category)
				if err != nil {
					return err
				}
				catalog = filterCatalog(catalog, cat.String())
			}

			return writeCatalog(c.OutOrStdout(), catalog, output)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	return cmd
}

func filterCatalog(catalog []conversion.CategoryInfo, id string) []conversion.CategoryInfo {
	out := make([]conversion.CategoryInfo, 0, 1)
	for _, c := range catalog {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out
}

func writeCatalog(w io.Writer, catalog []conversion.CategoryInfo, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		for _, c := range catalog {
			fmt.Fprintf(w, "%s (%s)\n", c.Label, c.ID)
			for _, u := range c.Units {
				fmt.Fprintf(w, "  - %s (%s, %s)\n", u.Label, u.ID, u.Symbol)
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, yaml or json)", format)
	}
}

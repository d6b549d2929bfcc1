package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unit-converter/internal/conversion"
)

func convertCmd(d *deps) *cobra.Command {
	var (
		category string
		decimals int
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units of the same category",
		Example: `  unitconv convert 1 km mi
  unitconv convert --category weight 10 pounds kilograms
  unitconv convert -- -40 C F`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			req, err := conversion.ParseRequest(category, args[1], args[2], value)
			if err != nil {
				return err
			}

			result, err := d.service.Convert(req)
			if err != nil {
				return err
			}

			if !c.Flags().Changed("decimals") {
				decimals = d.cfg.App.DecimalPlaces
			}
			fmt.Fprintln(c.OutOrStdout(), result.Format(decimals))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category of both units (inferred from FROM if omitted)")
	cmd.Flags().IntVar(&decimals, "decimals", conversion.DefaultDecimals, "decimal places in the printed result")
	return cmd
}

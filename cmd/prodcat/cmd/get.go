package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/cmd/table"
)

// getCmd shows a single product.
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single product",
	Args:  cobra.ExactArgs(1),
	Example: `  prodcat get 42
  prodcat get 42 -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		product, err := client.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		f, format := formatter(cmd)
		if format == output.FormatTable {
			return f.Format(os.Stdout, table.ProductToDetailData(*product))
		}
		return f.Format(os.Stdout, product)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

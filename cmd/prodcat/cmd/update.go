package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat"
	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/cmd/table"
	"github.com/shopfolk/prodcat/internal/mutate"
)

// updateCmd edits an existing product. Flags left unset keep the stored
// values; the identifier never changes.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing product",
	Args:  cobra.ExactArgs(1),
	Example: `  prodcat update 42 --price 99.90
  prodcat update 42 --title "Oak Table XL" --category "Dining Room"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		client, err := newClient()
		if err != nil {
			return err
		}

		// Prefill from the stored record so unset flags keep their
		// current values.
		stored, err := client.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		in := prodcat.Input{
			Title:        stored.Title,
			Price:        stored.Price,
			CategoryName: stored.Category.Name,
			Description:  stored.Description,
		}
		if cmd.Flags().Changed("title") {
			in.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("price") {
			in.Price, _ = cmd.Flags().GetFloat64("price")
		}
		if cmd.Flags().Changed("category") {
			in.CategoryName, _ = cmd.Flags().GetString("category")
		}
		if cmd.Flags().Changed("description") {
			in.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("images") {
			raw, _ := cmd.Flags().GetString("images")
			in.Images = mutate.SplitImages(raw)
		}

		updated, err := client.Update(cmd.Context(), id, in)
		if err != nil {
			return err
		}

		f, format := formatter(cmd)
		if format == output.FormatTable {
			return f.Format(os.Stdout, table.ProductToDetailData(*updated))
		}
		return f.Format(os.Stdout, updated)
	},
}

func init() {
	updateCmd.Flags().String("title", "", "Product title")
	updateCmd.Flags().Float64("price", 0, "Product price")
	updateCmd.Flags().String("category", "", "Category name")
	updateCmd.Flags().String("description", "", "Product description")
	updateCmd.Flags().String("images", "", "Image URLs, newline- or comma-delimited")

	rootCmd.AddCommand(updateCmd)
}

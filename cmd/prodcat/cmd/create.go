package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat"
	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/cmd/table"
	"github.com/shopfolk/prodcat/internal/mutate"
)

// createCmd adds a new product to the catalog.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new product",
	Example: `  prodcat create --title "Oak Table" --price 120 --category Furniture
  prodcat create --title "Desk Lamp" --price 25.50 \
      --images "https://example.com/a.png,https://example.com/b.png"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString("id")
		title, _ := cmd.Flags().GetString("title")
		price, _ := cmd.Flags().GetFloat64("price")
		category, _ := cmd.Flags().GetString("category")
		description, _ := cmd.Flags().GetString("description")
		images, _ := cmd.Flags().GetString("images")

		client, err := newClient()
		if err != nil {
			return err
		}

		created, err := client.Create(cmd.Context(), prodcat.Input{
			ID:           id,
			Title:        title,
			Price:        price,
			CategoryName: category,
			Description:  description,
			Images:       mutate.SplitImages(images),
		})
		if err != nil {
			return err
		}

		f, format := formatter(cmd)
		if format == output.FormatTable {
			return f.Format(os.Stdout, table.ProductToDetailData(*created))
		}
		return f.Format(os.Stdout, created)
	},
}

func init() {
	createCmd.Flags().String("id", "", "Product identifier (generated when omitted)")
	createCmd.Flags().String("title", "", "Product title")
	createCmd.Flags().Float64("price", 0, "Product price")
	createCmd.Flags().String("category", "", "Category name")
	createCmd.Flags().String("description", "", "Product description")
	createCmd.Flags().String("images", "", "Image URLs, newline- or comma-delimited")
	_ = createCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(createCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat"
	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/cmd/table"
	"github.com/shopfolk/prodcat/pkg/catalog"
)

// listCmd lists one page of the derived product view.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products from the catalog",
	Example: `  prodcat list                        # First page of all products
  prodcat list --search chair         # Products whose title contains "chair"
  prodcat list --sort price-asc       # Cheapest first
  prodcat list --page 3 --page-size 10`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		search, _ := cmd.Flags().GetString("search")
		sortStr, _ := cmd.Flags().GetString("sort")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		sortMode, err := catalog.ParseSortMode(sortStr)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Load(cmd.Context()); err != nil {
			return err
		}

		if search != "" {
			client.SetSearch(search)
		}
		if sortMode != catalog.SortNone {
			client.SetSort(sortMode)
		}
		if pageSize > 0 {
			if err := client.SetPageSize(pageSize); err != nil {
				return err
			}
		}
		if page > 0 {
			if err := client.GoToPage(page); err != nil {
				return err
			}
		}

		items, meta := client.Derived()
		controls := client.Controls()

		f, format := formatter(cmd)
		if format == output.FormatTable {
			if len(items) == 0 {
				fmt.Println("No products found")
				return nil
			}
			if err := f.Format(os.Stdout, table.ProductsToData(items)); err != nil {
				return err
			}
			fmt.Println(meta.Summary())
			if strip := table.ControlStrip(controls); strip != "" {
				fmt.Println(strip)
			}
			return nil
		}

		return f.Format(os.Stdout, listResult{
			Products: items,
			Meta:     meta,
			Controls: controls,
		})
	},
}

// listResult is the structured payload for json/yaml output.
type listResult struct {
	Products []catalog.Product `json:"products" yaml:"products"`
	Meta     prodcat.Meta      `json:"meta" yaml:"meta"`
	Controls []prodcat.Control `json:"controls,omitempty" yaml:"controls,omitempty"`
}

func init() {
	listCmd.Flags().String("search", "", "Filter by case-insensitive title substring")
	listCmd.Flags().String("sort", "", "Sort mode: none, price-asc, price-desc, title-asc, title-desc")
	listCmd.Flags().Int("page", 0, "Page number (1-based)")
	listCmd.Flags().Int("page-size", 0, "Items per page")

	rootCmd.AddCommand(listCmd)
}

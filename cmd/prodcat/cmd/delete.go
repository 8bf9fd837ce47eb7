package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat"
	"github.com/shopfolk/prodcat/pkg/errors"
)

// deleteCmd removes a product after confirmation.
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a product",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Example: `  prodcat delete 42
  prodcat delete 42 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		skipConfirm, _ := cmd.Flags().GetBool("yes")

		client, err := newClient()
		if err != nil {
			return err
		}

		confirm := prodcat.ConfirmerFunc(askConfirmation)
		if skipConfirm {
			confirm = prodcat.ConfirmerFunc(func(string) bool { return true })
		}

		if err := client.Delete(cmd.Context(), id, confirm); err != nil {
			if errors.IsCanceled(err) {
				fmt.Println("Aborted")
				return nil
			}
			return err
		}

		fmt.Printf("Deleted product %s\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

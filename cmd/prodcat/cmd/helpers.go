package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopfolk/prodcat"
	"github.com/shopfolk/prodcat/internal/cmd/globals"
	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/config"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// newClient builds a catalog client from the resolved configuration.
func newClient() (prodcat.Client, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	return prodcat.New(
		prodcat.WithBaseURL(settings.BaseURL),
		prodcat.WithTimeout(settings.Timeout),
		prodcat.WithPageSize(settings.PageSize),
		prodcat.WithLogger(logging.Default()),
	)
}

// formatter resolves the output formatter for the current invocation.
func formatter(cmd *cobra.Command) (output.Formatter, output.Format) {
	flags := globals.Parse(cmd)
	format := output.DetectFormat(flags.Output)
	return output.NewFormatter(format), format
}

// askConfirmation prompts on the terminal and reads a y/N answer.
func askConfirmation(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

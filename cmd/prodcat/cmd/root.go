// Package cmd implements the prodcat CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shopfolk/prodcat/internal/cmd/globals"
	"github.com/shopfolk/prodcat/internal/cmd/output"
	"github.com/shopfolk/prodcat/internal/config"
	"github.com/shopfolk/prodcat/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "prodcat",
	Short: "Product catalog manager",
	Long: `Prodcat manages a product catalog hosted on a remote REST service.

It fetches the full collection, lets you search, sort, and page through
it locally, and performs create/update/delete operations against the
service. After every successful mutation the collection is reloaded, so
what you see always reflects server-confirmed state.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.prodcat.yaml)")
	rootCmd.PersistentFlags().String("base-url", "",
		"Base URL of the remote catalog service")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag(config.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url")); err != nil {
		panic(fmt.Sprintf("Failed to bind base-url flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".prodcat")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("PRODCAT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// loadEnvFiles loads .env from the working directory when present.
func loadEnvFiles() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

// configureLogging adjusts the global logger to the verbosity flags.
func configureLogging() {
	switch {
	case globalFlags != nil && globalFlags.Quiet:
		logging.SetLevel(zerolog.ErrorLevel)
	case globalFlags != nil && globalFlags.Verbose:
		logging.SetLevel(zerolog.DebugLevel)
	}
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}
	_, err := output.ParseFormat(globalFlags.Output)
	return err
}

// Package cmd provides the CLI commands for retail-price.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"retail-price/internal/config"
	"retail-price/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "retail-price",
	Short: "Compute retail unit prices from a cost-model profile",
	Long: `retail-price computes a retail unit price from a production quantity,
two format selectors, VAT and discount percentages.

The pricing pipeline is fixed; product-line differences (coefficient
tables, cost constants, discount tiers) live in swappable profiles.

Examples:
  retail-price quote --quantity 100 --primary "iPhone 15" --secondary "128 Gb" --vat 20
  retail-price quote --profile print-run --quantity 500 --primary A5 --secondary "200 pages" --vat 20 --discount 10
  retail-price profiles`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.retail-price.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("retail-price version 1.0.0")
	},
}

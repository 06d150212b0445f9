package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gearshop",
	Short: "Gearshop - gaming gear and PC parts storefront",
	Long: `Gearshop is a small server-rendered storefront selling gaming
peripherals and PC components.

Visitors browse the catalogs, registered users fill a cart and check out.
The binary serves the web interface and provides maintenance commands for
the MySQL schema.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: config.yaml in ./deploy, ., $HOME/.gearshop or /etc/gearshop)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

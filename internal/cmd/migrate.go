package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gearshop/internal/config"
	"github.com/matthieukhl/gearshop/internal/database"
)

var dropFirst bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the storefront database schema",
	Long: `Creates the users, cart_items, purchases and orders tables when they
do not exist yet.

With --drop-first every storefront table is dropped beforehand, which
deletes all accounts, carts and purchases.`,
	RunE: migrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing storefront tables before creating")
}

func migrate(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database schema...")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(ctx); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Printf("📋 Creating tables: %s\n", strings.Join(database.Tables, ", "))
	if err := db.SetupSchema(ctx); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	fmt.Println("✅ Database schema ready!")
	return nil
}

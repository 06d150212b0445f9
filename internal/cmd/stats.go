package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gearshop/internal/config"
	"github.com/matthieukhl/gearshop/internal/database"
	"github.com/matthieukhl/gearshop/internal/store"
)

var (
	statsUser  int64
	statsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show storefront row counts",
	Long: `Prints how many users, cart items, purchases and orders the database
holds. With --user the latest purchases of that account are listed too.`,
	RunE: showStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Int64Var(&statsUser, "user", 0, "List recent purchases of this user id")
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Maximum number of purchases to list")
}

func showStats(cmd *cobra.Command, args []string) error {
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
	st := store.New(db)

	counts, err := st.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}

	fmt.Println("📊 Storefront statistics")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("   👥 Users:      %d\n", counts.Users)
	fmt.Printf("   🛒 Cart items: %d\n", counts.CartItems)
	fmt.Printf("   💳 Purchases:  %d\n", counts.Purchases)
	fmt.Printf("   📦 Orders:     %d\n", counts.Orders)

	if statsUser == 0 {
		return nil
	}

	purchases, err := st.PurchasesByUser(ctx, statsUser, statsLimit)
	if err != nil {
		return fmt.Errorf("failed to list purchases: %w", err)
	}
	if len(purchases) == 0 {
		fmt.Printf("\n📭 No purchases found for user %d\n", statsUser)
		return nil
	}

	fmt.Printf("\n📋 Latest %d purchase%s of user %d:\n", len(purchases), plural(len(purchases)), statsUser)
	for _, p := range purchases {
		fmt.Printf("   #%d %s | %s | %s\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.Email, p.Address)
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

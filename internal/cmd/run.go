package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/matthieukhl/gearshop/internal/config"
	"github.com/matthieukhl/gearshop/internal/database"
	"github.com/matthieukhl/gearshop/internal/events"
	"github.com/matthieukhl/gearshop/internal/logging"
	"github.com/matthieukhl/gearshop/internal/server"
	"github.com/matthieukhl/gearshop/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront server",
	Long: `Start the storefront server which provides:
- Catalog pages for gaming gear and PC parts
- Registration, login and a per-user cart
- Checkout, health check and Prometheus metrics`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Gearshop Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	gin.SetMode(cfg.Server.Mode)

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	var publisher events.Publisher = events.Nop{}
	if cfg.Events.AMQPURL != "" {
		fmt.Println("📨 Connecting to message broker...")
		amqpPub, err := events.DialAMQP(cfg.Events.AMQPURL, cfg.Events.Queue)
		if err != nil {
			return fmt.Errorf("failed to connect to broker: %w", err)
		}
		publisher = amqpPub
	}
	defer publisher.Close()

	fmt.Println("⚙️  Setting up server...")
	sessions := session.NewManager([]byte(cfg.Session.Secret), session.Options{
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.Session.Secure,
	})
	srv := server.NewServer(db, server.Options{
		Sessions:  sessions,
		Publisher: publisher,
		Logger:    log,
		StaticDir: cfg.Server.StaticDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	fmt.Println("👋 Server stopped")
	return nil
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/matthieukhl/gearshop/internal/catalog"
	"github.com/matthieukhl/gearshop/internal/database"
	"github.com/matthieukhl/gearshop/internal/events"
	"github.com/matthieukhl/gearshop/internal/metrics"
	"github.com/matthieukhl/gearshop/internal/session"
	"github.com/matthieukhl/gearshop/internal/store"
	"github.com/matthieukhl/gearshop/internal/views"
)

type Server struct {
	router    *gin.Engine
	db        *database.DB
	store     *store.Store
	sessions  *session.Manager
	publisher events.Publisher
	log       *logrus.Logger
}

// Options carries the collaborators a Server needs besides the database.
type Options struct {
	Sessions  *session.Manager
	Publisher events.Publisher
	Logger    *logrus.Logger
	// StaticDir, when set, is served under /static.
	StaticDir string
}

// NewServer creates a new server instance
func NewServer(db *database.DB, opts Options) *Server {
	if opts.Publisher == nil {
		opts.Publisher = events.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.SetHTMLTemplate(views.Templates())

	server := &Server{
		router:    router,
		db:        db,
		store:     store.New(db),
		sessions:  opts.Sessions,
		publisher: opts.Publisher,
		log:       opts.Logger,
	}

	server.setupRoutes(opts.StaticDir)
	return server
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(staticDir string) {
	s.router.Use(
		gin.Recovery(),
		s.requestLogger(),
		metrics.Instrument(),
		s.sessions.Middleware(),
	)

	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
	}
	if staticDir != "" {
		s.router.Static("/static", staticDir)
	}

	pages := s.router.Group("/", s.cartCount())
	{
		pages.GET("/", s.home)

		pages.GET("/register", s.showRegister)
		pages.POST("/register", s.register)
		pages.GET("/login", s.showLogin)
		pages.POST("/login", s.login)
		pages.GET("/logout", s.logout)

		for _, cat := range catalog.All() {
			pages.GET(cat.Path(), s.listCatalog(cat))
			pages.GET(cat.Path()+"/:id", s.showEntry(cat))
			pages.POST(cat.Path()+"/:id", s.addToCart(cat))
		}

		cart := s.requireUser("You need to log in to view your cart.")
		pages.GET("/cart", cart, s.showCart)
		pages.POST("/cart", cart, s.clearCart)

		buy := s.requireUser("You need to log in to make a purchase.")
		pages.GET("/buy", buy, s.showBuy)
		pages.POST("/buy", buy, s.buy)
	}

	s.router.NoRoute(s.cartCount(), func(c *gin.Context) {
		s.render(c, http.StatusNotFound, views.Error, gin.H{"Title": "Not found", "Message": "Page not found."})
	})
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gearshop",
	})
}

func (s *Server) home(c *gin.Context) {
	s.render(c, http.StatusOK, views.Home, nil)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Package server wires the HTTP surface: router construction, CORS,
// middleware, route registration, and the background overdue sweeper.
package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sullivan-trading/sullivan-api/internal/auth"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments/stripe"
	"github.com/sullivan-trading/sullivan-api/internal/config"
	"github.com/sullivan-trading/sullivan-api/internal/handlers"
	"github.com/sullivan-trading/sullivan-api/internal/middleware"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"github.com/sullivan-trading/sullivan-api/internal/store"
	"go.uber.org/zap"
)

// sweepInterval is how often pending invoices are re-checked for the
// overdue transition, in addition to the inline sweep on dashboard load.
const sweepInterval = time.Hour

// Server holds the wired application.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	invoiceService *services.InvoiceService

	invoiceHandler *handlers.InvoiceHandler
	webhookHandler *handlers.WebhookHandler
	authHandler    *handlers.AuthHandler
	postHandler    *handlers.PostHandler
	healthHandler  *handlers.HealthHandler
	authManager    *auth.Manager
	loginLimiter   *middleware.RateLimiter

	sweepCancel context.CancelFunc
	sweepDone   chan struct{}
}

// New wires services and handlers on top of an established database pool.
func New(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) *Server {
	st := store.New(pool, logger)

	stripeKey := cfg.StripeSecretKey
	if !cfg.StripeConfigured() {
		stripeKey = ""
	}
	stripeService := stripe.New(stripeKey, cfg.StripeWebhookSecret, logger)

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.InvoiceFromEmail, cfg.InvoiceFromName, logger)

	invoiceService := services.NewInvoiceService(st, stripeService, emailService, logger)
	reconciler := services.NewPaymentReconciler(stripeService, st, logger)
	postService := services.NewPostService(st, logger)
	authManager := auth.NewManager(cfg.AdminPasswordHash, cfg.SessionSecret, logger)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		invoiceService: invoiceService,
		invoiceHandler: handlers.NewInvoiceHandler(invoiceService, logger),
		webhookHandler: handlers.NewWebhookHandler(reconciler, logger),
		authHandler:    handlers.NewAuthHandler(authManager, !cfg.IsDevelopment(), logger),
		postHandler:    handlers.NewPostHandler(postService, logger),
		healthHandler:  handlers.NewHealthHandler(pool, logger),
		authManager:    authManager,
		loginLimiter:   middleware.NewRateLimiter(10, 5),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.configureCORS())
	router.Use(middleware.CorrelationID())

	router.GET("/health", s.healthHandler.Health)

	// Webhook route stays outside the admin group: the processor
	// authenticates with its signature, not a session.
	router.POST("/webhooks/stripe", s.webhookHandler.HandleStripeWebhook)

	blog := router.Group("/blog")
	{
		blog.GET("", s.postHandler.ListPublishedPosts)
		blog.GET("/:slug", s.postHandler.GetPublishedPost)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", s.loginLimiter.Middleware(), s.authHandler.Login)
		admin.POST("/logout", s.authHandler.Logout)

		protected := admin.Group("")
		protected.Use(s.authManager.RequireAuth())
		{
			protected.GET("/dashboard", s.invoiceHandler.Dashboard)

			protected.GET("/invoices", s.invoiceHandler.ListInvoices)
			protected.POST("/invoices", s.invoiceHandler.CreateInvoice)
			protected.GET("/invoices/:id", s.invoiceHandler.GetInvoice)
			protected.POST("/invoices/:id/payment-link", s.invoiceHandler.CreatePaymentLink)

			protected.GET("/posts", s.postHandler.ListPosts)
			protected.POST("/posts", s.postHandler.CreatePost)
			protected.GET("/posts/:id", s.postHandler.GetPost)
			protected.PUT("/posts/:id", s.postHandler.UpdatePost)
			protected.DELETE("/posts/:id", s.postHandler.DeletePost)
		}
	}

	return router
}

// StartSweeper runs the hourly overdue sweep until StopSweeper is
// called. The dashboard also sweeps inline, so this only covers long
// stretches with no admin activity.
func (s *Server) StartSweeper() {
	ctx, cancel := context.WithCancel(context.Background())
	s.sweepCancel = cancel
	s.sweepDone = make(chan struct{})

	go func() {
		defer close(s.sweepDone)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				swept, err := s.invoiceService.SweepOverdue(ctx)
				if err != nil {
					s.logger.Error("Overdue sweep failed", zap.Error(err))
					continue
				}
				if swept > 0 {
					s.logger.Info("Overdue sweep complete", zap.Int64("invoices_marked", swept))
				}
			}
		}
	}()
}

// StopSweeper stops the background sweeper and waits for it to exit.
func (s *Server) StopSweeper() {
	if s.sweepCancel == nil {
		return
	}
	s.sweepCancel()
	<-s.sweepDone
}

// configureCORS returns a CORS middleware from the configured origins.
// Credentials are allowed because the admin session rides a cookie.
func (s *Server) configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(s.cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.cfg.AllowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}
	corsConfig.AllowCredentials = true

	return cors.New(corsConfig)
}

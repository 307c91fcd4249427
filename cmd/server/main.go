package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akash6998s/langarsewa-go/internal/auth"
	"github.com/akash6998s/langarsewa-go/internal/cache"
	"github.com/akash6998s/langarsewa-go/internal/config"
	"github.com/akash6998s/langarsewa-go/internal/database"
	"github.com/akash6998s/langarsewa-go/internal/handlers"
	"github.com/akash6998s/langarsewa-go/internal/middleware"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

var Version = "dev"

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	memberCache := cache.New(cfg.RedisAddr, cfg.MemberCacheTTL)

	members := repository.NewMembers(db.Pool(), memberCache)
	expenses := repository.NewExpenses(db.Pool())
	posts := repository.NewPosts(db.Pool())
	roster := repository.NewRoster(db.Pool())

	jwtService := auth.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)

	memberHandler := handlers.NewMemberHandler(members)
	attendanceHandler := handlers.NewAttendanceHandler(members)
	donationHandler := handlers.NewDonationHandler(members, expenses)
	expenseHandler := handlers.NewExpenseHandler(expenses)
	postHandler := handlers.NewPostHandler(posts, members)
	rosterHandler := handlers.NewRosterHandler(roster)
	reportHandler := handlers.NewReportHandler(members)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Metrics())
	r.Use(middleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		dbHealthy := db.Health(c.Request.Context()) == nil
		cacheHealthy := memberCache.Healthy(c.Request.Context())
		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":  "ok",
			"version": Version,
			"db":      dbHealthy,
			"cache":   cacheHealthy,
		})
	})

	api := r.Group("/api")

	api.POST("/login", handlers.Login(jwtService, members))

	// Open reads: lists, sheets, reports, feed, roster
	api.GET("/members", memberHandler.List)
	api.GET("/members/:roll_no", memberHandler.Get)
	api.GET("/members/:roll_no/performance", reportHandler.MemberPerformance)
	api.GET("/attendance/sheet", attendanceHandler.Sheet)
	api.GET("/donations/partition", donationHandler.Partition)
	api.GET("/finance/summary", donationHandler.FinanceSummary)
	api.GET("/expenses", expenseHandler.Ledger)
	api.GET("/reports/team", reportHandler.TeamStandings)
	api.GET("/reports/monthly", reportHandler.MonthlyStandings)
	api.GET("/posts", postHandler.Feed)
	api.GET("/roster", rosterHandler.Week)
	api.GET("/roster/:day", rosterHandler.Day)

	// Member actions need a valid token
	authed := api.Group("", middleware.RequireAuth(jwtService))
	authed.POST("/posts", postHandler.Create)
	authed.POST("/posts/:id/like", postHandler.Like)
	authed.POST("/posts/:id/comments", postHandler.Comment)

	// Admin mutations
	admin := api.Group("", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	admin.POST("/members", memberHandler.Create)
	admin.PUT("/members/:roll_no", memberHandler.Update)
	admin.PUT("/members/:roll_no/password", memberHandler.SetPassword)
	admin.DELETE("/members/:roll_no", memberHandler.Clear)
	admin.POST("/members/:roll_no/attendance", attendanceHandler.Add)
	admin.DELETE("/members/:roll_no/attendance", attendanceHandler.Remove)
	admin.POST("/members/:roll_no/donations", donationHandler.Set)
	admin.DELETE("/members/:roll_no/donations", donationHandler.Remove)
	admin.POST("/expenses", expenseHandler.Add)
	admin.DELETE("/expenses/:id", expenseHandler.Delete)
	admin.POST("/roster/:day", rosterHandler.Assign)
	admin.DELETE("/roster/:day/:roll_no", rosterHandler.Remove)
	admin.DELETE("/posts/:id", postHandler.Delete)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
}

package router

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/banksajt/internal/config"
	"github.com/polkiloo/banksajt/internal/metrics"
	"github.com/polkiloo/banksajt/internal/server/http/handlers"
	"github.com/polkiloo/banksajt/internal/server/http/middleware"
)

// promhttp negotiates its own compression.
const metricsPath = "/metrics"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BankFacade, logger *slog.Logger, m *metrics.Metrics, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{metricsPath})))

	accountHandler := handlers.NewAccountHandler(facade, logger)
	sessionHandler := handlers.NewSessionHandler(facade, logger)
	balanceHandler := handlers.NewBalanceHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.POST("/users", accountHandler.Create)
	engine.POST("/sessions", sessionHandler.Login)
	engine.GET("/health", healthHandler.Check)
	engine.GET(metricsPath, gin.WrapH(m.Handler()))

	me := engine.Group("/me")
	me.Use(middleware.RequireSession(facade, logger))
	me.POST("/account", balanceHandler.Show)
	me.POST("/account/transaction", balanceHandler.Transaction)

	return engine
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

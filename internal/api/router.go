package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/recharge-gateway/internal/config"
	"github.com/akylbek/payment-system/recharge-gateway/internal/handlers"
	"github.com/akylbek/payment-system/recharge-gateway/internal/middleware"
	"github.com/akylbek/payment-system/recharge-gateway/internal/orchestrator"
	"github.com/akylbek/payment-system/recharge-gateway/internal/telemetry"
)

func NewRouter(cfg *config.Config, orch *orchestrator.Orchestrator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "recharge-gateway"})
	})

	// Order routes
	orderHandler := handlers.NewOrderHandler(orch, cfg.PublicBaseURL)
	apiRoutes := r.Group("/api")
	{
		apiRoutes.POST("/create-order", orderHandler.CreateOrder)
		apiRoutes.GET("/check-status/:orderId", orderHandler.CheckStatus)
		// An empty order id cannot match the param route; answer both
		// bare forms with the handler's 400 instead of the client shell.
		apiRoutes.GET("/check-status", orderHandler.CheckStatus)
		apiRoutes.GET("/check-status/", orderHandler.CheckStatus)
	}

	indexFile := filepath.Join(cfg.StaticDir, "index.html")

	// Post-payment landing target. Query params are informational only;
	// this is a navigation route, not a trusted notification channel.
	r.GET("/payment/callback", func(c *gin.Context) {
		telemetry.Logger.Info("Payment callback received",
			zap.String("query", c.Request.URL.RawQuery),
		)
		c.File(indexFile)
	})

	// Static assets with the client shell as fallback for client-side
	// routing. API misses stay JSON, and only GET navigation gets the
	// shell.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		asset := filepath.Join(cfg.StaticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}
		c.File(indexFile)
	})

	return r
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/recharge-gateway/internal/api"
	"github.com/akylbek/payment-system/recharge-gateway/internal/config"
	"github.com/akylbek/payment-system/recharge-gateway/internal/gateway"
	"github.com/akylbek/payment-system/recharge-gateway/internal/orchestrator"
	"github.com/akylbek/payment-system/recharge-gateway/internal/telemetry"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Initialize telemetry
	if err := telemetry.InitTelemetry("recharge-gateway"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Recharge Gateway")

	cfg := config.Load()
	if cfg.UserToken == "" {
		telemetry.Logger.Fatal("USER_TOKEN is required")
	}
	if cfg.GatewayInsecureSkipVerify {
		telemetry.Logger.Warn("TLS certificate verification disabled for gateway calls")
	}

	// Single shared gateway client; its connection pool lives for the
	// whole process.
	gatewayClient := gateway.NewClient(gateway.Config{
		BaseURL:            cfg.GatewayBaseURL,
		UserToken:          cfg.UserToken,
		InsecureSkipVerify: cfg.GatewayInsecureSkipVerify,
	})

	orch := orchestrator.New(gatewayClient)

	r := api.NewRouter(cfg, orch)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Recharge Gateway starting",
			zap.String("port", cfg.Port),
			zap.String("gateway_url", cfg.GatewayBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
	"github.com/akylbek/payment-system/recharge-gateway/internal/orchestrator"
	"github.com/akylbek/payment-system/recharge-gateway/internal/telemetry"
	"github.com/akylbek/payment-system/recharge-gateway/internal/validator"
)

type OrderHandler struct {
	orchestrator *orchestrator.Orchestrator

	// publicBaseURL, when set, overrides the callback base derived from
	// the inbound request.
	publicBaseURL string
}

func NewOrderHandler(orch *orchestrator.Orchestrator, publicBaseURL string) *OrderHandler {
	return &OrderHandler{
		orchestrator:  orch,
		publicBaseURL: publicBaseURL,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Warn("Invalid order request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid request body",
		})
		return
	}

	normalized, err := validator.Validate(req)
	if err != nil {
		telemetry.Logger.Warn("Order request failed validation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": err.Error(),
		})
		return
	}

	result, err := h.orchestrator.CreateOrder(c.Request.Context(), normalized, h.callbackBase(c))
	if err != nil {
		telemetry.Logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  false,
			"message": userMessage(err, "Failed to create order"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Order created successfully",
		"result":  result,
	})
}

func (h *OrderHandler) CheckStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	body, err := h.orchestrator.CheckStatus(c.Request.Context(), orderID)
	if err != nil {
		var oErr *orchestrator.Error
		if errors.As(err, &oErr) && oErr.Kind == orchestrator.KindInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "ERROR",
				"message": oErr.Message,
			})
			return
		}
		telemetry.Logger.Error("Failed to check order status",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "ERROR",
			"message": userMessage(err, "Failed to check order status"),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// callbackBase is where the gateway redirects the browser after payment.
func (h *OrderHandler) callbackBase(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// userMessage returns the orchestrator's caller-safe message, never the
// underlying transport detail.
func userMessage(err error, fallback string) string {
	var oErr *orchestrator.Error
	if errors.As(err, &oErr) && oErr.Message != "" {
		return oErr.Message
	}
	return fallback
}

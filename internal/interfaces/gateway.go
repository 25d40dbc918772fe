package interfaces

import (
	"context"
	"encoding/json"

	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
)

// PaymentGateway defines the contract for outbound gateway calls
type PaymentGateway interface {
	CreateOrder(ctx context.Context, payload models.GatewayOrderPayload) (*models.GatewayResponse, error)
	CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error)
}

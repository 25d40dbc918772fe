package orchestrator

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/akylbek/payment-system/recharge-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
	"github.com/akylbek/payment-system/recharge-gateway/internal/orderid"
	"github.com/akylbek/payment-system/recharge-gateway/internal/telemetry"
)

type ErrorKind int

const (
	// KindInvalidInput marks a malformed status-check request.
	KindInvalidInput ErrorKind = iota
	// KindGatewayUnreachable marks transport failures talking to the gateway.
	KindGatewayUnreachable
	// KindGatewayRejected marks a reachable gateway that reported failure
	// or returned a response without the expected fields.
	KindGatewayRejected
	// KindInvalidGatewayResponse marks a gateway response carrying a
	// malformed or non-http(s) payment URL.
	KindInvalidGatewayResponse
)

// Error is the typed failure returned by both use cases. Message is safe
// to show to the caller; Err keeps the cause for logging.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

const fallbackRemark2 = "Recharge Payment"

// Orchestrator composes order-id generation and gateway invocation into
// the create-order and check-status use cases. It holds no per-request
// state and is safe for concurrent use.
type Orchestrator struct {
	gateway interfaces.PaymentGateway
}

func New(gw interfaces.PaymentGateway) *Orchestrator {
	return &Orchestrator{gateway: gw}
}

// CreateOrder creates a gateway order for a validated request. One
// gateway round trip, no retries. callbackBaseURL is where the gateway
// sends the user's browser after payment.
func (o *Orchestrator) CreateOrder(ctx context.Context, req models.NormalizedOrder, callbackBaseURL string) (*models.GatewayOrderResult, error) {
	orderID := orderid.Generate()

	payload := models.GatewayOrderPayload{
		CustomerMobile: req.CustomerMobile,
		Amount:         req.Amount.String(),
		OrderID:        orderID,
		RedirectURL:    strings.TrimSuffix(callbackBaseURL, "/") + "/payment/callback",
		Remark1:        req.Remark1,
		Remark2:        fallbackRemark2,
	}

	telemetry.Logger.Info("Creating order",
		zap.String("order_id", orderID),
		zap.String("customer_mobile", req.CustomerMobile),
		zap.String("amount", payload.Amount),
	)

	resp, err := o.gateway.CreateOrder(ctx, payload)
	if err != nil {
		return nil, &Error{
			Kind:    KindGatewayUnreachable,
			Message: "Failed to create order",
			Err:     err,
		}
	}

	if !resp.Status || resp.Result == nil || resp.Result.PaymentURL == "" {
		message := resp.Message
		if message == "" {
			message = "Invalid response from payment gateway"
		}
		return nil, &Error{
			Kind:    KindGatewayRejected,
			Message: message,
		}
	}

	// Guard against the gateway handing back a non-URL or a dangerous
	// scheme. The caller only ever sees the re-serialized form.
	paymentURL, err := url.Parse(resp.Result.PaymentURL)
	if err != nil || !paymentURL.IsAbs() || (paymentURL.Scheme != "http" && paymentURL.Scheme != "https") {
		return nil, &Error{
			Kind:    KindInvalidGatewayResponse,
			Message: "Invalid payment URL in gateway response",
			Err:     err,
		}
	}

	resultOrderID := resp.Result.OrderID
	if resultOrderID == "" {
		resultOrderID = orderID
	}

	telemetry.Logger.Info("Order created",
		zap.String("order_id", resultOrderID),
	)

	return &models.GatewayOrderResult{
		OrderID:    resultOrderID,
		PaymentURL: paymentURL.String(),
	}, nil
}

// CheckStatus relays the gateway's settlement status for an order. The
// body comes back verbatim; only transport failures are translated.
func (o *Orchestrator) CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	if orderID == "" {
		return nil, &Error{
			Kind:    KindInvalidInput,
			Message: "Order ID is required",
		}
	}

	telemetry.Logger.Info("Checking order status", zap.String("order_id", orderID))

	body, err := o.gateway.CheckStatus(ctx, orderID)
	if err != nil {
		return nil, &Error{
			Kind:    KindGatewayUnreachable,
			Message: "Failed to check order status",
			Err:     err,
		}
	}
	return body, nil
}

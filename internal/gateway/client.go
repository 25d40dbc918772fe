package gateway

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
)

const (
	defaultTimeout = 30 * time.Second
	maxRedirects   = 5
)

// TransportError wraps network failures, timeouts, gateway 5xx responses
// and undecodable bodies. The cause is preserved for logging.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Config struct {
	BaseURL   string
	UserToken string

	// Timeout defaults to 30s when zero.
	Timeout time.Duration

	// InsecureSkipVerify disables certificate verification. Explicit
	// opt-in only; see config.Config.
	InsecureSkipVerify bool
}

// Client performs the two outbound operations against the payment
// gateway. The underlying transport keeps connections alive across
// calls and is safe for concurrent use, so one Client serves the whole
// process.
type Client struct {
	http      *resty.Client
	userToken string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetHeader("Accept", "application/json")

	if cfg.InsecureSkipVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{
		http:      rc,
		userToken: cfg.UserToken,
	}
}

// CreateOrder posts the create-order form. The field names are fixed by
// the gateway contract and must not change. Any response below 500 is
// decoded and handed to the caller; 5xx and network failures are
// TransportErrors.
func (c *Client) CreateOrder(ctx context.Context, payload models.GatewayOrderPayload) (*models.GatewayResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"customer_mobile": payload.CustomerMobile,
			"user_token":      c.userToken,
			"amount":          payload.Amount,
			"order_id":        payload.OrderID,
			"redirect_url":    payload.RedirectURL,
			"remark1":         payload.Remark1,
			"remark2":         payload.Remark2,
		}).
		Post("/create-order")
	if err != nil {
		return nil, &TransportError{Op: "create-order", Err: err}
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, &TransportError{Op: "create-order", Err: fmt.Errorf("gateway returned %s", resp.Status())}
	}

	var decoded models.GatewayResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, &TransportError{Op: "create-order", Err: fmt.Errorf("malformed gateway response: %w", err)}
	}
	return &decoded, nil
}

// CheckStatus posts the check-order-status form and returns the
// gateway's body verbatim. The status vocabulary is gateway-defined and
// not interpreted here.
func (c *Client) CheckStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"user_token": c.userToken,
			"order_id":   orderID,
		}).
		Post("/check-order-status")
	if err != nil {
		return nil, &TransportError{Op: "check-order-status", Err: err}
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, &TransportError{Op: "check-order-status", Err: fmt.Errorf("gateway returned %s", resp.Status())}
	}
	if !json.Valid(resp.Body()) {
		return nil, &TransportError{Op: "check-order-status", Err: fmt.Errorf("malformed gateway response")}
	}
	return json.RawMessage(resp.Body()), nil
}

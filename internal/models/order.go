package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is the inbound amount field. It accepts both `"amount": "100"`
// and `"amount": 100` and keeps malformed values like "abc" as-is, so
// the validator answers with its specific message instead of the
// binding layer's generic one.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n)
	return nil
}

func (a Amount) String() string {
	return string(a)
}

// CreateOrderRequest is the inbound recharge request body.
type CreateOrderRequest struct {
	CustomerMobile string `json:"customer_mobile"`
	Amount         Amount `json:"amount"`
	Remark1        string `json:"remark1"`
}

// NormalizedOrder is a validated order request ready for the gateway.
type NormalizedOrder struct {
	CustomerMobile string
	Amount         decimal.Decimal
	Remark1        string
}

// GatewayOrderPayload carries the values for the gateway's create-order
// form. Field names on the wire are fixed by the gateway contract and
// written by the gateway client, not here.
type GatewayOrderPayload struct {
	CustomerMobile string
	Amount         string
	OrderID        string
	RedirectURL    string
	Remark1        string
	Remark2        string
}

// GatewayResponse is the decoded create-order response from the gateway.
// Only the fields this service acts on are modeled; the rest of the
// gateway's vocabulary is opaque.
type GatewayResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Result  *GatewayResult `json:"result"`
}

type GatewayResult struct {
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"payment_url"`
}

// GatewayOrderResult is the sanitized order returned to the caller.
// PaymentURL is always a re-serialized, validated http(s) URL.
type GatewayOrderResult struct {
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"payment_url"`
}

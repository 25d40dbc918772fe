package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
	"github.com/akylbek/payment-system/recharge-gateway/internal/validator"
)

func TestValidate_WellFormedRequests(t *testing.T) {
	tests := []struct {
		name   string
		req    models.CreateOrderRequest
		amount string
	}{
		{
			name:   "string amount",
			req:    models.CreateOrderRequest{CustomerMobile: "9876543210", Amount: models.Amount("100")},
			amount: "100",
		},
		{
			name:   "numeric amount",
			req:    models.CreateOrderRequest{CustomerMobile: "9876543210", Amount: models.Amount("100.50")},
			amount: "100.5",
		},
		{
			name:   "with remark",
			req:    models.CreateOrderRequest{CustomerMobile: "0123456789", Amount: models.Amount("1"), Remark1: "prepaid"},
			amount: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := validator.Validate(tt.req)
			require.NoError(t, err)
			require.Equal(t, tt.req.CustomerMobile, normalized.CustomerMobile)
			require.Equal(t, tt.amount, normalized.Amount.String())
			require.Equal(t, tt.req.Remark1, normalized.Remark1)
		})
	}
}

func TestValidate_RejectsMalformedRequests(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateOrderRequest
		kind validator.Kind
	}{
		{
			name: "missing mobile",
			req:  models.CreateOrderRequest{Amount: models.Amount("100")},
			kind: validator.KindMissingField,
		},
		{
			name: "missing amount",
			req:  models.CreateOrderRequest{CustomerMobile: "9876543210"},
			kind: validator.KindMissingField,
		},
		{
			name: "short mobile",
			req:  models.CreateOrderRequest{CustomerMobile: "98765", Amount: models.Amount("100")},
			kind: validator.KindInvalidMobile,
		},
		{
			name: "long mobile",
			req:  models.CreateOrderRequest{CustomerMobile: "98765432101", Amount: models.Amount("100")},
			kind: validator.KindInvalidMobile,
		},
		{
			name: "mobile with letters",
			req:  models.CreateOrderRequest{CustomerMobile: "98765abcde", Amount: models.Amount("100")},
			kind: validator.KindInvalidMobile,
		},
		{
			name: "non-numeric amount",
			req:  models.CreateOrderRequest{CustomerMobile: "9876543210", Amount: models.Amount("abc")},
			kind: validator.KindInvalidAmount,
		},
		{
			name: "negative amount",
			req:  models.CreateOrderRequest{CustomerMobile: "9876543210", Amount: models.Amount("-5")},
			kind: validator.KindInvalidAmount,
		},
		{
			name: "zero amount",
			req:  models.CreateOrderRequest{CustomerMobile: "9876543210", Amount: models.Amount("0")},
			kind: validator.KindInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validator.Validate(tt.req)
			require.Error(t, err)

			var vErr *validator.Error
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.kind, vErr.Kind)
			require.NotEmpty(t, vErr.Message)
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// Both fields are bad; the missing-field check runs first.
	_, err := validator.Validate(models.CreateOrderRequest{CustomerMobile: "98765"})

	var vErr *validator.Error
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, validator.KindMissingField, vErr.Kind)
}

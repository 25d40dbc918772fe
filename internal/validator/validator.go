package validator

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/recharge-gateway/internal/models"
)

// Kind distinguishes validation failures for callers that need more than
// the message.
type Kind string

const (
	KindMissingField  Kind = "MISSING_FIELD"
	KindInvalidMobile Kind = "INVALID_MOBILE"
	KindInvalidAmount Kind = "INVALID_AMOUNT"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks an order request against the syntactic rules, first
// failure wins. It has no side effects.
func Validate(req models.CreateOrderRequest) (models.NormalizedOrder, error) {
	if req.CustomerMobile == "" || req.Amount.String() == "" {
		return models.NormalizedOrder{}, &Error{
			Kind:    KindMissingField,
			Message: "Missing required fields: customer_mobile and amount are required",
		}
	}

	if !mobilePattern.MatchString(req.CustomerMobile) {
		return models.NormalizedOrder{}, &Error{
			Kind:    KindInvalidMobile,
			Message: "Invalid mobile number format. Must be 10 digits",
		}
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil || !amount.IsPositive() {
		return models.NormalizedOrder{}, &Error{
			Kind:    KindInvalidAmount,
			Message: "Invalid amount. Must be a positive number",
		}
	}

	return models.NormalizedOrder{
		CustomerMobile: req.CustomerMobile,
		Amount:         amount,
		Remark1:        req.Remark1,
	}, nil
}

package checkoutapi

import (
	"time"
)

type CheckoutStatus string

const (
	CheckoutStatusUndefined CheckoutStatus = ""
	CheckoutStatusSuccess   CheckoutStatus = "success"
	CheckoutStatusFailed    CheckoutStatus = "failed"
	CheckoutStatusPreviewed CheckoutStatus = "previewed"
)

func NewCheckoutContext() CheckoutContext {
	return CheckoutContext{
		CheckoutStatus: CheckoutStatusUndefined,
	}
}

// CheckoutContext is what the web service remembers about one attempt.
type CheckoutContext struct {
	BasketUID       string
	CreatedAt       time.Time
	LastModified    *time.Time
	Reference       string
	PaymentProvider string
	PaymentMethod   string
	TransactionCode string
	CheckoutStatus  CheckoutStatus
	ErrorCodes      []string
}

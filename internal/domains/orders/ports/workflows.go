package ports

import (
	"context"

	"github.com/google/uuid"
)

// PaymentConfirmation is the payment callback handed to fulfillment.
type PaymentConfirmation struct {
	OrderID       uuid.UUID
	Succeeded     bool
	TransactionID string
}

// Fulfillment applies a payment confirmation and, where the adapter
// supports it, schedules the follow-up shipping of the order.
type Fulfillment interface {
	ConfirmPayment(ctx context.Context, confirmation PaymentConfirmation) (uuid.UUID, error)
}

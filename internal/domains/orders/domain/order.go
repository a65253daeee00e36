package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status enumerates the order payment lifecycle.
type Status string

const (
	StatusCreated        Status = "created"
	StatusPreparing      Status = "preparing"
	StatusPaymentRefused Status = "payment_refused"
	StatusShipped        Status = "shipped"
)

var (
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// IsValid reports whether the status is one of the four lifecycle values.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPreparing, StatusPaymentRefused, StatusShipped:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the lifecycle ends at this status.
func (s Status) IsTerminal() bool {
	return s == StatusPaymentRefused || s == StatusShipped
}

// CanTransition reports whether the lifecycle permits moving to next.
// Preparing -> Preparing is allowed so a successful payment confirmation
// can be re-applied without changing the observable end state.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusCreated:
		return next == StatusPreparing || next == StatusPaymentRefused
	case StatusPreparing:
		return next == StatusPreparing || next == StatusShipped
	default:
		return false
	}
}

// Order models a customer purchase moving through the payment lifecycle.
// TransactionID is set exactly when a successful payment moved the order
// to Preparing or later.
type Order struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CreatedAt     time.Time
	Status        Status
	TransactionID *string
}

// NewOrder constructs a freshly submitted order.
func NewOrder(customerID uuid.UUID) *Order {
	return &Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		CreatedAt:  time.Now().UTC(),
		Status:     StatusCreated,
	}
}

// OrderLine records one article of an order. UnitPrice is the price
// snapshotted from the catalog at submission time; it is never recomputed
// from the current article record.
type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ArticleID uuid.UUID
	Quantity  int32
	UnitPrice decimal.Decimal
}

// NewOrderLine validates and constructs an order line.
func NewOrderLine(orderID, articleID uuid.UUID, quantity int32, unitPrice decimal.Decimal) (*OrderLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &OrderLine{
		ID:        uuid.New(),
		OrderID:   orderID,
		ArticleID: articleID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

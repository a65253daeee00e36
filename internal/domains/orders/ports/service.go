package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
)

// LineRequest is one requested article of an order submission. The caller
// never supplies a price.
type LineRequest struct {
	ArticleID uuid.UUID
	Quantity  int32
}

// PaymentOutcome is the result reported by the payment provider.
type PaymentOutcome struct {
	Succeeded     bool
	TransactionID string
}

// LineProjection joins an order line with the current catalog display
// fields. UnitPrice is the snapshot taken at submission, not the article's
// current price.
type LineProjection struct {
	ArticleID   uuid.UUID
	Name        string
	Description string
	Quantity    int32
	UnitPrice   decimal.Decimal
}

// OrderProjection is an order with its resolved lines.
type OrderProjection struct {
	Order domain.Order
	Lines []LineProjection
}

// Service exposes the order workflow use cases to adapters.
type Service interface {
	SubmitOrder(ctx context.Context, customerID uuid.UUID, lines []LineRequest) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, outcome PaymentOutcome) (uuid.UUID, error)
	ShipOrder(ctx context.Context, orderID uuid.UUID) error
	QueryOrders(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]OrderProjection, error)
}

// Catalog is the read-only article lookup the workflow snapshots prices
// from. Implementations report a missing article with the catalog ports
// not-found sentinel.
type Catalog interface {
	ArticleByID(ctx context.Context, id uuid.UUID) (*catalogdomain.Article, error)
}

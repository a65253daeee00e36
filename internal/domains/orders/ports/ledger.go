package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
)

var (
	// ErrNotFound signals the order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrInsertCountMismatch signals a ledger write affected an unexpected
	// number of rows, which points at a storage or driver inconsistency.
	ErrInsertCountMismatch = errors.New("unexpected affected row count")
)

// LedgerTx exposes the mutating ledger operations bound to one open
// atomic transaction. All writes issued through the same LedgerTx commit
// together or not at all.
type LedgerTx interface {
	// InsertOrder creates an order with status Created and no transaction id.
	InsertOrder(ctx context.Context, customerID uuid.UUID) (*domain.Order, error)
	// InsertLine creates an order line with the given snapshotted unit price.
	InsertLine(ctx context.Context, orderID, articleID uuid.UUID, quantity int32, unitPrice decimal.Decimal) (*domain.OrderLine, error)
	// UpdateStatus writes the status unconditionally; transition legality is
	// the workflow's responsibility.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) error
	// UpdateTransactionID writes the payment transaction id unconditionally.
	UpdateTransactionID(ctx context.Context, orderID uuid.UUID, transactionID string) error
}

// Ledger owns order and order-line rows.
type Ledger interface {
	// InTx runs fn inside a single atomic transaction. A non-nil error from
	// fn aborts the transaction and no write becomes observable.
	InTx(ctx context.Context, fn func(tx LedgerTx) error) error

	FindByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	FindLinesByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OrderLine, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]domain.Order, error)
}

package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Article is a catalog item. Its price is read at order submission and
// copied into the order line; historical orders never reference it live.
type Article struct {
	ID          uuid.UUID
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

package mapper

import (
	"time"

	ordersdomain "github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

// Order represents the transport-layer order header.
type Order struct {
	ID            string
	CustomerID    string
	CreatedAt     time.Time
	Status        string
	TransactionID *string
}

// OrderLine represents a display line with its price snapshot.
type OrderLine struct {
	ArticleID   string
	Name        string
	Description string
	Quantity    int32
	UnitPrice   string
}

// OrderDetails joins an order header with its resolved lines.
type OrderDetails struct {
	Order Order
	Lines []OrderLine
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:            order.ID.String(),
		CustomerID:    order.CustomerID.String(),
		CreatedAt:     order.CreatedAt,
		Status:        string(order.Status),
		TransactionID: order.TransactionID,
	}
}

// FromProjection converts a projected order with lines.
func FromProjection(projection ordersports.OrderProjection) OrderDetails {
	lines := make([]OrderLine, 0, len(projection.Lines))
	for _, line := range projection.Lines {
		lines = append(lines, OrderLine{
			ArticleID:   line.ArticleID.String(),
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
		})
	}
	order := projection.Order
	return OrderDetails{
		Order: FromDomainOrder(&order),
		Lines: lines,
	}
}

// FromProjections converts a page of projected orders.
func FromProjections(projections []ordersports.OrderProjection) []OrderDetails {
	result := make([]OrderDetails, 0, len(projections))
	for _, projection := range projections {
		result = append(result, FromProjection(projection))
	}
	return result
}

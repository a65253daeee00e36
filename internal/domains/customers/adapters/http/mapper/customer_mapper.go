package mapper

import (
	"time"

	customersdomain "github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
)

// Customer represents the transport-layer shape used by the HTTP handlers.
type Customer struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// FromDomainCustomer converts a domain customer to the transport
// representation. Credentials never cross this boundary.
func FromDomainCustomer(customer *customersdomain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{
		ID:        customer.ID.String(),
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

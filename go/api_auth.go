package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerhttpmapper "github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/http/mapper"
	customersports "github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
)

// AuthAPI implements the account section.
type AuthAPI struct {
	service customersports.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(service customersports.Service) AuthAPI {
	return AuthAPI{service: service}
}

func fromTransportCustomer(customer customerhttpmapper.Customer) Customer {
	return Customer{
		Id:        customer.ID,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

// Post /v1/auth/signup
// Register a new customer account
func (api *AuthAPI) SignUp(c *gin.Context) {
	var payload Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := api.service.SignUp(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromTransportCustomer(customerhttpmapper.FromDomainCustomer(customer)))
}

// Post /v1/auth/signin
// Authenticate an existing customer
func (api *AuthAPI) SignIn(c *gin.Context) {
	var payload Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := api.service.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromTransportCustomer(customerhttpmapper.FromDomainCustomer(customer)))
}

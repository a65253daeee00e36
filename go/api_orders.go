package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderhttpmapper "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

// OrdersAPI implements the order workflow section.
type OrdersAPI struct {
	service     ordersports.Service
	fulfillment ordersports.Fulfillment
}

// NewOrdersAPI wires dependencies. The fulfillment orchestrator owns
// payment confirmations so shipping can be scheduled durably.
func NewOrdersAPI(service ordersports.Service, fulfillment ordersports.Fulfillment) OrdersAPI {
	return OrdersAPI{service: service, fulfillment: fulfillment}
}

func fromTransportOrder(order orderhttpmapper.Order) Order {
	return Order{
		Id:            order.ID,
		CustomerId:    order.CustomerID,
		CreatedAt:     order.CreatedAt,
		Status:        order.Status,
		TransactionId: order.TransactionID,
	}
}

func fromTransportOrderDetails(details []orderhttpmapper.OrderDetails) []OrderDetails {
	result := make([]OrderDetails, 0, len(details))
	for _, detail := range details {
		lines := make([]OrderLine, 0, len(detail.Lines))
		for _, line := range detail.Lines {
			lines = append(lines, OrderLine{
				ArticleId:   line.ArticleID,
				Name:        line.Name,
				Description: line.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
			})
		}
		result = append(result, OrderDetails{Order: fromTransportOrder(detail.Order), Lines: lines})
	}
	return result
}

// Post /v1/orders
// Submit an order with its lines in one transaction
func (api *OrdersAPI) SubmitOrder(c *gin.Context) {
	var payload OrderSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	customerID, err := uuid.Parse(payload.CustomerId)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	lines := make([]ordersports.LineRequest, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		articleID, err := uuid.Parse(line.ArticleId)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		lines = append(lines, ordersports.LineRequest{ArticleID: articleID, Quantity: line.Quantity})
	}
	order, err := api.service.SubmitOrder(c.Request.Context(), customerID, lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromTransportOrder(orderhttpmapper.FromDomainOrder(order)))
}

// Post /v1/orders/:orderId/payment
// Apply the payment provider callback for an order
func (api *OrdersAPI) ConfirmPayment(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var payload PaymentConfirmation
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	confirmedID, err := api.fulfillment.ConfirmPayment(c.Request.Context(), ordersports.PaymentConfirmation{
		OrderID:       orderID,
		Succeeded:     payload.Succeeded,
		TransactionID: payload.TransactionId,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": confirmedID.String()})
}

// Get /v1/customers/:customerId/orders
// List a customer's orders with their lines
func (api *OrdersAPI) QueryOrders(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	page, pageSize, err := pageParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	projections, err := api.service.QueryOrders(c.Request.Context(), customerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromTransportOrderDetails(orderhttpmapper.FromProjections(projections)))
}

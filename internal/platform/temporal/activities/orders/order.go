package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

const (
	// ShipOrderActivityName moves a paid order to shipped.
	ShipOrderActivityName = "orders.activities.ShipOrder"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the order service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// ShipOrder marks the order shipped through the application service, which
// enforces the status lifecycle.
func (a *Activities) ShipOrder(ctx context.Context, orderID uuid.UUID) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("ship order activity not initialized", "orderId", orderID)
		return errors.New("ship order activity not initialized")
	}
	logger.Info("ShipOrder activity started", "orderId", orderID)
	if err := a.service.ShipOrder(ctx, orderID); err != nil {
		logger.Error("ShipOrder activity failed", "orderId", orderID, "error", err)
		return err
	}
	logger.Info("ShipOrder activity completed", "orderId", orderID)
	return nil
}

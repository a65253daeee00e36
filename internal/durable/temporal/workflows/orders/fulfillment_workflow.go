package orders

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderactivities "github.com/Apurer/go-gin-order-server/internal/platform/temporal/activities/orders"
)

const (
	// FulfillmentWorkflowName is the public identifier for registering the workflow.
	FulfillmentWorkflowName = "orders.workflows.Fulfillment"
	// FulfillmentTaskQueue is the queue consumed by the worker processing order workflows.
	FulfillmentTaskQueue = "ORDER_FULFILLMENT"
)

// FulfillmentWorkflowInput captures the payload required to fulfil a paid order.
type FulfillmentWorkflowInput struct {
	OrderID   uuid.UUID
	ShipDelay time.Duration
	TraceID   string
}

// FulfillmentWorkflow waits out the warehouse handling delay and then marks
// the order shipped. Started once per order after a successful payment.
func FulfillmentWorkflow(ctx workflow.Context, input FulfillmentWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("FulfillmentWorkflow started", withTraceID(input.TraceID, "orderId", input.OrderID)...)

	if input.ShipDelay > 0 {
		if err := workflow.Sleep(ctx, input.ShipDelay); err != nil {
			return err
		}
	}

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, orderactivities.ShipOrderActivityName, input.OrderID).Get(ctx, nil); err != nil {
		logger.Error("FulfillmentWorkflow failed", withTraceID(input.TraceID, "orderId", input.OrderID, "error", err)...)
		return err
	}
	logger.Info("FulfillmentWorkflow completed", withTraceID(input.TraceID, "orderId", input.OrderID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}

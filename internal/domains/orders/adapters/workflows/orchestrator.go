package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-gin-order-server/internal/durable/temporal/workflows/orders"
)

var (
	_ ports.Fulfillment = (*TemporalFulfillment)(nil)
	_ ports.Fulfillment = (*InlineFulfillment)(nil)
)

// TemporalFulfillment confirms payments synchronously and schedules the
// shipping workflow on a Temporal cluster for successful ones.
type TemporalFulfillment struct {
	service   ports.Service
	client    client.Client
	taskQueue string
	shipDelay time.Duration
}

// NewTemporalFulfillment wires a Temporal client into the fulfillment flow.
func NewTemporalFulfillment(service ports.Service, c client.Client, shipDelay time.Duration) *TemporalFulfillment {
	return &TemporalFulfillment{
		service:   service,
		client:    c,
		taskQueue: orderworkflows.FulfillmentTaskQueue,
		shipDelay: shipDelay,
	}
}

// ConfirmPayment applies the payment outcome to the ledger first, so the
// provider callback is acknowledged even when the cluster is unreachable.
// The shipping workflow id is derived from the order id, which makes a
// re-delivered callback a no-op on the cluster side.
func (o *TemporalFulfillment) ConfirmPayment(ctx context.Context, confirmation ports.PaymentConfirmation) (uuid.UUID, error) {
	if o == nil || o.service == nil || o.client == nil {
		return uuid.Nil, errors.New("temporal fulfillment not configured")
	}
	orderID, err := o.service.ConfirmPayment(ctx, confirmation.OrderID, ports.PaymentOutcome{
		Succeeded:     confirmation.Succeeded,
		TransactionID: confirmation.TransactionID,
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !confirmation.Succeeded {
		return orderID, nil
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-fulfillment-%s", orderID),
		TaskQueue: o.taskQueue,
	}
	_, err = o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.FulfillmentWorkflow,
		orderworkflows.FulfillmentWorkflowInput{
			OrderID:   orderID,
			ShipDelay: o.shipDelay,
			TraceID:   workflowTraceID(ctx),
		},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return orderID, nil
		}
		return uuid.Nil, err
	}
	return orderID, nil
}

// InlineFulfillment confirms payments without durable orchestration, useful
// for tests or dev fallbacks. Shipping stays manual in this mode.
type InlineFulfillment struct {
	service ports.Service
}

// NewInlineFulfillment wraps the order service for synchronous execution.
func NewInlineFulfillment(service ports.Service) *InlineFulfillment {
	return &InlineFulfillment{service: service}
}

func (o *InlineFulfillment) ConfirmPayment(ctx context.Context, confirmation ports.PaymentConfirmation) (uuid.UUID, error) {
	if o == nil || o.service == nil {
		return uuid.Nil, errors.New("inline fulfillment not configured")
	}
	return o.service.ConfirmPayment(ctx, confirmation.OrderID, ports.PaymentOutcome{
		Succeeded:     confirmation.Succeeded,
		TransactionID: confirmation.TransactionID,
	})
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}

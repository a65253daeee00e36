package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(nil, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) SubmitOrder(ctx context.Context, customerID uuid.UUID, lines []ordersports.LineRequest) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.SubmitOrder",
		trace.WithAttributes(attribute.String("customer.id", customerID.String()), attribute.Int("order.line_count", len(lines))))
	defer span.End()

	s.logInfo(ctx, "submitting order", slog.String("customer.id", customerID.String()), slog.Int("order.line_count", len(lines)))
	result, err := s.inner.SubmitOrder(ctx, customerID, lines)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit order", slog.String("customer.id", customerID.String()))
	}
	s.metrics.recordSubmitted(ctx)
	s.logInfo(ctx, "order submitted", slog.String("order.id", result.ID.String()), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) ConfirmPayment(ctx context.Context, orderID uuid.UUID, outcome ordersports.PaymentOutcome) (uuid.UUID, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ConfirmPayment",
		trace.WithAttributes(attribute.String("order.id", orderID.String()), attribute.Bool("payment.succeeded", outcome.Succeeded)))
	defer span.End()

	s.logInfo(ctx, "confirming payment", slog.String("order.id", orderID.String()), slog.Bool("payment.succeeded", outcome.Succeeded))
	confirmedID, err := s.inner.ConfirmPayment(ctx, orderID, outcome)
	if err != nil {
		return uuid.Nil, s.handleError(ctx, span, err, "failed to confirm payment", slog.String("order.id", orderID.String()))
	}
	s.metrics.recordConfirmed(ctx, outcome.Succeeded)
	s.logInfo(ctx, "payment confirmed", slog.String("order.id", confirmedID.String()), slog.Bool("payment.succeeded", outcome.Succeeded))
	return confirmedID, nil
}

func (s *Service) ShipOrder(ctx context.Context, orderID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.ShipOrder", trace.WithAttributes(attribute.String("order.id", orderID.String())))
	defer span.End()

	s.logInfo(ctx, "shipping order", slog.String("order.id", orderID.String()))
	if err := s.inner.ShipOrder(ctx, orderID); err != nil {
		return s.handleError(ctx, span, err, "failed to ship order", slog.String("order.id", orderID.String()))
	}
	s.metrics.recordShipped(ctx)
	s.logInfo(ctx, "order shipped", slog.String("order.id", orderID.String()))
	return nil
}

func (s *Service) QueryOrders(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]ordersports.OrderProjection, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.QueryOrders",
		trace.WithAttributes(attribute.String("customer.id", customerID.String()), attribute.Int("page.offset", offset), attribute.Int("page.limit", limit)))
	defer span.End()

	result, err := s.inner.QueryOrders(ctx, customerID, offset, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to query orders", slog.String("customer.id", customerID.String()))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersSubmitted   metric.Int64Counter
	paymentsConfirmed metric.Int64Counter
	ordersShipped     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersSubmitted, _ := m.Int64Counter("orders.service.orders_submitted", metric.WithDescription("Number of orders submitted"))
	paymentsConfirmed, _ := m.Int64Counter("orders.service.payments_confirmed", metric.WithDescription("Number of payment confirmations applied"))
	ordersShipped, _ := m.Int64Counter("orders.service.orders_shipped", metric.WithDescription("Number of orders shipped"))
	return serviceMetrics{ordersSubmitted: ordersSubmitted, paymentsConfirmed: paymentsConfirmed, ordersShipped: ordersShipped}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context) {
	if m.ordersSubmitted != nil {
		m.ordersSubmitted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordConfirmed(ctx context.Context, succeeded bool) {
	if m.paymentsConfirmed != nil {
		m.paymentsConfirmed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("payment.succeeded", succeeded)))
	}
}

func (m serviceMetrics) recordShipped(ctx context.Context) {
	if m.ordersShipped != nil {
		m.ordersShipped.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)

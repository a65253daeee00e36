package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	customersdomain "github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
	customersports "github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
)

const tracerName = "github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/observability/service"

// Service decorates the customer service with tracing, logging, and metrics.
// Email addresses and passwords never reach spans or logs; only the opaque
// customer id does.
type Service struct {
	inner   customersports.Service
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

// New wraps the core customer service.
func New(inner customersports.Service, opts ...Option) customersports.Service {
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

func (s *Service) SignUp(ctx context.Context, email, password string) (*customersdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.SignUp")
	defer span.End()

	result, err := s.inner.SignUp(ctx, email, password)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to sign up customer")
	}
	s.metrics.recordSignUp(ctx)
	s.logInfo(ctx, "customer signed up", slog.String("customer.id", result.ID.String()))
	return result, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*customersdomain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "CustomerService.SignIn")
	defer span.End()

	result, err := s.inner.SignIn(ctx, email, password)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to sign in customer")
	}
	span.SetAttributes(attribute.String("customer.id", result.ID.String()))
	s.logInfo(ctx, "customer signed in", slog.String("customer.id", result.ID.String()))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, msg, slog.String("error", err.Error()))
	}
	return err
}

type serviceMetrics struct {
	signUps metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	signUps, _ := m.Int64Counter("customers.service.sign_ups", metric.WithDescription("Number of customer sign-ups"))
	return serviceMetrics{signUps: signUps}
}

func (m serviceMetrics) recordSignUp(ctx context.Context) {
	if m.signUps != nil {
		m.signUps.Add(ctx, 1)
	}
}

var _ customersports.Service = (*Service)(nil)

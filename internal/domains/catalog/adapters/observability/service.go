package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing and error logging.
// Catalog reads are high volume so there is no per-call info logging.
type Service struct {
	inner  catalogports.Service
	tracer trace.Tracer
	logger *slog.Logger
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

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
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

func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*catalogdomain.Article, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ArticleByID", trace.WithAttributes(attribute.String("article.id", id.String())))
	defer span.End()

	result, err := s.inner.ArticleByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load article")
	}
	return result, nil
}

func (s *Service) SearchArticles(ctx context.Context, query *string, offset, limit int) ([]catalogdomain.Article, error) {
	attrs := []attribute.KeyValue{attribute.Int("page.offset", offset), attribute.Int("page.limit", limit)}
	if query != nil {
		attrs = append(attrs, attribute.String("article.query", *query))
	}
	ctx, span := s.tracer.Start(ctx, "CatalogService.SearchArticles", trace.WithAttributes(attrs...))
	defer span.End()

	result, err := s.inner.SearchArticles(ctx, query, offset, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search articles")
	}
	span.SetAttributes(attribute.Int("articles.count", len(result)))
	return result, nil
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

var _ catalogports.Service = (*Service)(nil)

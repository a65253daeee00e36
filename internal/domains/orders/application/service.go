package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	catalogports "github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

// Service orchestrates the order workflow: submission, payment
// confirmation, shipping, and order queries. All cross-table writes go
// through a single ledger transaction.
type Service struct {
	ledger  ports.Ledger
	catalog ports.Catalog
	logger  *slog.Logger
}

type Option func(*Service)

// WithLogger attaches a logger used for degraded-display warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(ledger ports.Ledger, catalog ports.Catalog, opts ...Option) *Service {
	s := &Service{
		ledger:  ledger,
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SubmitOrder creates an order and its lines in one atomic transaction.
// Prices are snapshotted from the catalog at this moment; any unknown
// article aborts the whole submission and nothing persists.
func (s *Service) SubmitOrder(ctx context.Context, customerID uuid.UUID, lines []ports.LineRequest) (*domain.Order, error) {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: article %s", domain.ErrInvalidQuantity, line.ArticleID)
		}
	}

	var order *domain.Order
	err := s.ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		inserted, err := tx.InsertOrder(ctx, customerID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			article, err := s.catalog.ArticleByID(ctx, line.ArticleID)
			if err != nil {
				if errors.Is(err, catalogports.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrInvalidArticle, line.ArticleID)
				}
				return err
			}
			if _, err := tx.InsertLine(ctx, inserted.ID, article.ID, line.Quantity, article.UnitPrice); err != nil {
				return err
			}
		}
		order = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ConfirmPayment applies a payment provider callback. The current status
// is loaded first and the transition checked against the lifecycle before
// any write, for both outcomes. The successful branch writes status and
// transaction id in one transaction.
func (s *Service) ConfirmPayment(ctx context.Context, orderID uuid.UUID, outcome ports.PaymentOutcome) (uuid.UUID, error) {
	order, err := s.ledger.FindByID(ctx, orderID)
	if err != nil {
		return uuid.Nil, err
	}

	next := domain.StatusPaymentRefused
	if outcome.Succeeded {
		next = domain.StatusPreparing
	}
	if !order.Status.CanTransition(next) {
		return uuid.Nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}

	if !outcome.Succeeded {
		err := s.ledger.InTx(ctx, func(tx ports.LedgerTx) error {
			return tx.UpdateStatus(ctx, orderID, domain.StatusPaymentRefused)
		})
		if err != nil {
			return uuid.Nil, err
		}
		return order.ID, nil
	}

	err = s.ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		if err := tx.UpdateStatus(ctx, orderID, domain.StatusPreparing); err != nil {
			return err
		}
		return tx.UpdateTransactionID(ctx, orderID, outcome.TransactionID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return order.ID, nil
}

// ShipOrder moves a paid order to Shipped.
func (s *Service) ShipOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.ledger.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransition(domain.StatusShipped) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, domain.StatusShipped)
	}
	return s.ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		return tx.UpdateStatus(ctx, orderID, domain.StatusShipped)
	})
}

// QueryOrders returns a page of a customer's orders with their lines
// resolved against the catalog for display. The snapshotted line price is
// authoritative; lines whose article has since vanished are skipped and
// logged so order display degrades instead of failing.
func (s *Service) QueryOrders(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]ports.OrderProjection, error) {
	orders, err := s.ledger.FindByCustomer(ctx, customerID, offset, limit)
	if err != nil {
		return nil, err
	}

	projections := make([]ports.OrderProjection, 0, len(orders))
	for _, order := range orders {
		lines, err := s.ledger.FindLinesByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		projected := make([]ports.LineProjection, 0, len(lines))
		for _, line := range lines {
			article, err := s.catalog.ArticleByID(ctx, line.ArticleID)
			if err != nil {
				if errors.Is(err, catalogports.ErrNotFound) {
					s.logger.LogAttrs(ctx, slog.LevelWarn, "article missing for order line",
						slog.String("order.id", order.ID.String()),
						slog.String("article.id", line.ArticleID.String()))
					continue
				}
				return nil, err
			}
			projected = append(projected, ports.LineProjection{
				ArticleID:   article.ID,
				Name:        article.Name,
				Description: article.Description,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
			})
		}
		projections = append(projections, ports.OrderProjection{Order: order, Lines: projected})
	}
	return projections, nil
}

var _ ports.Service = (*Service)(nil)

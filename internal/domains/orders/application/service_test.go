package application_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Apurer/go-gin-order-server/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/application"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

type fixture struct {
	ledger  *memory.Ledger
	catalog *catalogmemory.Repository
	svc     *application.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ledger := memory.NewLedger()
	catalogRepo := catalogmemory.NewRepository()
	return &fixture{
		ledger:  ledger,
		catalog: catalogRepo,
		svc:     application.NewService(ledger, catalogapp.NewService(catalogRepo)),
	}
}

func (f *fixture) addArticle(name, price string) catalogdomain.Article {
	article := catalogdomain.Article{
		ID:          uuid.New(),
		Name:        name,
		Description: "about " + name,
		UnitPrice:   decimal.RequireFromString(price),
	}
	f.catalog.Add(article)
	return article
}

func TestSubmitOrderSnapshotsPrices(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	cup := f.addArticle("cup", "2.50")
	customerID := uuid.New()

	order, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: tea.ID, Quantity: 3},
		{ArticleID: cup.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Nil(t, order.TransactionID)

	lines, err := f.ledger.FindLinesByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.True(t, lines[1].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, int32(1), lines[1].Quantity)
}

func TestSubmitOrderUnknownArticleAbortsEverything(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	customerID := uuid.New()

	// The unknown article sits after a valid line, so the order header and
	// the first line have already been written inside the transaction.
	_, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: tea.ID, Quantity: 2},
		{ArticleID: uuid.New(), Quantity: 1},
	})
	require.ErrorIs(t, err, application.ErrInvalidArticle)

	projections, err := f.svc.QueryOrders(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, projections, "aborted submission must leave no trace")
}

func TestSubmitOrderUnknownArticleFirstPosition(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	customerID := uuid.New()

	_, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: uuid.New(), Quantity: 1},
		{ArticleID: tea.ID, Quantity: 2},
	})
	require.ErrorIs(t, err, application.ErrInvalidArticle)

	projections, err := f.svc.QueryOrders(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, projections)
}

func TestSubmitOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")

	for _, quantity := range []int32{0, -1} {
		_, err := f.svc.SubmitOrder(context.Background(), uuid.New(), []ports.LineRequest{
			{ArticleID: tea.ID, Quantity: quantity},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity %d", quantity)
	}
}

func TestSubmitOrderWithoutLines(t *testing.T) {
	f := newFixture(t)
	customerID := uuid.New()

	order, err := f.svc.SubmitOrder(context.Background(), customerID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, order.Status)

	projections, err := f.svc.QueryOrders(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	require.Len(t, projections, 1)
	assert.Empty(t, projections[0].Lines)
}

func TestPriceChangeDoesNotRewriteHistory(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	customerID := uuid.New()

	order, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: tea.ID, Quantity: 1},
	})
	require.NoError(t, err)

	tea.UnitPrice = decimal.RequireFromString("99.99")
	f.catalog.Add(tea)

	projections, err := f.svc.QueryOrders(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	require.Len(t, projections, 1)
	require.Len(t, projections[0].Lines, 1)
	assert.True(t, projections[0].Lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")),
		"displayed price must be the submission snapshot")

	lines, err := f.ledger.FindLinesByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestConfirmPaymentSucceeded(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	order := f.submit(t, uuid.New(), tea.ID)

	confirmedID, err := f.svc.ConfirmPayment(context.Background(), order.ID, ports.PaymentOutcome{
		Succeeded:     true,
		TransactionID: "tx-1",
	})
	require.NoError(t, err)
	assert.Equal(t, order.ID, confirmedID)

	stored, err := f.ledger.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, stored.Status)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, "tx-1", *stored.TransactionID)
}

func TestConfirmPaymentSucceededIsIdempotent(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	order := f.submit(t, uuid.New(), tea.ID)

	outcome := ports.PaymentOutcome{Succeeded: true, TransactionID: "tx-1"}
	_, err := f.svc.ConfirmPayment(context.Background(), order.ID, outcome)
	require.NoError(t, err)
	_, err = f.svc.ConfirmPayment(context.Background(), order.ID, outcome)
	require.NoError(t, err, "re-delivered provider callback must not fail")

	stored, err := f.ledger.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, stored.Status)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, "tx-1", *stored.TransactionID)
}

func TestConfirmPaymentFailed(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	order := f.submit(t, uuid.New(), tea.ID)

	_, err := f.svc.ConfirmPayment(context.Background(), order.ID, ports.PaymentOutcome{Succeeded: false})
	require.NoError(t, err)

	stored, err := f.ledger.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentRefused, stored.Status)
	assert.Nil(t, stored.TransactionID)
}

func TestConfirmPaymentFailedChecksLifecycleFirst(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")

	// A refused callback must not stomp on terminal or paid states.
	for _, terminal := range []domain.Status{domain.StatusShipped, domain.StatusPaymentRefused} {
		order := f.submit(t, uuid.New(), tea.ID)
		f.forceStatus(t, order.ID, terminal)

		_, err := f.svc.ConfirmPayment(context.Background(), order.ID, ports.PaymentOutcome{Succeeded: false})
		require.ErrorIs(t, err, application.ErrIllegalTransition, "from %s", terminal)

		stored, err := f.ledger.FindByID(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, terminal, stored.Status)
	}
}

func TestConfirmPaymentSucceededRejectedFromTerminalStates(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")

	for _, terminal := range []domain.Status{domain.StatusShipped, domain.StatusPaymentRefused} {
		order := f.submit(t, uuid.New(), tea.ID)
		f.forceStatus(t, order.ID, terminal)

		_, err := f.svc.ConfirmPayment(context.Background(), order.ID, ports.PaymentOutcome{Succeeded: true, TransactionID: "tx-9"})
		require.ErrorIs(t, err, application.ErrIllegalTransition, "from %s", terminal)
	}
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ConfirmPayment(context.Background(), uuid.New(), ports.PaymentOutcome{Succeeded: true, TransactionID: "tx-1"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestShipOrder(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	order := f.submit(t, uuid.New(), tea.ID)

	_, err := f.svc.ConfirmPayment(context.Background(), order.ID, ports.PaymentOutcome{Succeeded: true, TransactionID: "tx-1"})
	require.NoError(t, err)
	require.NoError(t, f.svc.ShipOrder(context.Background(), order.ID))

	stored, err := f.ledger.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, stored.Status)
}

func TestShipOrderRequiresPreparing(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	order := f.submit(t, uuid.New(), tea.ID)

	err := f.svc.ShipOrder(context.Background(), order.ID)
	assert.ErrorIs(t, err, application.ErrIllegalTransition, "unpaid order cannot ship")
}

func TestQueryOrdersSkipsVanishedArticles(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	cup := f.addArticle("cup", "2.50")
	customerID := uuid.New()

	_, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: tea.ID, Quantity: 1},
		{ArticleID: cup.ID, Quantity: 2},
	})
	require.NoError(t, err)

	f.catalog.Remove(tea.ID)

	projections, err := f.svc.QueryOrders(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	require.Len(t, projections, 1)
	require.Len(t, projections[0].Lines, 1, "the vanished article's line is skipped")
	assert.Equal(t, cup.ID, projections[0].Lines[0].ArticleID)
}

func TestQueryOrdersPagination(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	customerID := uuid.New()

	var submitted []uuid.UUID
	for i := 0; i < 5; i++ {
		order := f.submit(t, customerID, tea.ID)
		submitted = append(submitted, order.ID)
	}

	first, err := f.svc.QueryOrders(context.Background(), customerID, 0, 2)
	require.NoError(t, err)
	second, err := f.svc.QueryOrders(context.Background(), customerID, 2, 2)
	require.NoError(t, err)
	third, err := f.svc.QueryOrders(context.Background(), customerID, 4, 2)
	require.NoError(t, err)

	var paged []uuid.UUID
	for _, projection := range append(append(first, second...), third...) {
		paged = append(paged, projection.Order.ID)
	}
	assert.Equal(t, submitted, paged, "pages must cover every order exactly once, in order")
}

func TestQueryOrdersIsolatesCustomers(t *testing.T) {
	f := newFixture(t)
	tea := f.addArticle("green tea", "10.00")
	alice := uuid.New()
	bob := uuid.New()
	f.submit(t, alice, tea.ID)
	f.submit(t, bob, tea.ID)

	projections, err := f.svc.QueryOrders(context.Background(), alice, 0, 10)
	require.NoError(t, err)
	require.Len(t, projections, 1)
	assert.Equal(t, alice, projections[0].Order.CustomerID)
}

func (f *fixture) submit(t *testing.T, customerID, articleID uuid.UUID) *domain.Order {
	t.Helper()
	order, err := f.svc.SubmitOrder(context.Background(), customerID, []ports.LineRequest{
		{ArticleID: articleID, Quantity: 1},
	})
	require.NoError(t, err)
	return order
}

func (f *fixture) forceStatus(t *testing.T, orderID uuid.UUID, status domain.Status) {
	t.Helper()
	err := f.ledger.InTx(context.Background(), func(tx ports.LedgerTx) error {
		return tx.UpdateStatus(context.Background(), orderID, status)
	})
	require.NoError(t, err)
}

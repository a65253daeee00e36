//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-order-server/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestLedger_SubmitAndFind(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	customerID := uuid.New()

	var orderID uuid.UUID
	err := ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		order, err := tx.InsertOrder(ctx, customerID)
		if err != nil {
			return err
		}
		orderID = order.ID
		_, err = tx.InsertLine(ctx, order.ID, uuid.New(), 3, decimal.RequireFromString("10.00"))
		return err
	})
	require.NoError(t, err)

	fetched, err := ledger.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, fetched.Status)
	assert.Equal(t, customerID, fetched.CustomerID)

	lines, err := ledger.FindLinesByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int32(3), lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestLedger_RollbackOnError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	customerID := uuid.New()

	var orderID uuid.UUID
	err := ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		order, err := tx.InsertOrder(ctx, customerID)
		if err != nil {
			return err
		}
		orderID = order.ID
		if _, err := tx.InsertLine(ctx, order.ID, uuid.New(), 1, decimal.RequireFromString("2.50")); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = ledger.FindByID(ctx, orderID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	orders, err := ledger.FindByCustomer(ctx, customerID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLedger_StatusAndTransactionID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()

	var orderID uuid.UUID
	err := ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		order, err := tx.InsertOrder(ctx, uuid.New())
		if err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	require.NoError(t, err)

	err = ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		if err := tx.UpdateStatus(ctx, orderID, domain.StatusPreparing); err != nil {
			return err
		}
		return tx.UpdateTransactionID(ctx, orderID, "tx-1")
	})
	require.NoError(t, err)

	fetched, err := ledger.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, fetched.Status)
	require.NotNil(t, fetched.TransactionID)
	assert.Equal(t, "tx-1", *fetched.TransactionID)
}

func TestLedger_UpdateMissingOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()

	err := ledger.InTx(ctx, func(tx ports.LedgerTx) error {
		return tx.UpdateStatus(ctx, uuid.New(), domain.StatusPreparing)
	})
	assert.ErrorIs(t, err, ports.ErrInsertCountMismatch)
}

func TestLedger_FindByCustomerPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ledger := NewLedger(db)
	ctx := context.Background()
	customerID := uuid.New()

	for i := 0; i < 5; i++ {
		err := ledger.InTx(ctx, func(tx ports.LedgerTx) error {
			_, err := tx.InsertOrder(ctx, customerID)
			return err
		})
		require.NoError(t, err)
		// created_at is the page sort key, keep inserts apart
		time.Sleep(10 * time.Millisecond)
	}

	seen := map[uuid.UUID]bool{}
	for offset := 0; offset < 5; offset += 2 {
		page, err := ledger.FindByCustomer(ctx, customerID, offset, 2)
		require.NoError(t, err)
		for _, order := range page {
			assert.False(t, seen[order.ID], "order repeated across pages")
			seen[order.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

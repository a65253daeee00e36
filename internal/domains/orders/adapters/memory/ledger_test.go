package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

func TestInTxDiscardsStagedWritesOnError(t *testing.T) {
	ledger := memory.NewLedger()
	customerID := uuid.New()

	err := ledger.InTx(context.Background(), func(tx ports.LedgerTx) error {
		order, err := tx.InsertOrder(context.Background(), customerID)
		require.NoError(t, err)
		_, err = tx.InsertLine(context.Background(), order.ID, uuid.New(), 1, decimal.New(100, -2))
		require.NoError(t, err)
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	orders, err := ledger.FindByCustomer(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	ledger := memory.NewLedger()
	customerID := uuid.New()

	var orderID uuid.UUID
	err := ledger.InTx(context.Background(), func(tx ports.LedgerTx) error {
		order, err := tx.InsertOrder(context.Background(), customerID)
		if err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	require.NoError(t, err)

	stored, err := ledger.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, customerID, stored.CustomerID)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	ledger := memory.NewLedger()

	err := ledger.InTx(context.Background(), func(tx ports.LedgerTx) error {
		return tx.UpdateStatus(context.Background(), uuid.New(), "preparing")
	})
	assert.ErrorIs(t, err, ports.ErrInsertCountMismatch)
}

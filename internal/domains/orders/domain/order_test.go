package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusCreated.CanTransition(StatusPreparing))
	assert.True(t, StatusCreated.CanTransition(StatusPaymentRefused))
	assert.False(t, StatusCreated.CanTransition(StatusShipped))
	assert.False(t, StatusCreated.CanTransition(StatusCreated))

	assert.True(t, StatusPreparing.CanTransition(StatusShipped))
	assert.True(t, StatusPreparing.CanTransition(StatusPreparing), "re-applying a payment confirmation must stay legal")
	assert.False(t, StatusPreparing.CanTransition(StatusPaymentRefused))
}

func TestStatus_TerminalStatesHaveNoExits(t *testing.T) {
	all := []Status{StatusCreated, StatusPreparing, StatusPaymentRefused, StatusShipped}
	for _, terminal := range []Status{StatusPaymentRefused, StatusShipped} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransition(next), "%s -> %s must be refused", terminal, next)
		}
	}
}

func TestNewOrder_StartsCreated(t *testing.T) {
	customerID := uuid.New()
	order := NewOrder(customerID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, StatusCreated, order.Status)
	assert.Nil(t, order.TransactionID)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestNewOrderLine_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewOrderLine(uuid.New(), uuid.New(), 0, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrderLine(uuid.New(), uuid.New(), -3, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	line, err := NewOrderLine(uuid.New(), uuid.New(), 2, decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("2.50")))
}

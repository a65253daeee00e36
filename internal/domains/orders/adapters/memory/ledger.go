package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger is an in-memory order ledger. Writes inside InTx are staged and
// applied only when the transaction callback succeeds, mimicking the
// all-or-nothing commit of the relational store.
type Ledger struct {
	mu      sync.RWMutex
	orders  map[uuid.UUID]*domain.Order
	lines   map[uuid.UUID][]domain.OrderLine
	ordered []uuid.UUID
}

func NewLedger() *Ledger {
	return &Ledger{
		orders: map[uuid.UUID]*domain.Order{},
		lines:  map[uuid.UUID][]domain.OrderLine{},
	}
}

func (l *Ledger) InTx(_ context.Context, fn func(tx ports.LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx := &ledgerTx{
		ledger:       l,
		stagedStatus: map[uuid.UUID]domain.Status{},
		stagedTxIDs:  map[uuid.UUID]string{},
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

func (l *Ledger) FindByID(_ context.Context, orderID uuid.UUID) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	order, ok := l.orders[orderID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (l *Ledger) FindLinesByOrder(_ context.Context, orderID uuid.UUID) ([]domain.OrderLine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines := make([]domain.OrderLine, len(l.lines[orderID]))
	copy(lines, l.lines[orderID])
	return lines, nil
}

func (l *Ledger) FindByCustomer(_ context.Context, customerID uuid.UUID, offset, limit int) ([]domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	matched := make([]domain.Order, 0)
	for _, id := range l.ordered {
		order := l.orders[id]
		if order.CustomerID == customerID {
			matched = append(matched, *order)
		}
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.Order{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// ledgerTx stages writes against the ledger while the enclosing InTx call
// holds the lock. The caller-visible state changes only in apply.
type ledgerTx struct {
	ledger       *Ledger
	stagedOrders []domain.Order
	stagedLines  []domain.OrderLine
	stagedStatus map[uuid.UUID]domain.Status
	stagedTxIDs  map[uuid.UUID]string
}

func (tx *ledgerTx) InsertOrder(_ context.Context, customerID uuid.UUID) (*domain.Order, error) {
	order := domain.NewOrder(customerID)
	tx.stagedOrders = append(tx.stagedOrders, *order)
	return order, nil
}

func (tx *ledgerTx) InsertLine(_ context.Context, orderID, articleID uuid.UUID, quantity int32, unitPrice decimal.Decimal) (*domain.OrderLine, error) {
	line, err := domain.NewOrderLine(orderID, articleID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	tx.stagedLines = append(tx.stagedLines, *line)
	return line, nil
}

func (tx *ledgerTx) UpdateStatus(_ context.Context, orderID uuid.UUID, status domain.Status) error {
	if !tx.rowExists(orderID) {
		return ports.ErrInsertCountMismatch
	}
	tx.stagedStatus[orderID] = status
	return nil
}

func (tx *ledgerTx) UpdateTransactionID(_ context.Context, orderID uuid.UUID, transactionID string) error {
	if !tx.rowExists(orderID) {
		return ports.ErrInsertCountMismatch
	}
	tx.stagedTxIDs[orderID] = transactionID
	return nil
}

func (tx *ledgerTx) rowExists(orderID uuid.UUID) bool {
	if _, ok := tx.ledger.orders[orderID]; ok {
		return true
	}
	for i := range tx.stagedOrders {
		if tx.stagedOrders[i].ID == orderID {
			return true
		}
	}
	return false
}

func (tx *ledgerTx) apply() {
	for i := range tx.stagedOrders {
		order := tx.stagedOrders[i]
		tx.ledger.orders[order.ID] = &order
		tx.ledger.ordered = append(tx.ledger.ordered, order.ID)
	}
	for _, line := range tx.stagedLines {
		tx.ledger.lines[line.OrderID] = append(tx.ledger.lines[line.OrderID], line)
	}
	for orderID, status := range tx.stagedStatus {
		if order, ok := tx.ledger.orders[orderID]; ok {
			order.Status = status
		}
	}
	for orderID, transactionID := range tx.stagedTxIDs {
		if order, ok := tx.ledger.orders[orderID]; ok {
			id := transactionID
			order.TransactionID = &id
		}
	}
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger persists orders and order lines in PostgreSQL using GORM. All
// mutations run through InTx so the workflow composes them into a single
// commit; every write checks the affected-row count against the storage
// engine.
type Ledger struct {
	db *gorm.DB
}

// NewLedger wires a PostgreSQL-backed ledger. Caller manages DB lifecycle.
func NewLedger(db *gorm.DB) *Ledger {
	ledger := &Ledger{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &lineRecord{})
	}
	return ledger
}

type orderRecord struct {
	ID            uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID    uuid.UUID `gorm:"column:customer_id;type:uuid;index"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	Status        string    `gorm:"column:status;type:varchar(32);check:status IN ('created','preparing','payment_refused','shipped')"`
	TransactionID *string   `gorm:"column:transaction_id"`
}

func (orderRecord) TableName() string { return "customer_order" }

type lineRecord struct {
	ID        uuid.UUID       `gorm:"primaryKey;column:id;type:uuid"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;index"`
	ArticleID uuid.UUID       `gorm:"column:article_id;type:uuid"`
	Quantity  int32           `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
}

func (lineRecord) TableName() string { return "order_article" }

// InTx opens one database transaction and rolls it back when fn errors.
func (l *Ledger) InTx(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	if err := l.ensureDB(); err != nil {
		return err
	}
	return l.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&ledgerTx{db: gtx})
	})
}

func (l *Ledger) FindByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := l.db.WithContext(ctx).First(&record, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (l *Ledger) FindLinesByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OrderLine, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var records []lineRecord
	if err := l.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&records).Error; err != nil {
		return nil, err
	}
	lines := make([]domain.OrderLine, 0, len(records))
	for i := range records {
		lines = append(lines, *records[i].toDomain())
	}
	return lines, nil
}

func (l *Ledger) FindByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]domain.Order, error) {
	if err := l.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	err := l.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, *records[i].toDomain())
	}
	return orders, nil
}

func (l *Ledger) ensureDB() error {
	if l == nil || l.db == nil {
		return errors.New("postgres order ledger not configured")
	}
	return nil
}

// ledgerTx issues writes against one open gorm transaction.
type ledgerTx struct {
	db *gorm.DB
}

var _ ports.LedgerTx = (*ledgerTx)(nil)

func (tx *ledgerTx) InsertOrder(ctx context.Context, customerID uuid.UUID) (*domain.Order, error) {
	order := domain.NewOrder(customerID)
	record := orderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		CreatedAt:  order.CreatedAt,
		Status:     string(order.Status),
	}
	result := tx.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected != 1 {
		return nil, ports.ErrInsertCountMismatch
	}
	return order, nil
}

func (tx *ledgerTx) InsertLine(ctx context.Context, orderID, articleID uuid.UUID, quantity int32, unitPrice decimal.Decimal) (*domain.OrderLine, error) {
	line, err := domain.NewOrderLine(orderID, articleID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	record := lineRecord{
		ID:        line.ID,
		OrderID:   line.OrderID,
		ArticleID: line.ArticleID,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
	}
	result := tx.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected != 1 {
		return nil, ports.ErrInsertCountMismatch
	}
	return line, nil
}

func (tx *ledgerTx) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) error {
	result := tx.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", orderID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ports.ErrInsertCountMismatch
	}
	return nil
}

func (tx *ledgerTx) UpdateTransactionID(ctx context.Context, orderID uuid.UUID, transactionID string) error {
	result := tx.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", orderID).
		Update("transaction_id", transactionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ports.ErrInsertCountMismatch
	}
	return nil
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CreatedAt:     r.CreatedAt,
		Status:        domain.Status(r.Status),
		TransactionID: r.TransactionID,
	}
}

func (r lineRecord) toDomain() *domain.OrderLine {
	return &domain.OrderLine{
		ID:        r.ID,
		OrderID:   r.OrderID,
		ArticleID: r.ArticleID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

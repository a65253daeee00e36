package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&articleRecord{},
		&customerRecord{},
		&orderRecord{},
		&lineRecord{},
	)
}

// Article schema mirrors the catalog Postgres adapter.
type articleRecord struct {
	ID          uuid.UUID       `gorm:"primaryKey;column:id;type:uuid"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	CreatedAt   time.Time       `gorm:"column:created_at;index"`
}

func (articleRecord) TableName() string { return "article" }

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Password  string    `gorm:"column:password"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (customerRecord) TableName() string { return "customer" }

// Order schema mirrors the orders Postgres ledger.
type orderRecord struct {
	ID            uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID    uuid.UUID `gorm:"column:customer_id;type:uuid;index"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	Status        string    `gorm:"column:status;type:varchar(32);check:status IN ('created','preparing','payment_refused','shipped')"`
	TransactionID *string   `gorm:"column:transaction_id"`
}

func (orderRecord) TableName() string { return "customer_order" }

// Order line schema mirrors the orders Postgres ledger.
type lineRecord struct {
	ID        uuid.UUID       `gorm:"primaryKey;column:id;type:uuid"`
	OrderID   uuid.UUID       `gorm:"column:order_id;type:uuid;index"`
	ArticleID uuid.UUID       `gorm:"column:article_id;type:uuid"`
	Quantity  int32           `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
}

func (lineRecord) TableName() string { return "order_article" }

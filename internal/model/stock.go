package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StockLot is a dated batch of a Drug with its own quantity and unit price.
type StockLot struct {
	StockID   uuid.UUID       `gorm:"column:stock_id;type:char(36);primaryKey"`
	DrugID    uuid.UUID       `gorm:"column:drug_id;type:char(36);not null;index"`
	Amount    int             `gorm:"not null;default:0;check:chk_stock_amount,amount >= 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_stock_unit_price,unit_price >= 0"`
	Expired   datatypes.Date  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the singular table name used by the frontend's original schema.
func (StockLot) TableName() string { return "stock" }

func (s *StockLot) BeforeCreate(*gorm.DB) error {
	if s.StockID == uuid.Nil {
		s.StockID = uuid.New()
	}
	return nil
}

// ExpiryDate returns the expiry as a plain calendar date at midnight UTC.
func (s *StockLot) ExpiryDate() time.Time {
	t := time.Time(s.Expired)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

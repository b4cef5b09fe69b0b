package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrugType separates conventional medicines from herbal products.
type DrugType string

const (
	DrugTypeDrug DrugType = "drug"
	DrugTypeHerb DrugType = "herb"
)

// Drug is a catalog entry, independent of the quantity on hand.
// Quantity lives in its StockLots; deleting a Drug cascades to them.
type Drug struct {
	DrugID     uuid.UUID `gorm:"column:drug_id;type:char(36);primaryKey"`
	Name       string    `gorm:"size:255;index;not null"`
	Code       string    `gorm:"size:64;not null"`
	DrugType   DrugType  `gorm:"size:8;not null;default:'drug';check:chk_drug_type,drug_type IN ('drug','herb')"`
	UnitType   string    `gorm:"size:64"`
	Detail     *string   `gorm:"type:text"`
	Usage      *string   `gorm:"type:text"`
	SlangFood  *string   `gorm:"type:text"` // foods to avoid while taking the drug
	SideEffect *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Stocks []StockLot `gorm:"foreignKey:DrugID;references:DrugID;constraint:OnDelete:CASCADE"`
}

func (Drug) TableName() string { return "drug" }

// BeforeCreate assigns the id client side so both dialects behave the same.
func (d *Drug) BeforeCreate(*gorm.DB) error {
	if d.DrugID == uuid.Nil {
		d.DrugID = uuid.New()
	}
	return nil
}

// TotalAmount is the derived on-hand quantity across all lots.
func (d *Drug) TotalAmount() int {
	total := 0
	for _, s := range d.Stocks {
		total += s.Amount
	}
	return total
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest attaches a lot to an existing drug, referenced either by
// drug_id or by a name fragment plus its unit_type.
type CreateStockRequest struct {
	DrugID    string           `json:"drug_id"`
	Name      string           `json:"name"`
	UnitType  string           `json:"unit_type"`
	Amount    *int             `json:"amount"     validate:"required,min=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required,min=0"`
	Expired   string           `json:"expired"    validate:"required,datetime=2006-01-02"`
}

// SellStockRequest subtracts quantity_sold from a lot.
type SellStockRequest struct {
	DrugID       string `json:"drug_id"`
	StockID      string `json:"stock_id"`
	QuantitySold int    `json:"quantity_sold" validate:"required,gt=0"`
}

// SetStockAmountRequest overwrites a lot's amount.
type SetStockAmountRequest struct {
	DrugID    string `json:"drug_id"`
	StockID   string `json:"stock_id"`
	NewAmount *int   `json:"new_amount" validate:"required,min=0"`
}

type StockResponse struct {
	StockID   string          `json:"stock_id"`
	DrugID    string          `json:"drug_id"`
	Amount    int             `json:"amount"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Expired   string          `json:"expired"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

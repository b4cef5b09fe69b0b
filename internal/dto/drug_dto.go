package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates (stock expiry).
const DateLayout = "2006-01-02"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InitialStockRequest is the optional first lot created together with a drug.
type InitialStockRequest struct {
	Amount    *int             `json:"amount"     validate:"required,min=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required,min=0"`
	Expired   string           `json:"expired"    validate:"required,datetime=2006-01-02"`
}

type CreateDrugRequest struct {
	Name       string               `json:"name"        validate:"required,max=255"`
	Code       string               `json:"code"        validate:"required,max=64"`
	DrugType   string               `json:"drug_type"   validate:"omitempty,oneof=drug herb"`
	UnitType   string               `json:"unit_type"   validate:"max=64"`
	Detail     *string              `json:"detail"`
	Usage      *string              `json:"usage"`
	SlangFood  *string              `json:"slang_food"`
	SideEffect *string              `json:"side_effect"`
	Stock      *InitialStockRequest `json:"stock"`
}

// DrugPatch carries only the fields a caller wants to change.
type DrugPatch struct {
	Name       *string `json:"name"        validate:"omitempty,min=1,max=255"`
	Code       *string `json:"code"        validate:"omitempty,min=1,max=64"`
	DrugType   *string `json:"drug_type"   validate:"omitempty,oneof=drug herb"`
	UnitType   *string `json:"unit_type"   validate:"omitempty,max=64"`
	Detail     *string `json:"detail"`
	Usage      *string `json:"usage"`
	SlangFood  *string `json:"slang_food"`
	SideEffect *string `json:"side_effect"`
}

type UpdateDrugRequest struct {
	DrugID   string    `json:"drug_id"  validate:"required"`
	DrugData DrugPatch `json:"drugData"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type DrugFilter struct {
	DrugType string `form:"drug_type" validate:"omitempty,oneof=drug herb"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// StockLotSummary is the subset of lot columns embedded in drug listings.
type StockLotSummary struct {
	StockID   string          `json:"stock_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    int             `json:"amount"`
	Expired   string          `json:"expired"`
}

type DrugResponse struct {
	DrugID      string            `json:"drug_id"`
	Name        string            `json:"name"`
	Code        string            `json:"code"`
	DrugType    string            `json:"drug_type"`
	UnitType    string            `json:"unit_type"`
	Detail      *string           `json:"detail"`
	Usage       *string           `json:"usage"`
	SlangFood   *string           `json:"slang_food"`
	SideEffect  *string           `json:"side_effect"`
	TotalAmount int               `json:"total_amount"`
	Stocks      []StockLotSummary `json:"stocks"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

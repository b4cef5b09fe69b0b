package dto

// NotificationQuery overrides the configured thresholds for one request.
type NotificationQuery struct {
	Threshold *int `form:"threshold" validate:"omitempty,min=0"`
	Days      *int `form:"days"      validate:"omitempty,min=0,max=3650"`
}

type LowStockItem struct {
	DrugID      string `json:"drug_id"`
	Name        string `json:"name"`
	UnitType    string `json:"unit_type"`
	TotalAmount int    `json:"total_amount"`
}

type ExpiringLotItem struct {
	StockID  string `json:"stock_id"`
	DrugID   string `json:"drug_id"`
	DrugName string `json:"drug_name"`
	Amount   int    `json:"amount"`
	Expired  string `json:"expired"`
	DaysLeft int    `json:"days_left"` // negative once expired
}

type NotificationResponse struct {
	Threshold int               `json:"threshold"`
	Days      int               `json:"days"`
	LowStock  []LowStockItem    `json:"low_stock"`
	Expiring  []ExpiringLotItem `json:"expiring"`
	Expired   []ExpiringLotItem `json:"expired"`
}

type SendDigestRequest struct {
	To string `json:"to" validate:"required,email"`
}

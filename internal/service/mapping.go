package service

import (
	"time"

	"pharmastock/internal/dto"
	"pharmastock/internal/model"
)

func mapDrug(d model.Drug) dto.DrugResponse {
	stocks := make([]dto.StockLotSummary, 0, len(d.Stocks))
	for _, s := range d.Stocks {
		stocks = append(stocks, dto.StockLotSummary{
			StockID:   s.StockID.String(),
			UnitPrice: s.UnitPrice,
			Amount:    s.Amount,
			Expired:   s.ExpiryDate().Format(dto.DateLayout),
		})
	}
	return dto.DrugResponse{
		DrugID:      d.DrugID.String(),
		Name:        d.Name,
		Code:        d.Code,
		DrugType:    string(d.DrugType),
		UnitType:    d.UnitType,
		Detail:      d.Detail,
		Usage:       d.Usage,
		SlangFood:   d.SlangFood,
		SideEffect:  d.SideEffect,
		TotalAmount: d.TotalAmount(),
		Stocks:      stocks,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mapDrugs(drugs []model.Drug) []dto.DrugResponse {
	out := make([]dto.DrugResponse, 0, len(drugs))
	for _, d := range drugs {
		out = append(out, mapDrug(d))
	}
	return out
}

func mapStock(s model.StockLot) dto.StockResponse {
	return dto.StockResponse{
		StockID:   s.StockID.String(),
		DrugID:    s.DrugID.String(),
		Amount:    s.Amount,
		UnitPrice: s.UnitPrice,
		Expired:   s.ExpiryDate().Format(dto.DateLayout),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// parseDate reads a YYYY-MM-DD calendar date.
func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, invalid("%s must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

// startOfDay truncates t to its calendar date at midnight UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

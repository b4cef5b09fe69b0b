package service

import (
	"context"
	"time"

	"pharmastock/internal/infra"
	"pharmastock/internal/repository"
)

type ReportService interface {
	// StockReport renders every drug with its lots as a PDF.
	StockReport(ctx context.Context) ([]byte, error)
}

type reportService struct {
	drugs repository.DrugRepository
	title string
	font  *infra.ReportFont
	now   func() time.Time
}

// NewReportService renders with font when set, core Helvetica otherwise.
func NewReportService(drugs repository.DrugRepository, title string, font *infra.ReportFont) ReportService {
	return &reportService{drugs: drugs, title: title, font: font, now: time.Now}
}

func (s *reportService) StockReport(ctx context.Context) ([]byte, error) {
	drugs, err := s.drugs.List(ctx, repository.DrugFilter{})
	if err != nil {
		return nil, err
	}
	return infra.RenderStockReport(s.title, drugs, s.now(), s.font)
}

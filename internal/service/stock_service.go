package service

import (
	"context"
	"time"

	"pharmastock/internal/dto"
	"pharmastock/internal/infra"
	"pharmastock/internal/model"
	"pharmastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StockService manages stock lots: creation, sales, absolute corrections and removal.
type StockService interface {
	Create(ctx context.Context, req dto.CreateStockRequest) (*dto.StockResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error)
	Sell(ctx context.Context, req dto.SellStockRequest) (*dto.StockResponse, error)
	SetAmount(ctx context.Context, req dto.SetStockAmountRequest) (*dto.StockResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type stockService struct {
	stocks repository.StockRepository
	drugs  repository.DrugRepository
	cache  *infra.CatalogCache
}

func NewStockService(stocks repository.StockRepository, drugs repository.DrugRepository, cache *infra.CatalogCache) StockService {
	return &stockService{stocks: stocks, drugs: drugs, cache: cache}
}

// resolveDrug finds the target drug by id, or by name fragment plus unit type
// when no id was sent.
func (s *stockService) resolveDrug(ctx context.Context, req dto.CreateStockRequest) (uuid.UUID, error) {
	id, err := parseID("drug_id", req.DrugID)
	if err != nil {
		return uuid.Nil, err
	}
	if id != nil {
		d, err := s.drugs.FindByID(ctx, *id)
		if err != nil {
			return uuid.Nil, err
		}
		return d.DrugID, nil
	}
	if req.Name == "" || req.UnitType == "" {
		return uuid.Nil, invalid("drug_id or name and unit_type are required")
	}
	return s.drugs.FindIDByNameAndUnit(ctx, req.Name, req.UnitType)
}

func (s *stockService) Create(ctx context.Context, req dto.CreateStockRequest) (*dto.StockResponse, error) {
	if req.Amount == nil || req.UnitPrice == nil || req.Expired == "" {
		return nil, invalid("amount, unit_price and expired are required")
	}
	expired, err := parseDate("expired", req.Expired)
	if err != nil {
		return nil, err
	}
	drugID, err := s.resolveDrug(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lot := &model.StockLot{
		StockID:   uuid.New(),
		DrugID:    drugID,
		Amount:    *req.Amount,
		UnitPrice: *req.UnitPrice,
		Expired:   datatypes.Date(expired),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.stocks.Create(ctx, lot); err != nil {
		return nil, err
	}
	s.invalidate(ctx, drugID)

	resp := mapStock(*lot)
	return &resp, nil
}

func (s *stockService) Get(ctx context.Context, id uuid.UUID) (*dto.StockResponse, error) {
	lot, err := s.stocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapStock(*lot)
	return &resp, nil
}

func (s *stockService) Sell(ctx context.Context, req dto.SellStockRequest) (*dto.StockResponse, error) {
	if req.QuantitySold <= 0 {
		return nil, invalid("quantity_sold must be greater than zero")
	}
	lot, err := s.target(ctx, req.DrugID, req.StockID)
	if err != nil {
		return nil, err
	}
	updated, err := s.stocks.DecrementBySale(ctx, lot.StockID, req.QuantitySold)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.DrugID)

	resp := mapStock(*updated)
	return &resp, nil
}

func (s *stockService) SetAmount(ctx context.Context, req dto.SetStockAmountRequest) (*dto.StockResponse, error) {
	if req.NewAmount == nil || *req.NewAmount < 0 {
		return nil, invalid("new_amount must be zero or greater")
	}
	lot, err := s.target(ctx, req.DrugID, req.StockID)
	if err != nil {
		return nil, err
	}
	updated, err := s.stocks.SetAmount(ctx, lot.StockID, *req.NewAmount)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.DrugID)

	resp := mapStock(*updated)
	return &resp, nil
}

func (s *stockService) Delete(ctx context.Context, id uuid.UUID) error {
	lot, err := s.stocks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.stocks.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, lot.DrugID)
	return nil
}

// target resolves the lot addressed by a drug_id and/or stock_id pair.
func (s *stockService) target(ctx context.Context, rawDrugID, rawStockID string) (*model.StockLot, error) {
	drugID, err := parseID("drug_id", rawDrugID)
	if err != nil {
		return nil, err
	}
	stockID, err := parseID("stock_id", rawStockID)
	if err != nil {
		return nil, err
	}
	if drugID == nil && stockID == nil {
		return nil, invalid("drug_id or stock_id is required")
	}
	return s.stocks.Resolve(ctx, repository.StockRef{DrugID: drugID, StockID: stockID})
}

func (s *stockService) invalidate(ctx context.Context, drugID uuid.UUID) {
	s.cache.Invalidate(ctx, infra.CacheKeyDrugList, infra.CacheKeyDrug(drugID.String()))
}

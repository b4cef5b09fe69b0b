package service

import (
	"context"
	"strings"
	"time"

	"pharmastock/internal/dto"
	"pharmastock/internal/infra"
	"pharmastock/internal/model"
	"pharmastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DrugService defines the business operations of the drug catalog.
type DrugService interface {
	List(ctx context.Context, filter dto.DrugFilter) ([]dto.DrugResponse, error)
	Search(ctx context.Context, name string) ([]dto.DrugResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DrugResponse, error)
	Create(ctx context.Context, req dto.CreateDrugRequest) (*dto.DrugResponse, error)
	Update(ctx context.Context, req dto.UpdateDrugRequest) (*dto.DrugResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type drugService struct {
	repo  repository.DrugRepository
	cache *infra.CatalogCache
}

// NewDrugService accepts a nil cache; reads then always hit the repository.
func NewDrugService(repo repository.DrugRepository, cache *infra.CatalogCache) DrugService {
	return &drugService{repo: repo, cache: cache}
}

func (s *drugService) List(ctx context.Context, filter dto.DrugFilter) ([]dto.DrugResponse, error) {
	// Only the unfiltered list is cached; the tab filter is cheap to recompute.
	cacheable := filter.DrugType == ""
	if cacheable {
		var cached []dto.DrugResponse
		if s.cache.Get(ctx, infra.CacheKeyDrugList, &cached) {
			return cached, nil
		}
	}

	drugs, err := s.repo.List(ctx, repository.DrugFilter{DrugType: filter.DrugType})
	if err != nil {
		return nil, err
	}
	resp := mapDrugs(drugs)
	if cacheable {
		s.cache.Set(ctx, infra.CacheKeyDrugList, resp)
	}
	return resp, nil
}

func (s *drugService) Search(ctx context.Context, name string) ([]dto.DrugResponse, error) {
	term := strings.TrimSpace(name)
	if term == "" {
		return nil, invalid("name is required")
	}
	drugs, err := s.repo.FindByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapDrugs(drugs), nil
}

func (s *drugService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DrugResponse, error) {
	key := infra.CacheKeyDrug(id.String())
	var cached dto.DrugResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapDrug(*d)
	s.cache.Set(ctx, key, resp)
	return &resp, nil
}

func (s *drugService) Create(ctx context.Context, req dto.CreateDrugRequest) (*dto.DrugResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, invalid("name and code are required")
	}
	drugType := model.DrugTypeDrug
	if req.DrugType != "" {
		drugType = model.DrugType(req.DrugType)
	}

	now := time.Now()
	d := &model.Drug{
		DrugID:     uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Code:       strings.TrimSpace(req.Code),
		DrugType:   drugType,
		UnitType:   req.UnitType,
		Detail:     req.Detail,
		Usage:      req.Usage,
		SlangFood:  req.SlangFood,
		SideEffect: req.SideEffect,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var initial *model.StockLot
	if req.Stock != nil {
		expired, err := parseDate("stock.expired", req.Stock.Expired)
		if err != nil {
			return nil, err
		}
		initial = &model.StockLot{
			StockID:   uuid.New(),
			Amount:    *req.Stock.Amount,
			UnitPrice: *req.Stock.UnitPrice,
			Expired:   datatypes.Date(expired),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if err := s.repo.Create(ctx, d, initial); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, infra.CacheKeyDrugList)

	resp := mapDrug(*d)
	return &resp, nil
}

func (s *drugService) Update(ctx context.Context, req dto.UpdateDrugRequest) (*dto.DrugResponse, error) {
	id, err := parseID("drug_id", req.DrugID)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, invalid("drug_id is required")
	}

	d, err := s.repo.FindByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	p := req.DrugData
	if p.Name != nil {
		d.Name = strings.TrimSpace(*p.Name)
	}
	if p.Code != nil {
		d.Code = strings.TrimSpace(*p.Code)
	}
	if p.DrugType != nil {
		d.DrugType = model.DrugType(*p.DrugType)
	}
	if p.UnitType != nil {
		d.UnitType = *p.UnitType
	}
	if p.Detail != nil {
		d.Detail = p.Detail
	}
	if p.Usage != nil {
		d.Usage = p.Usage
	}
	if p.SlangFood != nil {
		d.SlangFood = p.SlangFood
	}
	if p.SideEffect != nil {
		d.SideEffect = p.SideEffect
	}
	if d.Name == "" || d.Code == "" {
		return nil, invalid("name and code cannot be blank")
	}
	d.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, infra.CacheKeyDrugList, infra.CacheKeyDrug(d.DrugID.String()))

	resp := mapDrug(*d)
	return &resp, nil
}

func (s *drugService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, infra.CacheKeyDrugList, infra.CacheKeyDrug(id.String()))
	return nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"pharmastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DrugFilter narrows List; an empty DrugType returns every drug.
type DrugFilter struct {
	DrugType string
}

// LowStockRow is one drug whose summed lot amount is under a threshold.
type LowStockRow struct {
	DrugID      uuid.UUID
	Name        string
	UnitType    string
	TotalAmount int
}

// DrugRepository defines the data access contract for the drug catalog.
// Every read preloads the drug's stock lots.
type DrugRepository interface {
	List(ctx context.Context, filter DrugFilter) ([]model.Drug, error)
	FindByName(ctx context.Context, term string) ([]model.Drug, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Drug, error)
	FindByCode(ctx context.Context, code string) (*model.Drug, error)
	FindIDByNameAndUnit(ctx context.Context, name, unitType string) (uuid.UUID, error)

	// Create inserts the drug and, when initial is non-nil, its first lot in
	// the same transaction.
	Create(ctx context.Context, d *model.Drug, initial *model.StockLot) error
	Update(ctx context.Context, d *model.Drug) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListLowStock(ctx context.Context, threshold int) ([]LowStockRow, error)
}

type drugRepo struct{ db *gorm.DB }

func NewDrugRepository(db *gorm.DB) DrugRepository { return &drugRepo{db: db} }

// lots limits the preloaded lot columns to what listings show.
func lots(db *gorm.DB) *gorm.DB {
	return db.Select("stock_id", "drug_id", "unit_price", "amount", "expired", "created_at", "updated_at").
		Order("expired ASC")
}

func (r *drugRepo) List(ctx context.Context, filter DrugFilter) ([]model.Drug, error) {
	var drugs []model.Drug
	q := r.db.WithContext(ctx).Preload("Stocks", lots)
	if filter.DrugType != "" {
		q = q.Where("drug_type = ?", filter.DrugType)
	}
	err := q.Order("name ASC").Find(&drugs).Error
	return drugs, err
}

func (r *drugRepo) FindByName(ctx context.Context, term string) ([]model.Drug, error) {
	var drugs []model.Drug
	err := r.db.WithContext(ctx).Preload("Stocks", lots).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("name ASC").
		Find(&drugs).Error
	return drugs, err
}

func (r *drugRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Drug, error) {
	var d model.Drug
	err := r.db.WithContext(ctx).Preload("Stocks", lots).First(&d, "drug_id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *drugRepo) FindByCode(ctx context.Context, code string) (*model.Drug, error) {
	var d model.Drug
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *drugRepo) FindIDByNameAndUnit(ctx context.Context, name, unitType string) (uuid.UUID, error) {
	var d model.Drug
	err := r.db.WithContext(ctx).Select("drug_id").
		Where("LOWER(name) LIKE ? AND unit_type = ?", "%"+strings.ToLower(name)+"%", unitType).
		Order("name ASC").
		First(&d).Error
	if err != nil {
		return uuid.Nil, translate(err)
	}
	return d.DrugID, nil
}

func (r *drugRepo) Create(ctx context.Context, d *model.Drug, initial *model.StockLot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(d).Error; err != nil {
			return fmt.Errorf("insert drug: %w", err)
		}
		if initial == nil {
			return nil
		}
		initial.DrugID = d.DrugID
		if err := tx.Create(initial).Error; err != nil {
			return fmt.Errorf("insert initial stock: %w", err)
		}
		d.Stocks = []model.StockLot{*initial}
		return nil
	})
}

func (r *drugRepo) Update(ctx context.Context, d *model.Drug) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(d)
	return translate(res.Error)
}

// Delete relies on the ON DELETE CASCADE foreign key to remove the lots.
func (r *drugRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Drug{}, "drug_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *drugRepo) ListLowStock(ctx context.Context, threshold int) ([]LowStockRow, error) {
	var rows []LowStockRow
	err := r.db.WithContext(ctx).Table("drug").
		Select("drug.drug_id, drug.name, drug.unit_type, COALESCE(SUM(stock.amount), 0) AS total_amount").
		Joins("LEFT JOIN stock ON stock.drug_id = drug.drug_id").
		Group("drug.drug_id, drug.name, drug.unit_type").
		Having("COALESCE(SUM(stock.amount), 0) < ?", threshold).
		Order("total_amount ASC, drug.name ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"
	"time"

	"pharmastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockRef addresses a lot by stock_id, by drug_id, or by both.
// With only DrugID set the drug's oldest lot is used; with both set the lot
// must belong to the drug.
type StockRef struct {
	DrugID  *uuid.UUID
	StockID *uuid.UUID
}

// ExpiringRow is a lot joined with its drug's name.
type ExpiringRow struct {
	StockID  uuid.UUID
	DrugID   uuid.UUID
	DrugName string
	Amount   int
	Expired  time.Time
}

type StockRepository interface {
	Create(ctx context.Context, s *model.StockLot) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockLot, error)
	Resolve(ctx context.Context, ref StockRef) (*model.StockLot, error)

	// DecrementBySale subtracts quantity only when the lot still holds at
	// least that much; the check and the write are one statement.
	DecrementBySale(ctx context.Context, id uuid.UUID, quantity int) (*model.StockLot, error)
	SetAmount(ctx context.Context, id uuid.UUID, amount int) (*model.StockLot, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]ExpiringRow, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Create(ctx context.Context, s *model.StockLot) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockLot, error) {
	var s model.StockLot
	if err := r.db.WithContext(ctx).First(&s, "stock_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *stockRepo) Resolve(ctx context.Context, ref StockRef) (*model.StockLot, error) {
	q := r.db.WithContext(ctx).Model(&model.StockLot{})
	switch {
	case ref.StockID != nil:
		q = q.Where("stock_id = ?", *ref.StockID)
		if ref.DrugID != nil {
			q = q.Where("drug_id = ?", *ref.DrugID)
		}
	case ref.DrugID != nil:
		q = q.Where("drug_id = ?", *ref.DrugID).Order("created_at ASC")
	default:
		return nil, ErrNotFound
	}
	var s model.StockLot
	if err := q.First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *stockRepo) DecrementBySale(ctx context.Context, id uuid.UUID, quantity int) (*model.StockLot, error) {
	res := r.db.WithContext(ctx).Model(&model.StockLot{}).
		Where("stock_id = ? AND amount >= ?", id, quantity).
		Updates(map[string]interface{}{
			"amount":     gorm.Expr("amount - ?", quantity),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the lot is gone or it holds less than requested.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientStock
	}
	return r.FindByID(ctx, id)
}

func (r *stockRepo) SetAmount(ctx context.Context, id uuid.UUID, amount int) (*model.StockLot, error) {
	res := r.db.WithContext(ctx).Model(&model.StockLot{}).
		Where("stock_id = ?", id).
		Updates(map[string]interface{}{
			"amount":     amount,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	// MySQL reports zero affected rows for an unchanged value, so existence
	// is settled by the read below rather than by RowsAffected.
	return r.FindByID(ctx, id)
}

func (r *stockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.StockLot{}, "stock_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *stockRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]ExpiringRow, error) {
	var rows []ExpiringRow
	err := r.db.WithContext(ctx).Table("stock").
		Select("stock.stock_id, stock.drug_id, drug.name AS drug_name, stock.amount, stock.expired").
		Joins("JOIN drug ON drug.drug_id = stock.drug_id").
		Where("stock.expired <= ?", cutoff.Format("2006-01-02")).
		Order("stock.expired ASC, drug.name ASC").
		Scan(&rows).Error
	return rows, err
}

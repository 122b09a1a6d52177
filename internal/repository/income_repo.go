package repository

import (
	"context"
	"time"

	"groceryhub/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeQuery filters the ledger. Start and End are inclusive civil dates.
type IncomeQuery struct {
	StoreID      *uuid.UUID
	Start        *time.Time
	End          *time.Time
	RecordedByID *uuid.UUID
	Ordering     string
	Limit        int
}

var incomeOrderings = map[string]string{
	"date":    "daily_incomes.date ASC",
	"-date":   "daily_incomes.date DESC",
	"amount":  "daily_incomes.amount ASC",
	"-amount": "daily_incomes.amount DESC",
}

// IncomeTotals holds SQL aggregates; every field is zero over an empty set.
type IncomeTotals struct {
	Total   decimal.Decimal
	Average decimal.Decimal
	Records int64
	Min     decimal.Decimal
	Max     decimal.Decimal
}

type IncomeRepository interface {
	Create(ctx context.Context, d *model.DailyIncome) error
	Update(ctx context.Context, d *model.DailyIncome) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyIncome, error)
	FindByStoreDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*model.DailyIncome, error)
	List(ctx context.Context, q IncomeQuery) ([]model.DailyIncome, error)
	Totals(ctx context.Context, q IncomeQuery) (IncomeTotals, error)
}

type incomeRepo struct{ db *gorm.DB }

func NewIncomeRepository(db *gorm.DB) IncomeRepository { return &incomeRepo{db: db} }

func (r *incomeRepo) filtered(ctx context.Context, q IncomeQuery) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.DailyIncome{})
	if q.StoreID != nil {
		db = db.Where("daily_incomes.store_id = ?", *q.StoreID)
	}
	if q.Start != nil {
		db = db.Where("daily_incomes.date >= ?", q.Start.Format(model.DateLayout))
	}
	if q.End != nil {
		db = db.Where("daily_incomes.date <= ?", q.End.Format(model.DateLayout))
	}
	if q.RecordedByID != nil {
		db = db.Where("daily_incomes.recorded_by_id = ?", *q.RecordedByID)
	}
	return db
}

func (r *incomeRepo) Create(ctx context.Context, d *model.DailyIncome) error {
	return translate(r.db.WithContext(ctx).Omit("Store", "RecordedBy").Create(d).Error)
}

func (r *incomeRepo) Update(ctx context.Context, d *model.DailyIncome) error {
	return translate(r.db.WithContext(ctx).Omit("Store", "RecordedBy").Save(d).Error)
}

func (r *incomeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DailyIncome{}, "id = ?", id).Error
}

func (r *incomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyIncome, error) {
	var d model.DailyIncome
	err := r.db.WithContext(ctx).Preload("Store").Preload("RecordedBy").First(&d, "id = ?", id).Error
	return &d, err
}

func (r *incomeRepo) FindByStoreDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*model.DailyIncome, error) {
	var d model.DailyIncome
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND date = ?", storeID, date.Format(model.DateLayout)).
		First(&d).Error
	return &d, err
}

func (r *incomeRepo) List(ctx context.Context, q IncomeQuery) ([]model.DailyIncome, error) {
	var rows []model.DailyIncome
	order, ok := incomeOrderings[q.Ordering]
	if !ok {
		order = "daily_incomes.date DESC"
	}
	db := r.filtered(ctx, q).Preload("Store").Preload("RecordedBy").Order(order)
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	err := db.Find(&rows).Error
	return rows, err
}

func (r *incomeRepo) Totals(ctx context.Context, q IncomeQuery) (IncomeTotals, error) {
	var t IncomeTotals
	err := r.filtered(ctx, q).Select(`COALESCE(SUM(amount), 0) AS total,
		COALESCE(AVG(amount), 0) AS average,
		COUNT(*) AS records,
		COALESCE(MIN(amount), 0) AS min,
		COALESCE(MAX(amount), 0) AS max`).
		Scan(&t).Error
	return t, err
}

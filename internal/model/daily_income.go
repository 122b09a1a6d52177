package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DailyIncome is one store's takings for one calendar day; (store_id, date) is unique.
type DailyIncome struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_income_store_date,priority:1"`
	Date         time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_income_store_date,priority:2;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RecordedByID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Notes        string          `gorm:"not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Store      *Store `gorm:"foreignKey:StoreID;constraint:OnDelete:RESTRICT"`
	RecordedBy *User  `gorm:"foreignKey:RecordedByID;constraint:OnDelete:RESTRICT"`
}

// TableName keeps the ledger table name stable.
func (DailyIncome) TableName() string { return "daily_incomes" }

func (d *DailyIncome) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// CivilDate truncates t to midnight UTC of its calendar date.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before the civil date d.
func WeekStart(d time.Time) time.Time {
	d = CivilDate(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordIncomeRequest struct {
	StoreID string          `json:"store_id" validate:"required,uuid"`
	Date    string          `json:"date"     validate:"required,datetime=2006-01-02"`
	Amount  decimal.Decimal `json:"amount"`
	Notes   string          `json:"notes"    validate:"max=2000"`
}

type UpdateIncomeRequest struct {
	Date   *string          `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Amount *decimal.Decimal `json:"amount"`
	Notes  *string          `json:"notes"  validate:"omitempty,max=2000"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type IncomeFilter struct {
	StoreID      string `form:"store_id"`
	StartDate    string `form:"start_date"  validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `form:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	RecordedByID string `form:"recorded_by"`
	Ordering     string `form:"ordering"` // date | -date | amount | -amount
}

type MonthlyReportQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

// WeeklyTrendQuery accepts "weeks" as an alias of "weeks_back".
type WeeklyTrendQuery struct {
	WeeksBack int `form:"weeks_back"`
	Weeks     int `form:"weeks"`
}

// Span returns the requested number of weeks, 4 when neither is given.
func (q WeeklyTrendQuery) Span() int {
	switch {
	case q.WeeksBack != 0:
		return q.WeeksBack
	case q.Weeks != 0:
		return q.Weeks
	}
	return 4
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IncomeResponse struct {
	ID              string          `json:"id"`
	StoreID         string          `json:"store_id"`
	StoreName       string          `json:"store_name"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formatted_amount"`
	RecordedByID    string          `json:"recorded_by_id"`
	RecordedByName  string          `json:"recorded_by_name"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type IncomeAggregateResponse struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	AverageIncome decimal.Decimal `json:"average_income"`
	RecordsCount  int64           `json:"records_count"`
	MaxIncome     decimal.Decimal `json:"max_income"`
	MinIncome     decimal.Decimal `json:"min_income"`
	DateRange     DateRange       `json:"date_range"`
}

type DailyBucket struct {
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	RecordsCount int             `json:"records_count"`
}

type StoreBucket struct {
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	Total        decimal.Decimal `json:"total"`
	RecordsCount int             `json:"records_count"`
}

type MonthlySummary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalDaysRecorded int             `json:"total_days_recorded"`
	AverageDaily      decimal.Decimal `json:"average_daily"`
}

type MonthlyReportResponse struct {
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	DailyBreakdown []DailyBucket  `json:"daily_breakdown"`
	StoreBreakdown []StoreBucket  `json:"store_breakdown,omitempty"`
	Summary        MonthlySummary `json:"summary"`
}

type WeeklyBucket struct {
	WeekStart    string          `json:"week_start"`
	Total        decimal.Decimal `json:"total"`
	RecordsCount int             `json:"records_count"`
}

type WeeklyTrendResponse struct {
	WeeksBack int            `json:"weeks_back"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Weeks     []WeeklyBucket `json:"weeks"`
}

type IncomeSummaryResponse struct {
	StoreID       *string          `json:"store_id"`
	StoreName     *string          `json:"store_name"`
	PeriodStart   string           `json:"period_start"`
	PeriodEnd     string           `json:"period_end"`
	TotalIncome   decimal.Decimal  `json:"total_income"`
	AverageIncome decimal.Decimal  `json:"average_income"`
	RecordsCount  int64            `json:"records_count"`
	Recent        []IncomeResponse `json:"recent"`
}

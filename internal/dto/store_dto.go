package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateStoreRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required,min=1,max=300"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=200"`
	Location *string `json:"location" validate:"omitempty,min=1,max=300"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type StoreFilter struct {
	Search         string `form:"search"`
	Location       string `form:"location"`
	Ordering       string `form:"ordering"` // name | -name | created_at | -created_at
	IncludeDeleted bool   `form:"include_deleted"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StoreResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	CreatedByID   *string    `json:"created_by_id"`
	CreatedByName *string    `json:"created_by_name,omitempty"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	SupplierCount *int64     `json:"supplier_count,omitempty"`
	ItemCount     *int64     `json:"item_count,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// StoreAnalyticsResponse is read from the graph store.
type StoreAnalyticsResponse struct {
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	TotalItems   int64           `json:"total_items"`
	AveragePrice decimal.Decimal `json:"average_price"`
	ItemTypes    []string        `json:"item_types"`
}

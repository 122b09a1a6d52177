package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemTypeRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateItemTypeRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

type CreateItemRequest struct {
	Name            string          `json:"name"              validate:"required,min=1,max=200"`
	ItemTypeID      string          `json:"item_type_id"      validate:"required,uuid"`
	Location        string          `json:"location"          validate:"required"`
	Price           decimal.Decimal `json:"price"`
	StoreID         string          `json:"store_id"          validate:"required,uuid"`
	SKU             string          `json:"sku"               validate:"max=50"`
	QuantityInStock *int            `json:"quantity_in_stock"`
	ReorderLevel    *int            `json:"reorder_level"`
}

// UpdateItemRequest changes an item in place; the store cannot be changed.
type UpdateItemRequest struct {
	Name         *string          `json:"name"          validate:"omitempty,min=1,max=200"`
	ItemTypeID   *string          `json:"item_type_id"  validate:"omitempty,uuid"`
	Location     *string          `json:"location"`
	Price        *decimal.Decimal `json:"price"`
	SKU          *string          `json:"sku"           validate:"omitempty,max=50"`
	ReorderLevel *int             `json:"reorder_level"`
}

// SetStockRequest keeps the raw number so non-integers can be rejected as
// an invalid quantity instead of a decoding error.
type SetStockRequest struct {
	Quantity *json.Number `json:"quantity"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ItemFilter struct {
	StoreID        string `form:"store_id"`
	ItemTypeID     string `form:"item_type_id"`
	Location       string `form:"location"`
	Search         string `form:"search"`
	Ordering       string `form:"ordering"` // name | -name | price | -price | quantity_in_stock | -quantity_in_stock | created_at | -created_at
	IncludeDeleted bool   `form:"include_deleted"`
	Page           int    `form:"page,default=1"   validate:"min=1"`
	Limit          int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ItemTypeFilter struct {
	Search string `form:"search"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemTypeResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ActiveItemsCount int64     `json:"active_items_count"`
	TotalItems       int64     `json:"total_items"`
	CreatedAt        time.Time `json:"created_at"`
}

type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ItemTypeID      string          `json:"item_type_id"`
	ItemTypeName    string          `json:"item_type_name"`
	Location        string          `json:"location"`
	Price           decimal.Decimal `json:"price"`
	FormattedPrice  string          `json:"formatted_price"`
	StoreID         string          `json:"store_id"`
	StoreName       string          `json:"store_name"`
	AddedByID       *string         `json:"added_by_id"`
	AddedByName     *string         `json:"added_by_name,omitempty"`
	SKU             string          `json:"sku"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ReorderLevel    int             `json:"reorder_level"`
	IsLowStock      bool            `json:"is_low_stock"`
	StockStatus     string          `json:"stock_status"`
	IsDeleted       bool            `json:"is_deleted"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ItemListResponse struct {
	Data       []ItemResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type StockUpdateResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	QuantityInStock int    `json:"quantity_in_stock"`
	StockStatus     string `json:"stock_status"`
	IsLowStock      bool   `json:"is_low_stock"`
}

type InventorySummaryResponse struct {
	TotalItems      int64                `json:"total_items"`
	TotalValue      decimal.Decimal      `json:"total_value"`
	AveragePrice    decimal.Decimal      `json:"average_price"`
	LowStockCount   int64                `json:"low_stock_count"`
	OutOfStockCount int64                `json:"out_of_stock_count"`
	StoreBreakdown  []StoreInventoryLine `json:"store_breakdown,omitempty"`
}

type StoreInventoryLine struct {
	StoreID    string          `json:"store_id"`
	StoreName  string          `json:"store_name"`
	ItemCount  int64           `json:"item_count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

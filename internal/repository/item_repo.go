package repository

import (
	"context"
	"time"

	"groceryhub/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemQuery struct {
	StoreID        *uuid.UUID
	ItemTypeID     *uuid.UUID
	Location       string
	Search         string
	Ordering       string
	IncludeDeleted bool
	// Page and Limit paginate when Limit > 0.
	Page  int
	Limit int
}

var itemOrderings = map[string]string{
	"name":               "items.name ASC",
	"-name":              "items.name DESC",
	"price":              "items.price ASC",
	"-price":             "items.price DESC",
	"quantity_in_stock":  "items.quantity_in_stock ASC",
	"-quantity_in_stock": "items.quantity_in_stock DESC",
	"created_at":         "items.created_at ASC",
	"-created_at":        "items.created_at DESC",
}

// InventoryTotals aggregates non-deleted items.
type InventoryTotals struct {
	TotalItems      int64
	TotalValue      decimal.Decimal
	AveragePrice    decimal.Decimal
	LowStockCount   int64
	OutOfStockCount int64
}

type StoreInventory struct {
	StoreID    uuid.UUID
	StoreName  string
	ItemCount  int64
	TotalValue decimal.Decimal
}

type ItemRepository interface {
	Create(ctx context.Context, i *model.Item) error
	Update(ctx context.Context, i *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Item, error)
	// FindActiveByName matches non-deleted items of a store case-insensitively.
	FindActiveByName(ctx context.Context, storeID uuid.UUID, name string) (*model.Item, error)
	List(ctx context.Context, q ItemQuery) ([]model.Item, int64, error)
	// ListLowStock returns non-deleted items with quantity <= reorder level; nil storeID means all stores.
	ListLowStock(ctx context.Context, storeID *uuid.UUID) ([]model.Item, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	CountByType(ctx context.Context, itemTypeID uuid.UUID, includeDeleted bool) (int64, error)
	Totals(ctx context.Context, storeID *uuid.UUID) (InventoryTotals, error)
	TotalsByStore(ctx context.Context) ([]StoreInventory, error)
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) scoped(ctx context.Context, includeDeleted bool) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Item{})
	if !includeDeleted {
		db = db.Where("items.is_deleted = false")
	}
	return db
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("ItemType").Preload("Store").Preload("AddedBy")
}

func (r *itemRepo) Create(ctx context.Context, i *model.Item) error {
	return translate(r.db.WithContext(ctx).Omit("ItemType", "Store", "AddedBy").Create(i).Error)
}

func (r *itemRepo) Update(ctx context.Context, i *model.Item) error {
	return translate(r.db.WithContext(ctx).Omit("ItemType", "Store", "AddedBy").Save(i).Error)
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Item, error) {
	var i model.Item
	err := withRelations(r.scoped(ctx, includeDeleted)).First(&i, "items.id = ?", id).Error
	return &i, err
}

func (r *itemRepo) FindActiveByName(ctx context.Context, storeID uuid.UUID, name string) (*model.Item, error) {
	var i model.Item
	err := r.scoped(ctx, false).
		Where("items.store_id = ? AND LOWER(items.name) = LOWER(?)", storeID, name).
		First(&i).Error
	return &i, err
}

func (r *itemRepo) List(ctx context.Context, q ItemQuery) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	db := r.scoped(ctx, q.IncludeDeleted)
	if q.StoreID != nil {
		db = db.Where("items.store_id = ?", *q.StoreID)
	}
	if q.ItemTypeID != nil {
		db = db.Where("items.item_type_id = ?", *q.ItemTypeID)
	}
	if q.Location != "" {
		db = db.Where("items.location = ?", q.Location)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("items.name ILIKE ? OR items.sku ILIKE ? OR items.item_type_id IN (SELECT id FROM item_types WHERE name ILIKE ?)",
			like, like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := itemOrderings[q.Ordering]
	if !ok {
		order = "items.created_at DESC"
	}
	db = withRelations(db).Order(order)
	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		db = db.Limit(q.Limit).Offset((page - 1) * q.Limit)
	}
	err := db.Find(&items).Error
	return items, total, err
}

func (r *itemRepo) ListLowStock(ctx context.Context, storeID *uuid.UUID) ([]model.Item, error) {
	var items []model.Item
	db := r.scoped(ctx, false).Where("items.quantity_in_stock <= items.reorder_level")
	if storeID != nil {
		db = db.Where("items.store_id = ?", *storeID)
	}
	err := withRelations(db).Order("items.quantity_in_stock ASC, items.name ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
}

// Restore fails with ErrDuplicate when an active item already took the name.
func (r *itemRepo) Restore(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": false, "deleted_at": nil}).Error
	return translate(err)
}

func (r *itemRepo) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).
		Update("quantity_in_stock", quantity).Error
}

func (r *itemRepo) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var n int64
	err := r.scoped(ctx, false).Where("items.store_id = ?", storeID).Count(&n).Error
	return n, err
}

func (r *itemRepo) CountByType(ctx context.Context, itemTypeID uuid.UUID, includeDeleted bool) (int64, error) {
	var n int64
	err := r.scoped(ctx, includeDeleted).Where("items.item_type_id = ?", itemTypeID).Count(&n).Error
	return n, err
}

func (r *itemRepo) Totals(ctx context.Context, storeID *uuid.UUID) (InventoryTotals, error) {
	var t InventoryTotals
	db := r.scoped(ctx, false).Select(`COUNT(*) AS total_items,
		COALESCE(SUM(items.price * items.quantity_in_stock), 0) AS total_value,
		COALESCE(AVG(items.price), 0) AS average_price,
		COALESCE(SUM(CASE WHEN items.quantity_in_stock <= items.reorder_level THEN 1 ELSE 0 END), 0) AS low_stock_count,
		COALESCE(SUM(CASE WHEN items.quantity_in_stock = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock_count`)
	if storeID != nil {
		db = db.Where("items.store_id = ?", *storeID)
	}
	err := db.Scan(&t).Error
	return t, err
}

func (r *itemRepo) TotalsByStore(ctx context.Context) ([]StoreInventory, error) {
	var rows []StoreInventory
	err := r.scoped(ctx, false).
		Select(`items.store_id AS store_id, stores.name AS store_name, COUNT(*) AS item_count,
			COALESCE(SUM(items.price * items.quantity_in_stock), 0) AS total_value`).
		Joins("JOIN stores ON stores.id = items.store_id").
		Group("items.store_id, stores.name").
		Order("stores.name ASC").
		Scan(&rows).Error
	return rows, err
}

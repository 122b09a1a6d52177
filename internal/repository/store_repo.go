package repository

import (
	"context"
	"time"

	"groceryhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreQuery struct {
	Search         string
	Location       string
	Ordering       string
	IncludeDeleted bool
}

var storeOrderings = map[string]string{
	"name":        "name ASC",
	"-name":       "name DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

type StoreRepository interface {
	Create(ctx context.Context, s *model.Store) error
	Update(ctx context.Context, s *model.Store) error
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Store, error)
	// FindByName matches the name exactly (case-sensitive).
	FindByName(ctx context.Context, name string, includeDeleted bool) (*model.Store, error)
	List(ctx context.Context, q StoreQuery) ([]model.Store, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type storeRepo struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) StoreRepository { return &storeRepo{db: db} }

func (r *storeRepo) scoped(ctx context.Context, includeDeleted bool) *gorm.DB {
	db := r.db.WithContext(ctx).Preload("CreatedBy")
	if !includeDeleted {
		db = db.Where("stores.is_deleted = false")
	}
	return db
}

func (r *storeRepo) Create(ctx context.Context, s *model.Store) error {
	return translate(r.db.WithContext(ctx).Omit("CreatedBy").Create(s).Error)
}

func (r *storeRepo) Update(ctx context.Context, s *model.Store) error {
	return translate(r.db.WithContext(ctx).Omit("CreatedBy").Save(s).Error)
}

func (r *storeRepo) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Store, error) {
	var s model.Store
	err := r.scoped(ctx, includeDeleted).First(&s, "stores.id = ?", id).Error
	return &s, err
}

func (r *storeRepo) FindByName(ctx context.Context, name string, includeDeleted bool) (*model.Store, error) {
	var s model.Store
	err := r.scoped(ctx, includeDeleted).Where("stores.name = ?", name).First(&s).Error
	return &s, err
}

func (r *storeRepo) List(ctx context.Context, q StoreQuery) ([]model.Store, error) {
	var stores []model.Store
	db := r.scoped(ctx, q.IncludeDeleted)
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("stores.name ILIKE ? OR stores.location ILIKE ?", like, like)
	}
	if q.Location != "" {
		db = db.Where("stores.location = ?", q.Location)
	}
	order, ok := storeOrderings[q.Ordering]
	if !ok {
		order = "created_at DESC"
	}
	err := db.Order(order).Find(&stores).Error
	return stores, err
}

func (r *storeRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
}

func (r *storeRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": false, "deleted_at": nil}).Error
}

package repository

import (
	"context"

	"groceryhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemTypeCounts are the derived item counters of one item type.
type ItemTypeCounts struct {
	Active int64
	Total  int64
}

type ItemTypeRepository interface {
	Create(ctx context.Context, t *model.ItemType) error
	Update(ctx context.Context, t *model.ItemType) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ItemType, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*model.ItemType, error)
	List(ctx context.Context, search string) ([]model.ItemType, error)
	Counts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ItemTypeCounts, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemTypeRepo struct{ db *gorm.DB }

func NewItemTypeRepository(db *gorm.DB) ItemTypeRepository { return &itemTypeRepo{db: db} }

func (r *itemTypeRepo) Create(ctx context.Context, t *model.ItemType) error {
	return translate(r.db.WithContext(ctx).Create(t).Error)
}

func (r *itemTypeRepo) Update(ctx context.Context, t *model.ItemType) error {
	return translate(r.db.WithContext(ctx).Save(t).Error)
}

func (r *itemTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ItemType, error) {
	var t model.ItemType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *itemTypeRepo) FindByName(ctx context.Context, name string) (*model.ItemType, error) {
	var t model.ItemType
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&t).Error
	return &t, err
}

func (r *itemTypeRepo) List(ctx context.Context, search string) ([]model.ItemType, error) {
	var types []model.ItemType
	db := r.db.WithContext(ctx)
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	err := db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *itemTypeRepo) Counts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ItemTypeCounts, error) {
	out := make(map[uuid.UUID]ItemTypeCounts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ItemTypeID uuid.UUID
		Active     int64
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("item_type_id, SUM(CASE WHEN is_deleted THEN 0 ELSE 1 END) AS active, COUNT(*) AS total").
		Where("item_type_id IN ?", ids).
		Group("item_type_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ItemTypeID] = ItemTypeCounts{Active: row.Active, Total: row.Total}
	}
	return out, nil
}

func (r *itemTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Delete(&model.ItemType{}, "id = ?", id).Error)
}

package repository

import (
	"context"
	"strings"

	"groceryhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserQuery struct {
	Role            string
	IncludeInactive bool
}

type UserRepository interface {
	// Create inserts the user together with whichever profile is attached.
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, q UserQuery) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	UpdateAdminProfile(ctx context.Context, p *model.AdminProfile) error
	UpdateSupplierProfile(ctx context.Context, p *model.SupplierProfile) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	ListSuppliersByStore(ctx context.Context, storeID uuid.UUID) ([]model.User, error)
	CountSuppliersByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) withProfiles(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("AdminProfile").
		Preload("SupplierProfile.AssignedStore")
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.withProfiles(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.withProfiles(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context, q UserQuery) ([]model.User, error) {
	var users []model.User
	db := r.withProfiles(ctx)
	if q.Role != "" {
		db = db.Where("role = ?", q.Role)
	}
	if !q.IncludeInactive {
		db = db.Where("is_active = true")
	}
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error)
}

func (r *userRepo) UpdateAdminProfile(ctx context.Context, p *model.AdminProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *userRepo) UpdateSupplierProfile(ctx context.Context, p *model.SupplierProfile) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error)
}

func (r *userRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *userRepo) suppliersOf(ctx context.Context, storeID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN supplier_profiles ON supplier_profiles.user_id = users.id").
		Where("supplier_profiles.assigned_store_id = ? AND users.is_active = true", storeID)
}

func (r *userRepo) ListSuppliersByStore(ctx context.Context, storeID uuid.UUID) ([]model.User, error) {
	var users []model.User
	err := r.suppliersOf(ctx, storeID).
		Preload("SupplierProfile.AssignedStore").
		Order("users.username ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) CountSuppliersByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var n int64
	err := r.suppliersOf(ctx, storeID).Count(&n).Error
	return n, err
}

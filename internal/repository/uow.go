package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups every repository bound to the same *gorm.DB handle,
// either the pool or an open transaction.
type Repositories struct {
	Users     UserRepository
	Stores    StoreRepository
	ItemTypes ItemTypeRepository
	Items     ItemRepository
	Income    IncomeRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     NewUserRepository(db),
		Stores:    NewStoreRepository(db),
		ItemTypes: NewItemTypeRepository(db),
		Items:     NewItemRepository(db),
		Income:    NewIncomeRepository(db),
	}
}

// UnitOfWork runs fn inside one transaction. A non-nil error from fn rolls
// everything back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Repositories) error) error
}

type gormUnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) UnitOfWork { return &gormUnitOfWork{db: db} }

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

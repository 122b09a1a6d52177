package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is a grocery store. Soft-deleted stores keep their items untouched.
type Store struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(200);uniqueIndex;not null"`
	Location    string     `gorm:"type:varchar(300);not null"`
	CreatedByID *uuid.UUID `gorm:"type:uuid"`
	IsDeleted   bool       `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

func (s *Store) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

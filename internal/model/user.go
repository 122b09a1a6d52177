package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles. A user's role is fixed at creation and selects which profile row exists.
const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool { return r == RoleAdmin || r == RoleSupplier }

// User stores system accounts. Email is stored lower-cased.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(150);not null"`
	FirstName    string    `gorm:"type:varchar(150);not null;default:''"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AdminProfile    *AdminProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SupplierProfile *SupplierProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}

// AdminProfile exists exactly for users with RoleAdmin.
type AdminProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Department string    `gorm:"type:varchar(100);not null;default:''"`
	Phone      string    `gorm:"type:varchar(20);not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p *AdminProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SupplierProfile exists exactly for users with RoleSupplier.
// AssignedStoreID scopes every write the supplier performs; nil means none.
type SupplierProfile struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	AssignedStoreID *uuid.UUID `gorm:"type:uuid;index"`
	Phone           string     `gorm:"type:varchar(20);not null;default:''"`
	HireDate        *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	AssignedStore *Store `gorm:"foreignKey:AssignedStoreID;constraint:OnDelete:SET NULL"`
}

func (p *SupplierProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stock status labels.
const (
	StockOut = "Out of Stock"
	StockLow = "Low Stock"
	StockIn  = "In Stock"
)

const DefaultReorderLevel = 10

// Item locations inside a store.
var ItemLocations = []string{"first_floor", "second_floor", "basement", "storage", "freezer", "display"}

// ValidLocation reports whether loc is one of ItemLocations.
func ValidLocation(loc string) bool {
	for _, l := range ItemLocations {
		if l == loc {
			return true
		}
	}
	return false
}

// ItemType groups items. Name is unique case-insensitively (lower(name) index).
type ItemType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *ItemType) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Item is a stocked product of one store.
// At most one non-deleted item per (store, lower(name)); enforced by a partial unique index.
type Item struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(200);not null"`
	ItemTypeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Location        string          `gorm:"type:varchar(20);not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StoreID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddedByID       *uuid.UUID      `gorm:"type:uuid"`
	SKU             string          `gorm:"type:varchar(50);not null;default:''"`
	QuantityInStock int             `gorm:"not null;default:0"`
	ReorderLevel    int             `gorm:"not null;default:10"`
	IsDeleted       bool            `gorm:"not null;default:false;index"`
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ItemType *ItemType `gorm:"foreignKey:ItemTypeID;constraint:OnDelete:RESTRICT"`
	Store    *Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	AddedBy  *User     `gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL"`
}

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// StockStatusFor derives the stock label from a quantity and its reorder level.
func StockStatusFor(quantity, reorderLevel int) string {
	switch {
	case quantity == 0:
		return StockOut
	case quantity <= reorderLevel:
		return StockLow
	default:
		return StockIn
	}
}

func (i Item) StockStatus() string { return StockStatusFor(i.QuantityInStock, i.ReorderLevel) }

func (i Item) IsLowStock() bool { return i.QuantityInStock <= i.ReorderLevel }

// FormatMoney renders an amount as "$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for n, r := range intPart {
		if n > 0 && (len(intPart)-n)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

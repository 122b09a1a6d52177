package infra

import (
	"fmt"

	"groceryhub/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, migrates the schema
// and applies the idempotent SQL patches GORM cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates every table, then applies schema patches.
// Integration tests call it directly against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.AdminProfile{},
		&model.SupplierProfile{},
		&model.ItemType{},
		&model.Item{},
		&model.DailyIncome{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL that struct tags cannot express:
// expression and partial unique indexes.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"item type name unique ignoring case",
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_item_types_lower_name
			    ON item_types (LOWER(name))`},
		{"one active item name per store",
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_items_store_active_name
			    ON items (store_id, LOWER(name))
			    WHERE is_deleted = false`},
		{"price must be positive", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_items_price_positive') THEN
    ALTER TABLE items ADD CONSTRAINT chk_items_price_positive CHECK (price > 0);
  END IF;
END $$`},
		{"stock counters non-negative", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_items_stock_non_negative') THEN
    ALTER TABLE items ADD CONSTRAINT chk_items_stock_non_negative
      CHECK (quantity_in_stock >= 0 AND reorder_level >= 0);
  END IF;
END $$`},
		{"income amount positive", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_daily_incomes_amount_positive') THEN
    ALTER TABLE daily_incomes ADD CONSTRAINT chk_daily_incomes_amount_positive CHECK (amount > 0);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}

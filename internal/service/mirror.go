package service

import (
	"context"

	"groceryhub/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GraphMirror receives one-way notifications after a store or item write has
// committed. Implementations must not block the caller and must swallow their
// own failures.
type GraphMirror interface {
	OnStoreUpserted(ctx context.Context, id uuid.UUID, name, location string)
	OnItemUpserted(ctx context.Context, id uuid.UUID, name, typeName string, price decimal.Decimal, storeID uuid.UUID)
	OnItemDeleted(ctx context.Context, id uuid.UUID)
}

// GraphReader serves store analytics from the graph store.
type GraphReader interface {
	StoreStats(ctx context.Context, storeID string) (infra.StoreGraphStats, bool, error)
}

// LowStockAlert describes an item whose stock just fell to or below its reorder level.
type LowStockAlert struct {
	ItemID       uuid.UUID
	ItemName     string
	StoreName    string
	Quantity     int
	ReorderLevel int
	StockStatus  string
}

// StockNotifier is told when SetStock moves an item into low or out of stock.
type StockNotifier interface {
	NotifyLowStock(ctx context.Context, alert LowStockAlert)
}

type nopMirror struct{}

// NopMirror discards every notification; used when no graph store is configured.
func NopMirror() GraphMirror { return nopMirror{} }

func (nopMirror) OnStoreUpserted(context.Context, uuid.UUID, string, string) {}
func (nopMirror) OnItemUpserted(context.Context, uuid.UUID, string, string, decimal.Decimal, uuid.UUID) {
}
func (nopMirror) OnItemDeleted(context.Context, uuid.UUID) {}

type nopNotifier struct{}

func NopNotifier() StockNotifier { return nopNotifier{} }

func (nopNotifier) NotifyLowStock(context.Context, LowStockAlert) {}

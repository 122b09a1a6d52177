package service

import (
	"context"
	"testing"
	"time"

	"groceryhub/internal/authz"
	"groceryhub/internal/config"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	passwordHashCost = bcrypt.MinCost
}

// today is the pinned civil date every service in the harness sees.
var today = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

type harness struct {
	db       *memDB
	repos    repository.Repositories
	uow      *memUoW
	mirror   *recordingMirror
	notifier *recordingNotifier
	cfg      *config.Config

	auth   AuthService
	users  UserService
	stores StoreService
	types  ItemTypeService
	items  ItemService
	income IncomeService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := newMemDB()
	h := &harness{
		db:       db,
		repos:    db.repositories(),
		uow:      &memUoW{db: db},
		mirror:   &recordingMirror{},
		notifier: &recordingNotifier{},
		cfg: &config.Config{
			JWTSecret:          "test-secret",
			JWTExpirationHours: 1,
			JWTRefreshHours:    24,
		},
	}
	clock := func() time.Time { return today }
	h.auth = NewAuthService(h.repos, h.uow, h.cfg)
	h.users = NewUserService(h.repos, h.uow)
	h.stores = NewStoreService(h.repos, h.uow, h.mirror, nil, clock)
	h.types = NewItemTypeService(h.repos, h.uow, h.mirror)
	h.items = NewItemService(h.repos, h.uow, h.mirror, h.notifier, clock)
	h.income = NewIncomeService(h.repos, h.uow, clock)
	return h
}

// ── fixtures ──

func (h *harness) admin(t *testing.T) authz.Actor {
	t.Helper()
	u := &model.User{
		Email:        uuid.NewString() + "@admin.test",
		Username:     "admin",
		FirstName:    "Ada",
		LastName:     "Admin",
		Role:         model.RoleAdmin,
		IsActive:     true,
		AdminProfile: &model.AdminProfile{Department: "ops"},
	}
	require.NoError(t, h.repos.Users.Create(context.Background(), u))
	return authz.Admin(u.ID)
}

// supplier creates a supplier user; storeID may be nil for an unassigned one.
func (h *harness) supplier(t *testing.T, storeID *uuid.UUID) authz.Actor {
	t.Helper()
	u := &model.User{
		Email:           uuid.NewString() + "@supplier.test",
		Username:        "supplier",
		FirstName:       "Sam",
		LastName:        "Supplier",
		Role:            model.RoleSupplier,
		IsActive:        true,
		SupplierProfile: &model.SupplierProfile{AssignedStoreID: storeID},
	}
	require.NoError(t, h.repos.Users.Create(context.Background(), u))
	return authz.Supplier(u.ID, storeID)
}

func (h *harness) store(t *testing.T, admin authz.Actor, name string) uuid.UUID {
	t.Helper()
	resp, err := h.stores.Create(context.Background(), admin, dto.CreateStoreRequest{Name: name, Location: "Main St"})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func (h *harness) itemType(t *testing.T, admin authz.Actor, name string) uuid.UUID {
	t.Helper()
	resp, err := h.types.Create(context.Background(), admin, dto.CreateItemTypeRequest{Name: name})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func (h *harness) item(t *testing.T, actor authz.Actor, storeID, typeID uuid.UUID, name string, qty int) dto.ItemResponse {
	t.Helper()
	resp, err := h.items.Create(context.Background(), actor, itemRequest(storeID, typeID, name, "2.50", qty))
	require.NoError(t, err)
	return resp
}

func itemRequest(storeID, typeID uuid.UUID, name, price string, qty int) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:            name,
		ItemTypeID:      typeID.String(),
		Location:        "first_floor",
		Price:           decimal.RequireFromString(price),
		StoreID:         storeID.String(),
		QuantityInStock: &qty,
	}
}

func incomeRequest(storeID uuid.UUID, date, amount string) dto.RecordIncomeRequest {
	return dto.RecordIncomeRequest{StoreID: storeID.String(), Date: date, Amount: decimal.RequireFromString(amount)}
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

package service

import (
	"context"
	"errors"
	"testing"

	"groceryhub/internal/apierror"
	"groceryhub/internal/dto"
	"groceryhub/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreate_AdminOnlyAndUniqueName(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	sup := h.supplier(t, nil)

	_, err := h.stores.Create(context.Background(), sup, dto.CreateStoreRequest{Name: "X", Location: "Y"})
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))

	resp, err := h.stores.Create(context.Background(), admin, dto.CreateStoreRequest{Name: "Green Market", Location: "Main St"})
	require.NoError(t, err)
	require.NotNil(t, resp.CreatedByName)
	assert.Equal(t, "Ada Admin", *resp.CreatedByName)
	require.NotNil(t, resp.ItemCount)
	assert.Zero(t, *resp.ItemCount)

	_, err = h.stores.Create(context.Background(), admin, dto.CreateStoreRequest{Name: "Green Market", Location: "Elsewhere"})
	assert.True(t, apierror.HasCode(err, apierror.CodeDuplicateName))

	// store names are case-sensitive
	_, err = h.stores.Create(context.Background(), admin, dto.CreateStoreRequest{Name: "green market", Location: "Elsewhere"})
	assert.NoError(t, err)

	calls := h.mirror.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "store", calls[0].Kind)
}

func TestStoreSoftDelete_IsolatesFromListsButKeepsItems(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")
	typeID := h.itemType(t, admin, "Fruit")
	it := h.item(t, admin, storeID, typeID, "Apple", 20)

	require.NoError(t, h.stores.SoftDelete(context.Background(), admin, storeID))

	list, err := h.stores.List(context.Background(), admin, dto.StoreFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = h.stores.Get(context.Background(), admin, storeID, false)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))

	got, err := h.stores.Get(context.Background(), admin, storeID, true)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.NotNil(t, got.DeletedAt)

	item, err := h.items.Get(context.Background(), admin, uuid.MustParse(it.ID), false)
	require.NoError(t, err)
	assert.False(t, item.IsDeleted)

	_, err = h.items.Create(context.Background(), admin, itemRequest(storeID, typeID, "Pear", "1.00", 1))
	assert.True(t, apierror.HasCode(err, apierror.CodeDeletedStore))

	// the name stays reserved while deleted
	_, err = h.stores.Create(context.Background(), admin, dto.CreateStoreRequest{Name: "Green Market", Location: "New"})
	assert.True(t, apierror.IsKind(err, apierror.KindDuplicate))
}

func TestStoreList_IncludeDeletedAdminOnly(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Gone")
	h.store(t, admin, "Here")
	require.NoError(t, h.stores.SoftDelete(context.Background(), admin, storeID))

	all, err := h.stores.List(context.Background(), admin, dto.StoreFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	sup := h.supplier(t, nil)
	_, err = h.stores.List(context.Background(), sup, dto.StoreFilter{IncludeDeleted: true})
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))

	visible, err := h.stores.List(context.Background(), sup, dto.StoreFilter{})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Here", visible[0].Name)
}

func TestStoreRestore(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")

	_, err := h.stores.Restore(context.Background(), admin, storeID)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound), "restoring a live store")

	require.NoError(t, h.stores.SoftDelete(context.Background(), admin, storeID))
	assert.True(t, apierror.IsKind(h.stores.SoftDelete(context.Background(), admin, storeID), apierror.KindNotFound))

	restored, err := h.stores.Restore(context.Background(), admin, storeID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)
}

func TestStoreUpdate_RenameConflicts(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	a := h.store(t, admin, "A")
	h.store(t, admin, "B")

	_, err := h.stores.Update(context.Background(), admin, a, dto.UpdateStoreRequest{Name: strPtr("B")})
	assert.True(t, apierror.IsKind(err, apierror.KindDuplicate))

	resp, err := h.stores.Update(context.Background(), admin, a, dto.UpdateStoreRequest{Name: strPtr("A2"), Location: strPtr("Dock")})
	require.NoError(t, err)
	assert.Equal(t, "A2", resp.Name)
	assert.Equal(t, "Dock", resp.Location)
}

func TestAssignSupplier_AndMyStore(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")
	sup := h.supplier(t, nil)

	_, err := h.stores.MyStore(context.Background(), sup)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	_, err = h.stores.MyStore(context.Background(), admin)
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))

	_, err = h.stores.AssignSupplier(context.Background(), admin, admin.UserID, storeID)
	assert.True(t, apierror.HasCode(err, apierror.CodeInvalidRole))

	user, err := h.stores.AssignSupplier(context.Background(), admin, sup.UserID, storeID)
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	require.NotNil(t, user.Profile.AssignedStoreName)
	assert.Equal(t, "Green Market", *user.Profile.AssignedStoreName)

	actor, err := h.auth.ResolveActor(context.Background(), sup.UserID)
	require.NoError(t, err)
	mine, err := h.stores.MyStore(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, storeID.String(), mine.ID)
	require.NotNil(t, mine.SupplierCount)
	assert.Equal(t, int64(1), *mine.SupplierCount)

	suppliers, err := h.stores.Suppliers(context.Background(), admin, storeID)
	require.NoError(t, err)
	assert.Len(t, suppliers, 1)
}

type stubGraph struct {
	stats infra.StoreGraphStats
	found bool
	err   error
}

func (g stubGraph) StoreStats(context.Context, string) (infra.StoreGraphStats, bool, error) {
	return g.stats, g.found, g.err
}

func TestStoreAnalytics(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")

	_, err := h.stores.Analytics(context.Background(), admin, storeID)
	assert.ErrorIs(t, err, ErrAnalyticsUnavailable)

	svc := NewStoreService(h.repos, h.uow, nil, stubGraph{err: errors.New("connection refused")}, nil)
	_, err = svc.Analytics(context.Background(), admin, storeID)
	assert.ErrorIs(t, err, ErrAnalyticsUnavailable)

	svc = NewStoreService(h.repos, h.uow, nil, stubGraph{
		found: true,
		stats: infra.StoreGraphStats{StoreName: "Green Market", TotalItems: 3, AveragePrice: 2.333333, ItemTypes: []string{"Fruit"}},
	}, nil)
	resp, err := svc.Analytics(context.Background(), admin, storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalItems)
	assert.Equal(t, "2.33", resp.AveragePrice.String())
	assert.Equal(t, []string{"Fruit"}, resp.ItemTypes)

	svc = NewStoreService(h.repos, h.uow, nil, stubGraph{}, nil)
	empty, err := svc.Analytics(context.Background(), admin, storeID)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalItems)
	assert.Empty(t, empty.ItemTypes)
}

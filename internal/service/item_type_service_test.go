package service

import (
	"context"
	"testing"

	"groceryhub/internal/apierror"
	"groceryhub/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemType_NameUniqueIgnoringCase(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	h.itemType(t, admin, "Dairy")

	_, err := h.types.Create(context.Background(), admin, dto.CreateItemTypeRequest{Name: "DAIRY"})
	assert.True(t, apierror.HasCode(err, apierror.CodeDuplicateName))

	_, err = h.types.Create(context.Background(), h.supplier(t, nil), dto.CreateItemTypeRequest{Name: "Bakery"})
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))
}

func TestItemTypeDelete_InUse(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")
	typeID := h.itemType(t, admin, "Fruit")
	it := h.item(t, admin, storeID, typeID, "Apple", 1)

	err := h.types.Delete(context.Background(), admin, typeID)
	assert.True(t, apierror.HasCode(err, apierror.CodeInUse))

	require.NoError(t, h.items.SoftDelete(context.Background(), admin, uuid.MustParse(it.ID)))
	got, err := h.types.Get(context.Background(), typeID)
	require.NoError(t, err)
	assert.Zero(t, got.ActiveItemsCount)
	assert.Equal(t, int64(1), got.TotalItems)

	err = h.types.Delete(context.Background(), admin, typeID)
	assert.True(t, apierror.IsKind(err, apierror.KindConflict), "soft-deleted items still reference the type")

	unused := h.itemType(t, admin, "Unused")
	require.NoError(t, h.types.Delete(context.Background(), admin, unused))
	_, err = h.types.Get(context.Background(), unused)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestItemTypeRename_ReplaysItemsToMirror(t *testing.T) {
	h := newHarness(t)
	admin := h.admin(t)
	storeID := h.store(t, admin, "Green Market")
	typeID := h.itemType(t, admin, "Fruit")
	h.item(t, admin, storeID, typeID, "Apple", 1)
	h.item(t, admin, storeID, typeID, "Pear", 1)
	before := len(h.mirror.Calls())

	resp, err := h.types.Update(context.Background(), admin, typeID, dto.UpdateItemTypeRequest{Name: strPtr("Fresh Fruit")})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruit", resp.Name)
	assert.Equal(t, int64(2), resp.ActiveItemsCount)
	assert.Len(t, h.mirror.Calls(), before+2)

	items, err := h.types.Items(context.Background(), typeID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruit", items[0].ItemTypeName)
}

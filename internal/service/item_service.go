package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ItemService interface {
	Create(ctx context.Context, actor authz.Actor, req dto.CreateItemRequest) (dto.ItemResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID, includeDeleted bool) (dto.ItemResponse, error)
	List(ctx context.Context, actor authz.Actor, filter dto.ItemFilter) (dto.ItemListResponse, error)
	SoftDelete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	Restore(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.ItemResponse, error)
	SetStock(ctx context.Context, actor authz.Actor, id uuid.UUID, quantity *json.Number) (dto.StockUpdateResponse, error)
	LowStock(ctx context.Context, actor authz.Actor) ([]dto.ItemResponse, error)
	MyItems(ctx context.Context, actor authz.Actor) ([]dto.ItemResponse, error)
	Summary(ctx context.Context, actor authz.Actor) (dto.InventorySummaryResponse, error)
}

type itemService struct {
	repos    repository.Repositories
	uow      repository.UnitOfWork
	mirror   GraphMirror
	notifier StockNotifier
	now      Clock
}

func NewItemService(repos repository.Repositories, uow repository.UnitOfWork, mirror GraphMirror, notifier StockNotifier, now Clock) ItemService {
	if mirror == nil {
		mirror = NopMirror()
	}
	if notifier == nil {
		notifier = NopNotifier()
	}
	return &itemService{repos: repos, uow: uow, mirror: mirror, notifier: notifier, now: orNow(now)}
}

func duplicateItemName() error {
	return apierror.Duplicate(apierror.CodeDuplicateName, "name", "an item with this name already exists in this store")
}

// Prices are stored as decimal(10,2).
const priceIntDigits = 8

func validatePrice(p decimal.Decimal) error {
	return validateMoney("price", apierror.CodeNonPositivePrice, p, priceIntDigits)
}

func validateLocation(loc string) error {
	if !model.ValidLocation(loc) {
		return apierror.Validation(apierror.CodeInvalidLocation, "location",
			"location must be one of "+strings.Join(model.ItemLocations, ", "))
	}
	return nil
}

func validateNonNegative(field string, v int) error {
	if v < 0 {
		return apierror.Validation(apierror.CodeNegativeValue, field, field+" cannot be negative")
	}
	return nil
}

// ParseQuantity accepts whole non-negative numbers ("5" and "5.0" alike).
func ParseQuantity(n *json.Number) (int, error) {
	if n == nil {
		return 0, apierror.Validation(apierror.CodeInvalidQuantity, "quantity", "quantity is required")
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() {
		return 0, apierror.Validation(apierror.CodeInvalidQuantity, "quantity", "quantity must be a whole number")
	}
	if d.IsNegative() {
		return 0, apierror.Validation(apierror.CodeInvalidQuantity, "quantity", "quantity cannot be negative")
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, apierror.Validation(apierror.CodeInvalidQuantity, "quantity", "quantity is too large")
	}
	return int(d.IntPart()), nil
}

func (s *itemService) Create(ctx context.Context, actor authz.Actor, req dto.CreateItemRequest) (dto.ItemResponse, error) {
	storeID, err := parseID("store_id", req.StoreID)
	if err != nil {
		return dto.ItemResponse{}, err
	}
	typeID, err := parseID("item_type_id", req.ItemTypeID)
	if err != nil {
		return dto.ItemResponse{}, err
	}

	var created *model.Item
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		store, err := tx.Stores.FindByID(ctx, storeID, true)
		if err != nil {
			return notFound(err, "store not found")
		}
		if err := actor.RequireWrite(store.ID); err != nil {
			return err
		}
		if store.IsDeleted {
			return apierror.Validation(apierror.CodeDeletedStore, "store_id", "cannot add items to a deleted store")
		}
		if err := validatePrice(req.Price); err != nil {
			return err
		}
		if err := validateLocation(req.Location); err != nil {
			return err
		}

		qty, reorder := 0, model.DefaultReorderLevel
		if req.QuantityInStock != nil {
			qty = *req.QuantityInStock
		}
		if req.ReorderLevel != nil {
			reorder = *req.ReorderLevel
		}
		if err := validateNonNegative("quantity_in_stock", qty); err != nil {
			return err
		}
		if err := validateNonNegative("reorder_level", reorder); err != nil {
			return err
		}

		if _, err := tx.ItemTypes.FindByID(ctx, typeID); err != nil {
			return notFound(err, "item type not found")
		}
		if _, err := tx.Items.FindActiveByName(ctx, storeID, req.Name); err == nil {
			return duplicateItemName()
		} else if !isNotFound(err) {
			return err
		}

		addedBy := actor.UserID
		item := &model.Item{
			Name:            req.Name,
			ItemTypeID:      typeID,
			Location:        req.Location,
			Price:           req.Price,
			StoreID:         storeID,
			AddedByID:       &addedBy,
			SKU:             req.SKU,
			QuantityInStock: qty,
			ReorderLevel:    reorder,
		}
		if err := tx.Items.Create(ctx, item); err != nil {
			if isDuplicate(err) {
				return duplicateItemName()
			}
			return rejectedBy(err, "price")
		}
		created, err = tx.Items.FindByID(ctx, item.ID, false)
		return err
	})
	if err != nil {
		return dto.ItemResponse{}, err
	}

	s.notifyUpsert(ctx, *created)
	return mapItem(*created), nil
}

func (s *itemService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateItemRequest) (dto.ItemResponse, error) {
	var updated *model.Item
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		item, err := tx.Items.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, "item not found")
		}
		if err := actor.RequireWrite(item.StoreID); err != nil {
			return err
		}

		if req.Price != nil {
			if err := validatePrice(*req.Price); err != nil {
				return err
			}
			item.Price = *req.Price
		}
		if req.Location != nil {
			if err := validateLocation(*req.Location); err != nil {
				return err
			}
			item.Location = *req.Location
		}
		if req.ReorderLevel != nil {
			if err := validateNonNegative("reorder_level", *req.ReorderLevel); err != nil {
				return err
			}
			item.ReorderLevel = *req.ReorderLevel
		}
		if req.SKU != nil {
			item.SKU = *req.SKU
		}
		if req.ItemTypeID != nil {
			typeID, err := parseID("item_type_id", *req.ItemTypeID)
			if err != nil {
				return err
			}
			if _, err := tx.ItemTypes.FindByID(ctx, typeID); err != nil {
				return notFound(err, "item type not found")
			}
			item.ItemTypeID = typeID
		}
		if req.Name != nil && !strings.EqualFold(*req.Name, item.Name) {
			existing, err := tx.Items.FindActiveByName(ctx, item.StoreID, *req.Name)
			if err == nil && existing.ID != item.ID {
				return duplicateItemName()
			} else if err != nil && !isNotFound(err) {
				return err
			}
		}
		if req.Name != nil {
			item.Name = *req.Name
		}

		item.ItemType, item.Store, item.AddedBy = nil, nil, nil
		if err := tx.Items.Update(ctx, item); err != nil {
			if isDuplicate(err) {
				return duplicateItemName()
			}
			return rejectedBy(err, "price")
		}
		updated, err = tx.Items.FindByID(ctx, id, false)
		return err
	})
	if err != nil {
		return dto.ItemResponse{}, err
	}

	s.notifyUpsert(ctx, *updated)
	return mapItem(*updated), nil
}

func (s *itemService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID, includeDeleted bool) (dto.ItemResponse, error) {
	item, err := s.repos.Items.FindByID(ctx, id, includeDeleted && actor.IsAdmin())
	if err != nil {
		return dto.ItemResponse{}, notFound(err, "item not found")
	}
	return mapItem(*item), nil
}

func (s *itemService) List(ctx context.Context, actor authz.Actor, filter dto.ItemFilter) (dto.ItemListResponse, error) {
	if filter.IncludeDeleted && !actor.IsAdmin() {
		return dto.ItemListResponse{}, apierror.Forbidden("only admins can list deleted items")
	}
	storeID, err := parseOptionalID("store_id", filter.StoreID)
	if err != nil {
		return dto.ItemListResponse{}, err
	}
	typeID, err := parseOptionalID("item_type_id", filter.ItemTypeID)
	if err != nil {
		return dto.ItemListResponse{}, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	items, total, err := s.repos.Items.List(ctx, repository.ItemQuery{
		StoreID:        storeID,
		ItemTypeID:     typeID,
		Location:       filter.Location,
		Search:         filter.Search,
		Ordering:       filter.Ordering,
		IncludeDeleted: filter.IncludeDeleted,
		Page:           filter.Page,
		Limit:          filter.Limit,
	})
	if err != nil {
		return dto.ItemListResponse{}, err
	}
	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}
	return dto.ItemListResponse{
		Data:       mapItems(items),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *itemService) SoftDelete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		item, err := tx.Items.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, "item not found")
		}
		if err := actor.RequireWrite(item.StoreID); err != nil {
			return err
		}
		return tx.Items.SoftDelete(ctx, id, s.now())
	})
	if err != nil {
		return err
	}
	s.mirror.OnItemDeleted(ctx, id)
	return nil
}

func (s *itemService) Restore(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.ItemResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.ItemResponse{}, err
	}
	var restored *model.Item
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		item, err := tx.Items.FindByID(ctx, id, true)
		if err != nil {
			return notFound(err, "deleted item not found")
		}
		if !item.IsDeleted {
			return apierror.NotFound("deleted item not found")
		}
		if _, err := tx.Items.FindActiveByName(ctx, item.StoreID, item.Name); err == nil {
			return duplicateItemName()
		} else if !isNotFound(err) {
			return err
		}
		if err := tx.Items.Restore(ctx, id); err != nil {
			if isDuplicate(err) {
				return duplicateItemName()
			}
			return err
		}
		restored, err = tx.Items.FindByID(ctx, id, false)
		return err
	})
	if err != nil {
		return dto.ItemResponse{}, err
	}

	s.notifyUpsert(ctx, *restored)
	return mapItem(*restored), nil
}

func (s *itemService) SetStock(ctx context.Context, actor authz.Actor, id uuid.UUID, quantity *json.Number) (dto.StockUpdateResponse, error) {
	qty, err := ParseQuantity(quantity)
	if err != nil {
		return dto.StockUpdateResponse{}, err
	}

	var item *model.Item
	var previous string
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		var err error
		item, err = tx.Items.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, "item not found")
		}
		if err := actor.RequireWrite(item.StoreID); err != nil {
			return err
		}
		previous = item.StockStatus()
		if err := tx.Items.SetQuantity(ctx, id, qty); err != nil {
			return err
		}
		item.QuantityInStock = qty
		return nil
	})
	if err != nil {
		return dto.StockUpdateResponse{}, err
	}

	status := item.StockStatus()
	if status != model.StockIn && status != previous {
		alert := LowStockAlert{
			ItemID:       item.ID,
			ItemName:     item.Name,
			Quantity:     item.QuantityInStock,
			ReorderLevel: item.ReorderLevel,
			StockStatus:  status,
		}
		if item.Store != nil {
			alert.StoreName = item.Store.Name
		}
		s.notifier.NotifyLowStock(ctx, alert)
		log.Info().Str("item_id", item.ID.String()).Str("status", status).Msg("item stock dropped")
	}

	return dto.StockUpdateResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		QuantityInStock: item.QuantityInStock,
		StockStatus:     status,
		IsLowStock:      item.IsLowStock(),
	}, nil
}

func (s *itemService) LowStock(ctx context.Context, actor authz.Actor) ([]dto.ItemResponse, error) {
	scope := actor.WriteScope()
	if scope.Empty() {
		return []dto.ItemResponse{}, nil
	}
	items, err := s.repos.Items.ListLowStock(ctx, scope.StoreID)
	if err != nil {
		return nil, err
	}
	return mapItems(items), nil
}

func (s *itemService) MyItems(ctx context.Context, actor authz.Actor) ([]dto.ItemResponse, error) {
	if !actor.IsSupplier() {
		return nil, apierror.Forbidden("only suppliers can access this endpoint")
	}
	if !actor.HasStore() {
		return nil, apierror.NotFound("no store assigned")
	}
	items, _, err := s.repos.Items.List(ctx, repository.ItemQuery{StoreID: actor.AssignedStoreID, Ordering: "name"})
	if err != nil {
		return nil, err
	}
	return mapItems(items), nil
}

func (s *itemService) Summary(ctx context.Context, actor authz.Actor) (dto.InventorySummaryResponse, error) {
	resp := dto.InventorySummaryResponse{TotalValue: decimal.Zero, AveragePrice: decimal.Zero}
	scope := actor.WriteScope()
	if scope.Empty() {
		return resp, nil
	}

	totals, err := s.repos.Items.Totals(ctx, scope.StoreID)
	if err != nil {
		return resp, err
	}
	resp.TotalItems = totals.TotalItems
	resp.TotalValue = totals.TotalValue.Round(2)
	resp.AveragePrice = totals.AveragePrice.Round(2)
	resp.LowStockCount = totals.LowStockCount
	resp.OutOfStockCount = totals.OutOfStockCount

	if actor.IsAdmin() {
		rows, err := s.repos.Items.TotalsByStore(ctx)
		if err != nil {
			return resp, err
		}
		resp.StoreBreakdown = make([]dto.StoreInventoryLine, 0, len(rows))
		for _, r := range rows {
			resp.StoreBreakdown = append(resp.StoreBreakdown, dto.StoreInventoryLine{
				StoreID:    r.StoreID.String(),
				StoreName:  r.StoreName,
				ItemCount:  r.ItemCount,
				TotalValue: r.TotalValue.Round(2),
			})
		}
	}
	return resp, nil
}

func (s *itemService) notifyUpsert(ctx context.Context, i model.Item) {
	s.mirror.OnItemUpserted(ctx, i.ID, i.Name, derefTypeName(i), i.Price, i.StoreID)
}

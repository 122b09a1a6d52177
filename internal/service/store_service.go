package service

import (
	"context"
	"errors"
	"fmt"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrAnalyticsUnavailable is returned when the graph store cannot answer.
var ErrAnalyticsUnavailable = errors.New("analytics service unavailable")

type StoreService interface {
	Create(ctx context.Context, actor authz.Actor, req dto.CreateStoreRequest) (dto.StoreResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateStoreRequest) (dto.StoreResponse, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID, includeDeleted bool) (dto.StoreResponse, error)
	List(ctx context.Context, actor authz.Actor, filter dto.StoreFilter) ([]dto.StoreResponse, error)
	SoftDelete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	Restore(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.StoreResponse, error)
	AssignSupplier(ctx context.Context, actor authz.Actor, supplierID, storeID uuid.UUID) (dto.UserResponse, error)
	MyStore(ctx context.Context, actor authz.Actor) (dto.StoreResponse, error)
	Suppliers(ctx context.Context, actor authz.Actor, id uuid.UUID) ([]dto.UserResponse, error)
	Items(ctx context.Context, actor authz.Actor, id uuid.UUID) ([]dto.ItemResponse, error)
	Analytics(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.StoreAnalyticsResponse, error)
}

type storeService struct {
	repos  repository.Repositories
	uow    repository.UnitOfWork
	mirror GraphMirror
	graph  GraphReader
	now    Clock
}

// NewStoreService wires the registry. graph may be nil when no graph store
// is configured; Analytics then reports ErrAnalyticsUnavailable.
func NewStoreService(repos repository.Repositories, uow repository.UnitOfWork, mirror GraphMirror, graph GraphReader, now Clock) StoreService {
	if mirror == nil {
		mirror = NopMirror()
	}
	return &storeService{repos: repos, uow: uow, mirror: mirror, graph: graph, now: orNow(now)}
}

func duplicateStoreName() error {
	return apierror.Duplicate(apierror.CodeDuplicateName, "name", "a store with this name already exists")
}

func (s *storeService) Create(ctx context.Context, actor authz.Actor, req dto.CreateStoreRequest) (dto.StoreResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.StoreResponse{}, err
	}

	creator := actor.UserID
	store := &model.Store{Name: req.Name, Location: req.Location, CreatedByID: &creator}
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.Stores.FindByName(ctx, req.Name, true); err == nil {
			return duplicateStoreName()
		} else if !isNotFound(err) {
			return err
		}
		if err := tx.Stores.Create(ctx, store); err != nil {
			if isDuplicate(err) {
				return duplicateStoreName()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.StoreResponse{}, err
	}

	s.mirror.OnStoreUpserted(ctx, store.ID, store.Name, store.Location)
	return s.Get(ctx, actor, store.ID, false)
}

func (s *storeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateStoreRequest) (dto.StoreResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.StoreResponse{}, err
	}

	var store *model.Store
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		var err error
		store, err = tx.Stores.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, "store not found")
		}
		if req.Name != nil && *req.Name != store.Name {
			existing, err := tx.Stores.FindByName(ctx, *req.Name, true)
			if err == nil && existing.ID != id {
				return duplicateStoreName()
			} else if err != nil && !isNotFound(err) {
				return err
			}
			store.Name = *req.Name
		}
		if req.Location != nil {
			store.Location = *req.Location
		}
		if err := tx.Stores.Update(ctx, store); err != nil {
			if isDuplicate(err) {
				return duplicateStoreName()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.StoreResponse{}, err
	}

	s.mirror.OnStoreUpserted(ctx, store.ID, store.Name, store.Location)
	return s.Get(ctx, actor, id, false)
}

func (s *storeService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID, includeDeleted bool) (dto.StoreResponse, error) {
	store, err := s.repos.Stores.FindByID(ctx, id, includeDeleted && actor.IsAdmin())
	if err != nil {
		return dto.StoreResponse{}, notFound(err, "store not found")
	}
	suppliers, err := s.repos.Users.CountSuppliersByStore(ctx, id)
	if err != nil {
		return dto.StoreResponse{}, err
	}
	items, err := s.repos.Items.CountByStore(ctx, id)
	if err != nil {
		return dto.StoreResponse{}, err
	}
	resp := mapStore(*store)
	resp.SupplierCount = &suppliers
	resp.ItemCount = &items
	return resp, nil
}

func (s *storeService) List(ctx context.Context, actor authz.Actor, filter dto.StoreFilter) ([]dto.StoreResponse, error) {
	if filter.IncludeDeleted && !actor.IsAdmin() {
		return nil, apierror.Forbidden("only admins can list deleted stores")
	}
	stores, err := s.repos.Stores.List(ctx, repository.StoreQuery{
		Search:         filter.Search,
		Location:       filter.Location,
		Ordering:       filter.Ordering,
		IncludeDeleted: filter.IncludeDeleted,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, st := range stores {
		out = append(out, mapStore(st))
	}
	return out, nil
}

func (s *storeService) SoftDelete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.Stores.FindByID(ctx, id, false); err != nil {
			return notFound(err, "store not found")
		}
		return tx.Stores.SoftDelete(ctx, id, s.now())
	})
}

func (s *storeService) Restore(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.StoreResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.StoreResponse{}, err
	}
	var store *model.Store
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		var err error
		store, err = tx.Stores.FindByID(ctx, id, true)
		if err != nil {
			return notFound(err, "deleted store not found")
		}
		if !store.IsDeleted {
			return apierror.NotFound("deleted store not found")
		}
		return tx.Stores.Restore(ctx, id)
	})
	if err != nil {
		return dto.StoreResponse{}, err
	}

	s.mirror.OnStoreUpserted(ctx, store.ID, store.Name, store.Location)
	return s.Get(ctx, actor, id, false)
}

func (s *storeService) AssignSupplier(ctx context.Context, actor authz.Actor, supplierID, storeID uuid.UUID) (dto.UserResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.UserResponse{}, err
	}

	var updated *model.User
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		user, err := tx.Users.FindByID(ctx, supplierID)
		if err != nil {
			return notFound(err, "user not found")
		}
		if user.Role != model.RoleSupplier {
			return apierror.Validation(apierror.CodeInvalidRole, "user_id", "only suppliers can be assigned to a store")
		}
		store, err := tx.Stores.FindByID(ctx, storeID, false)
		if err != nil {
			return notFound(err, "store not found")
		}

		profile := user.SupplierProfile
		if profile == nil {
			profile = &model.SupplierProfile{UserID: user.ID}
		}
		profile.AssignedStoreID = &store.ID
		profile.AssignedStore = nil
		if err := tx.Users.UpdateSupplierProfile(ctx, profile); err != nil {
			return err
		}

		updated, err = tx.Users.FindByID(ctx, supplierID)
		return err
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	return mapUser(*updated), nil
}

func (s *storeService) MyStore(ctx context.Context, actor authz.Actor) (dto.StoreResponse, error) {
	if !actor.IsSupplier() {
		return dto.StoreResponse{}, apierror.Forbidden("only suppliers can access this endpoint")
	}
	if !actor.HasStore() {
		return dto.StoreResponse{}, apierror.NotFound("no store assigned")
	}
	return s.Get(ctx, actor, *actor.AssignedStoreID, false)
}

func (s *storeService) Suppliers(ctx context.Context, actor authz.Actor, id uuid.UUID) ([]dto.UserResponse, error) {
	if _, err := s.repos.Stores.FindByID(ctx, id, false); err != nil {
		return nil, notFound(err, "store not found")
	}
	users, err := s.repos.Users.ListSuppliersByStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out, nil
}

func (s *storeService) Items(ctx context.Context, actor authz.Actor, id uuid.UUID) ([]dto.ItemResponse, error) {
	if _, err := s.repos.Stores.FindByID(ctx, id, false); err != nil {
		return nil, notFound(err, "store not found")
	}
	items, _, err := s.repos.Items.List(ctx, repository.ItemQuery{StoreID: &id, Ordering: "name"})
	if err != nil {
		return nil, err
	}
	return mapItems(items), nil
}

func (s *storeService) Analytics(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.StoreAnalyticsResponse, error) {
	store, err := s.repos.Stores.FindByID(ctx, id, false)
	if err != nil {
		return dto.StoreAnalyticsResponse{}, notFound(err, "store not found")
	}
	if s.graph == nil {
		return dto.StoreAnalyticsResponse{}, ErrAnalyticsUnavailable
	}

	stats, found, err := s.graph.StoreStats(ctx, id.String())
	if err != nil {
		return dto.StoreAnalyticsResponse{}, fmt.Errorf("%w: %v", ErrAnalyticsUnavailable, err)
	}
	resp := dto.StoreAnalyticsResponse{
		StoreID:      id.String(),
		StoreName:    store.Name,
		AveragePrice: decimal.Zero,
		ItemTypes:    []string{},
	}
	if !found {
		return resp, nil
	}
	resp.TotalItems = stats.TotalItems
	resp.AveragePrice = decimal.NewFromFloat(stats.AveragePrice).Round(2)
	if stats.ItemTypes != nil {
		resp.ItemTypes = stats.ItemTypes
	}
	return resp, nil
}

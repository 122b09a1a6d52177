package service

import (
	"context"
	"errors"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
)

type ItemTypeService interface {
	Create(ctx context.Context, actor authz.Actor, req dto.CreateItemTypeRequest) (dto.ItemTypeResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateItemTypeRequest) (dto.ItemTypeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.ItemTypeResponse, error)
	List(ctx context.Context, filter dto.ItemTypeFilter) ([]dto.ItemTypeResponse, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	Items(ctx context.Context, id uuid.UUID) ([]dto.ItemResponse, error)
}

type itemTypeService struct {
	repos  repository.Repositories
	uow    repository.UnitOfWork
	mirror GraphMirror
}

func NewItemTypeService(repos repository.Repositories, uow repository.UnitOfWork, mirror GraphMirror) ItemTypeService {
	if mirror == nil {
		mirror = NopMirror()
	}
	return &itemTypeService{repos: repos, uow: uow, mirror: mirror}
}

func duplicateItemTypeName() error {
	return apierror.Duplicate(apierror.CodeDuplicateName, "name", "an item type with this name already exists")
}

func (s *itemTypeService) Create(ctx context.Context, actor authz.Actor, req dto.CreateItemTypeRequest) (dto.ItemTypeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.ItemTypeResponse{}, err
	}
	t := &model.ItemType{Name: req.Name, Description: req.Description}
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.ItemTypes.FindByName(ctx, req.Name); err == nil {
			return duplicateItemTypeName()
		} else if !isNotFound(err) {
			return err
		}
		if err := tx.ItemTypes.Create(ctx, t); err != nil {
			if isDuplicate(err) {
				return duplicateItemTypeName()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.ItemTypeResponse{}, err
	}
	return mapItemType(*t, repository.ItemTypeCounts{}), nil
}

func (s *itemTypeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateItemTypeRequest) (dto.ItemTypeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.ItemTypeResponse{}, err
	}
	renamed := false
	err := s.uow.Do(ctx, func(tx repository.Repositories) error {
		t, err := tx.ItemTypes.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "item type not found")
		}
		if req.Name != nil && *req.Name != t.Name {
			existing, err := tx.ItemTypes.FindByName(ctx, *req.Name)
			if err == nil && existing.ID != id {
				return duplicateItemTypeName()
			} else if err != nil && !isNotFound(err) {
				return err
			}
			t.Name = *req.Name
			renamed = true
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if err := tx.ItemTypes.Update(ctx, t); err != nil {
			if isDuplicate(err) {
				return duplicateItemTypeName()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.ItemTypeResponse{}, err
	}

	if renamed {
		// items carry their type name in the graph
		items, _, err := s.repos.Items.List(ctx, repository.ItemQuery{ItemTypeID: &id})
		if err == nil {
			for _, i := range items {
				s.mirror.OnItemUpserted(ctx, i.ID, i.Name, derefTypeName(i), i.Price, i.StoreID)
			}
		}
	}
	return s.Get(ctx, id)
}

func (s *itemTypeService) Get(ctx context.Context, id uuid.UUID) (dto.ItemTypeResponse, error) {
	t, err := s.repos.ItemTypes.FindByID(ctx, id)
	if err != nil {
		return dto.ItemTypeResponse{}, notFound(err, "item type not found")
	}
	counts, err := s.repos.ItemTypes.Counts(ctx, []uuid.UUID{id})
	if err != nil {
		return dto.ItemTypeResponse{}, err
	}
	return mapItemType(*t, counts[id]), nil
}

func (s *itemTypeService) List(ctx context.Context, filter dto.ItemTypeFilter) ([]dto.ItemTypeResponse, error) {
	types, err := s.repos.ItemTypes.List(ctx, filter.Search)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	counts, err := s.repos.ItemTypes.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, mapItemType(t, counts[t.ID]))
	}
	return out, nil
}

func (s *itemTypeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.ItemTypes.FindByID(ctx, id); err != nil {
			return notFound(err, "item type not found")
		}
		active, err := tx.Items.CountByType(ctx, id, false)
		if err != nil {
			return err
		}
		if active > 0 {
			return apierror.Conflict(apierror.CodeInUse, "cannot delete item type with active items")
		}
		all, err := tx.Items.CountByType(ctx, id, true)
		if err != nil {
			return err
		}
		if all > 0 {
			return apierror.Conflict(apierror.CodeInUse, "item type is still referenced by deleted items")
		}
		if err := tx.ItemTypes.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrReferenced) {
				return apierror.Conflict(apierror.CodeInUse, "item type is still referenced by items")
			}
			return err
		}
		return nil
	})
}

func (s *itemTypeService) Items(ctx context.Context, id uuid.UUID) ([]dto.ItemResponse, error) {
	if _, err := s.repos.ItemTypes.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "item type not found")
	}
	items, _, err := s.repos.Items.List(ctx, repository.ItemQuery{ItemTypeID: &id, Ordering: "name"})
	if err != nil {
		return nil, err
	}
	return mapItems(items), nil
}

func derefTypeName(i model.Item) string {
	if i.ItemType == nil {
		return ""
	}
	return i.ItemType.Name
}

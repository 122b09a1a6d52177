package service

import (
	"groceryhub/internal/dto"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"
)

func mapUser(u model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	switch {
	case u.AdminProfile != nil:
		resp.Profile = &dto.ProfileResponse{
			Phone:      u.AdminProfile.Phone,
			Department: u.AdminProfile.Department,
		}
	case u.SupplierProfile != nil:
		p := u.SupplierProfile
		resp.Profile = &dto.ProfileResponse{
			Phone:           p.Phone,
			AssignedStoreID: idString(p.AssignedStoreID),
			HireDate:        dateString(p.HireDate),
		}
		if p.AssignedStore != nil {
			name := p.AssignedStore.Name
			resp.Profile.AssignedStoreName = &name
		}
	}
	return resp
}

func mapStore(s model.Store) dto.StoreResponse {
	resp := dto.StoreResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Location:    s.Location,
		CreatedByID: idString(s.CreatedByID),
		IsDeleted:   s.IsDeleted,
		DeletedAt:   s.DeletedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.CreatedBy != nil {
		name := s.CreatedBy.FullName()
		resp.CreatedByName = &name
	}
	return resp
}

func mapItemType(t model.ItemType, c repository.ItemTypeCounts) dto.ItemTypeResponse {
	return dto.ItemTypeResponse{
		ID:               t.ID.String(),
		Name:             t.Name,
		Description:      t.Description,
		ActiveItemsCount: c.Active,
		TotalItems:       c.Total,
		CreatedAt:        t.CreatedAt,
	}
}

func mapItem(i model.Item) dto.ItemResponse {
	resp := dto.ItemResponse{
		ID:              i.ID.String(),
		Name:            i.Name,
		ItemTypeID:      i.ItemTypeID.String(),
		Location:        i.Location,
		Price:           i.Price,
		FormattedPrice:  model.FormatMoney(i.Price),
		StoreID:         i.StoreID.String(),
		AddedByID:       idString(i.AddedByID),
		SKU:             i.SKU,
		QuantityInStock: i.QuantityInStock,
		ReorderLevel:    i.ReorderLevel,
		IsLowStock:      i.IsLowStock(),
		StockStatus:     i.StockStatus(),
		IsDeleted:       i.IsDeleted,
		DeletedAt:       i.DeletedAt,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
	if i.ItemType != nil {
		resp.ItemTypeName = i.ItemType.Name
	}
	if i.Store != nil {
		resp.StoreName = i.Store.Name
	}
	if i.AddedBy != nil {
		name := i.AddedBy.FullName()
		resp.AddedByName = &name
	}
	return resp
}

func mapItems(items []model.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, mapItem(i))
	}
	return out
}

func mapIncome(d model.DailyIncome) dto.IncomeResponse {
	resp := dto.IncomeResponse{
		ID:              d.ID.String(),
		StoreID:         d.StoreID.String(),
		Date:            d.Date.Format(model.DateLayout),
		Amount:          d.Amount,
		FormattedAmount: model.FormatMoney(d.Amount),
		RecordedByID:    d.RecordedByID.String(),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Store != nil {
		resp.StoreName = d.Store.Name
	}
	if d.RecordedBy != nil {
		resp.RecordedByName = d.RecordedBy.FullName()
	}
	return resp
}

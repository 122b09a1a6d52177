package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// memDB is an in-memory stand-in for Postgres. It enforces the same unique
// constraints the schema does and hands out copies so callers cannot alias
// stored rows.
type memDB struct {
	mu        sync.Mutex
	tick      time.Time
	users     map[uuid.UUID]model.User
	admins    map[uuid.UUID]model.AdminProfile    // by user id
	suppliers map[uuid.UUID]model.SupplierProfile // by user id
	stores    map[uuid.UUID]model.Store
	types     map[uuid.UUID]model.ItemType
	items     map[uuid.UUID]model.Item
	incomes   map[uuid.UUID]model.DailyIncome

	// writeErr, when set, is returned by item and income writes.
	writeErr error
}

func newMemDB() *memDB {
	return &memDB{
		tick:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[uuid.UUID]model.User{},
		admins:    map[uuid.UUID]model.AdminProfile{},
		suppliers: map[uuid.UUID]model.SupplierProfile{},
		stores:    map[uuid.UUID]model.Store{},
		types:     map[uuid.UUID]model.ItemType{},
		items:     map[uuid.UUID]model.Item{},
		incomes:   map[uuid.UUID]model.DailyIncome{},
	}
}

// stamp returns a strictly increasing timestamp so created_at orderings are stable.
func (m *memDB) stamp() time.Time {
	m.tick = m.tick.Add(time.Second)
	return m.tick
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (m *memDB) snapshot() *memDB {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &memDB{
		tick:      m.tick,
		users:     cloneMap(m.users),
		admins:    cloneMap(m.admins),
		suppliers: cloneMap(m.suppliers),
		stores:    cloneMap(m.stores),
		types:     cloneMap(m.types),
		items:     cloneMap(m.items),
		incomes:   cloneMap(m.incomes),
	}
}

func (m *memDB) restore(s *memDB) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users, m.admins, m.suppliers = s.users, s.admins, s.suppliers
	m.stores, m.types, m.items, m.incomes = s.stores, s.types, s.items, s.incomes
}

func (m *memDB) repositories() repository.Repositories {
	return repository.Repositories{
		Users:     &memUsers{m},
		Stores:    &memStores{m},
		ItemTypes: &memItemTypes{m},
		Items:     &memItems{m},
		Income:    &memIncome{m},
	}
}

// memUoW serializes transactions and rolls back on error.
type memUoW struct {
	mu sync.Mutex
	db *memDB
}

func (u *memUoW) Do(_ context.Context, fn func(tx repository.Repositories) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	snap := u.db.snapshot()
	if err := fn(u.db.repositories()); err != nil {
		u.db.restore(snap)
		return err
	}
	return nil
}

// ── users ──

type memUsers struct{ m *memDB }

func (r *memUsers) load(u model.User) model.User {
	if p, ok := r.m.admins[u.ID]; ok {
		u.AdminProfile = &p
	}
	if p, ok := r.m.suppliers[u.ID]; ok {
		if p.AssignedStoreID != nil {
			if s, ok := r.m.stores[*p.AssignedStoreID]; ok {
				p.AssignedStore = &s
			}
		}
		u.SupplierProfile = &p
	}
	return u
}

func (r *memUsers) Create(_ context.Context, u *model.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = r.m.stamp()
	u.UpdatedAt = u.CreatedAt
	row := *u
	row.AdminProfile, row.SupplierProfile = nil, nil
	r.m.users[u.ID] = row
	if u.AdminProfile != nil {
		p := *u.AdminProfile
		p.ID, p.UserID = uuid.New(), u.ID
		r.m.admins[u.ID] = p
	}
	if u.SupplierProfile != nil {
		p := *u.SupplierProfile
		p.ID, p.UserID, p.AssignedStore = uuid.New(), u.ID, nil
		r.m.suppliers[u.ID] = p
	}
	return nil
}

func (r *memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u = r.load(u)
	return &u, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == strings.ToLower(email) {
			u = r.load(u)
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsers) List(_ context.Context, q repository.UserQuery) ([]model.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.User
	for _, u := range r.m.users {
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if !q.IncludeInactive && !u.IsActive {
			continue
		}
		out = append(out, r.load(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *memUsers) Update(_ context.Context, u *model.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	row := *u
	row.AdminProfile, row.SupplierProfile = nil, nil
	r.m.users[u.ID] = row
	return nil
}

func (r *memUsers) UpdateAdminProfile(_ context.Context, p *model.AdminProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.m.admins[p.UserID] = *p
	return nil
}

func (r *memUsers) UpdateSupplierProfile(_ context.Context, p *model.SupplierProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := *p
	row.AssignedStore = nil
	r.m.suppliers[p.UserID] = row
	return nil
}

func (r *memUsers) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u := r.m.users[id]
	u.IsActive = active
	r.m.users[id] = u
	return nil
}

func (r *memUsers) ListSuppliersByStore(_ context.Context, storeID uuid.UUID) ([]model.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.User
	for uid, p := range r.m.suppliers {
		u := r.m.users[uid]
		if p.AssignedStoreID != nil && *p.AssignedStoreID == storeID && u.IsActive {
			out = append(out, r.load(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *memUsers) CountSuppliersByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	users, err := r.ListSuppliersByStore(ctx, storeID)
	return int64(len(users)), err
}

// ── stores ──

type memStores struct{ m *memDB }

func (r *memStores) load(s model.Store) model.Store {
	if s.CreatedByID != nil {
		if u, ok := r.m.users[*s.CreatedByID]; ok {
			s.CreatedBy = &u
		}
	}
	return s
}

func (r *memStores) nameTaken(name string, except uuid.UUID) bool {
	for _, s := range r.m.stores {
		if s.Name == name && s.ID != except {
			return true
		}
	}
	return false
}

func (r *memStores) Create(_ context.Context, s *model.Store) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.nameTaken(s.Name, uuid.Nil) {
		return repository.ErrDuplicate
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = r.m.stamp()
	s.UpdatedAt = s.CreatedAt
	row := *s
	row.CreatedBy = nil
	r.m.stores[s.ID] = row
	return nil
}

func (r *memStores) Update(_ context.Context, s *model.Store) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.nameTaken(s.Name, s.ID) {
		return repository.ErrDuplicate
	}
	row := *s
	row.CreatedBy = nil
	row.UpdatedAt = r.m.stamp()
	r.m.stores[s.ID] = row
	return nil
}

func (r *memStores) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*model.Store, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.stores[id]
	if !ok || (s.IsDeleted && !includeDeleted) {
		return nil, gorm.ErrRecordNotFound
	}
	s = r.load(s)
	return &s, nil
}

func (r *memStores) FindByName(_ context.Context, name string, includeDeleted bool) (*model.Store, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.stores {
		if s.Name == name && (includeDeleted || !s.IsDeleted) {
			s = r.load(s)
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStores) List(_ context.Context, q repository.StoreQuery) ([]model.Store, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.Store
	search := strings.ToLower(q.Search)
	for _, s := range r.m.stores {
		if s.IsDeleted && !q.IncludeDeleted {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Location), search) {
			continue
		}
		if q.Location != "" && s.Location != q.Location {
			continue
		}
		out = append(out, r.load(s))
	}
	switch q.Ordering {
	case "name":
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "-name":
		sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case "created_at":
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *memStores) SoftDelete(_ context.Context, id uuid.UUID, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s := r.m.stores[id]
	s.IsDeleted, s.DeletedAt = true, &at
	r.m.stores[id] = s
	return nil
}

func (r *memStores) Restore(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s := r.m.stores[id]
	s.IsDeleted, s.DeletedAt = false, nil
	r.m.stores[id] = s
	return nil
}

// ── item types ──

type memItemTypes struct{ m *memDB }

func (r *memItemTypes) nameTaken(name string, except uuid.UUID) bool {
	for _, t := range r.m.types {
		if strings.EqualFold(t.Name, name) && t.ID != except {
			return true
		}
	}
	return false
}

func (r *memItemTypes) Create(_ context.Context, t *model.ItemType) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.nameTaken(t.Name, uuid.Nil) {
		return repository.ErrDuplicate
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = r.m.stamp()
	r.m.types[t.ID] = *t
	return nil
}

func (r *memItemTypes) Update(_ context.Context, t *model.ItemType) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.nameTaken(t.Name, t.ID) {
		return repository.ErrDuplicate
	}
	r.m.types[t.ID] = *t
	return nil
}

func (r *memItemTypes) FindByID(_ context.Context, id uuid.UUID) (*model.ItemType, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *memItemTypes) FindByName(_ context.Context, name string) (*model.ItemType, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, t := range r.m.types {
		if strings.EqualFold(t.Name, name) {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memItemTypes) List(_ context.Context, search string) ([]model.ItemType, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.ItemType
	for _, t := range r.m.types {
		if search == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(search)) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memItemTypes) Counts(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.ItemTypeCounts, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := map[uuid.UUID]repository.ItemTypeCounts{}
	for _, id := range ids {
		var c repository.ItemTypeCounts
		for _, i := range r.m.items {
			if i.ItemTypeID != id {
				continue
			}
			c.Total++
			if !i.IsDeleted {
				c.Active++
			}
		}
		out[id] = c
	}
	return out, nil
}

func (r *memItemTypes) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, i := range r.m.items {
		if i.ItemTypeID == id {
			return repository.ErrReferenced
		}
	}
	delete(r.m.types, id)
	return nil
}

// ── items ──

type memItems struct{ m *memDB }

func (r *memItems) load(i model.Item) model.Item {
	if t, ok := r.m.types[i.ItemTypeID]; ok {
		i.ItemType = &t
	}
	if s, ok := r.m.stores[i.StoreID]; ok {
		i.Store = &s
	}
	if i.AddedByID != nil {
		if u, ok := r.m.users[*i.AddedByID]; ok {
			i.AddedBy = &u
		}
	}
	return i
}

// activeNameTaken mirrors the partial unique index on (store_id, lower(name)).
func (r *memItems) activeNameTaken(storeID uuid.UUID, name string, except uuid.UUID) bool {
	for _, i := range r.m.items {
		if !i.IsDeleted && i.StoreID == storeID && strings.EqualFold(i.Name, name) && i.ID != except {
			return true
		}
	}
	return false
}

func (r *memItems) Create(_ context.Context, i *model.Item) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.writeErr != nil {
		return r.m.writeErr
	}
	if r.activeNameTaken(i.StoreID, i.Name, uuid.Nil) {
		return repository.ErrDuplicate
	}
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.CreatedAt = r.m.stamp()
	i.UpdatedAt = i.CreatedAt
	row := *i
	row.ItemType, row.Store, row.AddedBy = nil, nil, nil
	r.m.items[i.ID] = row
	return nil
}

func (r *memItems) Update(_ context.Context, i *model.Item) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.writeErr != nil {
		return r.m.writeErr
	}
	if !i.IsDeleted && r.activeNameTaken(i.StoreID, i.Name, i.ID) {
		return repository.ErrDuplicate
	}
	row := *i
	row.ItemType, row.Store, row.AddedBy = nil, nil, nil
	row.UpdatedAt = r.m.stamp()
	r.m.items[i.ID] = row
	return nil
}

func (r *memItems) FindByID(_ context.Context, id uuid.UUID, includeDeleted bool) (*model.Item, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i, ok := r.m.items[id]
	if !ok || (i.IsDeleted && !includeDeleted) {
		return nil, gorm.ErrRecordNotFound
	}
	i = r.load(i)
	return &i, nil
}

func (r *memItems) FindActiveByName(_ context.Context, storeID uuid.UUID, name string) (*model.Item, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, i := range r.m.items {
		if !i.IsDeleted && i.StoreID == storeID && strings.EqualFold(i.Name, name) {
			return &i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memItems) List(_ context.Context, q repository.ItemQuery) ([]model.Item, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.Item
	search := strings.ToLower(q.Search)
	for _, i := range r.m.items {
		if i.IsDeleted && !q.IncludeDeleted {
			continue
		}
		if q.StoreID != nil && i.StoreID != *q.StoreID {
			continue
		}
		if q.ItemTypeID != nil && i.ItemTypeID != *q.ItemTypeID {
			continue
		}
		if q.Location != "" && i.Location != q.Location {
			continue
		}
		i = r.load(i)
		if search != "" && !strings.Contains(strings.ToLower(i.Name), search) &&
			!strings.Contains(strings.ToLower(i.SKU), search) &&
			!strings.Contains(strings.ToLower(derefTypeName(i)), search) {
			continue
		}
		out = append(out, i)
	}
	if q.Ordering == "name" {
		sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	} else {
		sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	}
	total := int64(len(out))
	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * q.Limit
		if start > len(out) {
			start = len(out)
		}
		end := start + q.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *memItems) ListLowStock(_ context.Context, storeID *uuid.UUID) ([]model.Item, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.Item
	for _, i := range r.m.items {
		if i.IsDeleted || i.QuantityInStock > i.ReorderLevel {
			continue
		}
		if storeID != nil && i.StoreID != *storeID {
			continue
		}
		out = append(out, r.load(i))
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].QuantityInStock != out[b].QuantityInStock {
			return out[a].QuantityInStock < out[b].QuantityInStock
		}
		return out[a].Name < out[b].Name
	})
	return out, nil
}

func (r *memItems) SoftDelete(_ context.Context, id uuid.UUID, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.items[id]
	i.IsDeleted, i.DeletedAt = true, &at
	r.m.items[id] = i
	return nil
}

func (r *memItems) Restore(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.items[id]
	if r.activeNameTaken(i.StoreID, i.Name, id) {
		return repository.ErrDuplicate
	}
	i.IsDeleted, i.DeletedAt = false, nil
	r.m.items[id] = i
	return nil
}

func (r *memItems) SetQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	i := r.m.items[id]
	i.QuantityInStock = quantity
	r.m.items[id] = i
	return nil
}

func (r *memItems) CountByStore(_ context.Context, storeID uuid.UUID) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for _, i := range r.m.items {
		if !i.IsDeleted && i.StoreID == storeID {
			n++
		}
	}
	return n, nil
}

func (r *memItems) CountByType(_ context.Context, itemTypeID uuid.UUID, includeDeleted bool) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for _, i := range r.m.items {
		if i.ItemTypeID == itemTypeID && (includeDeleted || !i.IsDeleted) {
			n++
		}
	}
	return n, nil
}

func (r *memItems) Totals(_ context.Context, storeID *uuid.UUID) (repository.InventoryTotals, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t := repository.InventoryTotals{TotalValue: decimal.Zero, AveragePrice: decimal.Zero}
	priceSum := decimal.Zero
	for _, i := range r.m.items {
		if i.IsDeleted || (storeID != nil && i.StoreID != *storeID) {
			continue
		}
		t.TotalItems++
		t.TotalValue = t.TotalValue.Add(i.Price.Mul(decimal.NewFromInt(int64(i.QuantityInStock))))
		priceSum = priceSum.Add(i.Price)
		if i.QuantityInStock <= i.ReorderLevel {
			t.LowStockCount++
		}
		if i.QuantityInStock == 0 {
			t.OutOfStockCount++
		}
	}
	if t.TotalItems > 0 {
		t.AveragePrice = priceSum.Div(decimal.NewFromInt(t.TotalItems))
	}
	return t, nil
}

func (r *memItems) TotalsByStore(_ context.Context) ([]repository.StoreInventory, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	byStore := map[uuid.UUID]*repository.StoreInventory{}
	for _, i := range r.m.items {
		if i.IsDeleted {
			continue
		}
		row, ok := byStore[i.StoreID]
		if !ok {
			row = &repository.StoreInventory{StoreID: i.StoreID, StoreName: r.m.stores[i.StoreID].Name, TotalValue: decimal.Zero}
			byStore[i.StoreID] = row
		}
		row.ItemCount++
		row.TotalValue = row.TotalValue.Add(i.Price.Mul(decimal.NewFromInt(int64(i.QuantityInStock))))
	}
	out := make([]repository.StoreInventory, 0, len(byStore))
	for _, row := range byStore {
		out = append(out, *row)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].StoreName < out[b].StoreName })
	return out, nil
}

// ── income ──

type memIncome struct{ m *memDB }

func (r *memIncome) load(d model.DailyIncome) model.DailyIncome {
	if s, ok := r.m.stores[d.StoreID]; ok {
		d.Store = &s
	}
	if u, ok := r.m.users[d.RecordedByID]; ok {
		d.RecordedBy = &u
	}
	return d
}

func (r *memIncome) taken(storeID uuid.UUID, date time.Time, except uuid.UUID) bool {
	for _, d := range r.m.incomes {
		if d.StoreID == storeID && d.Date.Equal(model.CivilDate(date)) && d.ID != except {
			return true
		}
	}
	return false
}

func (r *memIncome) Create(_ context.Context, d *model.DailyIncome) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.writeErr != nil {
		return r.m.writeErr
	}
	if r.taken(d.StoreID, d.Date, uuid.Nil) {
		return repository.ErrDuplicate
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = r.m.stamp()
	d.UpdatedAt = d.CreatedAt
	row := *d
	row.Date = model.CivilDate(d.Date)
	row.Store, row.RecordedBy = nil, nil
	r.m.incomes[d.ID] = row
	return nil
}

func (r *memIncome) Update(_ context.Context, d *model.DailyIncome) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.writeErr != nil {
		return r.m.writeErr
	}
	if r.taken(d.StoreID, d.Date, d.ID) {
		return repository.ErrDuplicate
	}
	row := *d
	row.Date = model.CivilDate(d.Date)
	row.Store, row.RecordedBy = nil, nil
	row.UpdatedAt = r.m.stamp()
	r.m.incomes[d.ID] = row
	return nil
}

func (r *memIncome) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.incomes, id)
	return nil
}

func (r *memIncome) FindByID(_ context.Context, id uuid.UUID) (*model.DailyIncome, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.incomes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	d = r.load(d)
	return &d, nil
}

func (r *memIncome) FindByStoreDate(_ context.Context, storeID uuid.UUID, date time.Time) (*model.DailyIncome, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, d := range r.m.incomes {
		if d.StoreID == storeID && d.Date.Equal(model.CivilDate(date)) {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memIncome) filter(q repository.IncomeQuery) []model.DailyIncome {
	var out []model.DailyIncome
	for _, d := range r.m.incomes {
		if q.StoreID != nil && d.StoreID != *q.StoreID {
			continue
		}
		if q.Start != nil && d.Date.Before(model.CivilDate(*q.Start)) {
			continue
		}
		if q.End != nil && d.Date.After(model.CivilDate(*q.End)) {
			continue
		}
		if q.RecordedByID != nil && d.RecordedByID != *q.RecordedByID {
			continue
		}
		out = append(out, r.load(d))
	}
	return out
}

func (r *memIncome) List(_ context.Context, q repository.IncomeQuery) ([]model.DailyIncome, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := r.filter(q)
	switch q.Ordering {
	case "date":
		sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case "amount":
		sort.Slice(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	case "-amount":
		sort.Slice(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *memIncome) Totals(_ context.Context, q repository.IncomeQuery) (repository.IncomeTotals, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t := repository.IncomeTotals{Total: decimal.Zero, Average: decimal.Zero, Min: decimal.Zero, Max: decimal.Zero}
	for n, d := range r.filter(q) {
		t.Total = t.Total.Add(d.Amount)
		t.Records++
		if n == 0 || d.Amount.LessThan(t.Min) {
			t.Min = d.Amount
		}
		if n == 0 || d.Amount.GreaterThan(t.Max) {
			t.Max = d.Amount
		}
	}
	if t.Records > 0 {
		t.Average = t.Total.Div(decimal.NewFromInt(t.Records))
	}
	return t, nil
}

// ── recorders ──

type mirrorCall struct {
	Kind string
	ID   uuid.UUID
	Name string
}

type recordingMirror struct {
	mu    sync.Mutex
	calls []mirrorCall
}

func (m *recordingMirror) OnStoreUpserted(_ context.Context, id uuid.UUID, name, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mirrorCall{Kind: "store", ID: id, Name: name})
}

func (m *recordingMirror) OnItemUpserted(_ context.Context, id uuid.UUID, name, _ string, _ decimal.Decimal, _ uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mirrorCall{Kind: "item", ID: id, Name: name})
}

func (m *recordingMirror) OnItemDeleted(_ context.Context, id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, mirrorCall{Kind: "item_deleted", ID: id})
}

func (m *recordingMirror) Calls() []mirrorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mirrorCall(nil), m.calls...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []LowStockAlert
}

func (n *recordingNotifier) NotifyLowStock(_ context.Context, a LowStockAlert) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, a)
}

func (n *recordingNotifier) Alerts() []LowStockAlert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]LowStockAlert(nil), n.alerts...)
}

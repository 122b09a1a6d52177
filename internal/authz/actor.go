// Package authz holds the role-resolved actor and the write-scope predicate
// every mutating operation consults.
package authz

import (
	"groceryhub/internal/apierror"
	"groceryhub/internal/model"

	"github.com/google/uuid"
)

// Actor is the authenticated identity performing an operation.
// AssignedStoreID is only meaningful for suppliers; nil means unassigned.
type Actor struct {
	UserID          uuid.UUID
	Role            string
	AssignedStoreID *uuid.UUID
}

func Admin(userID uuid.UUID) Actor {
	return Actor{UserID: userID, Role: model.RoleAdmin}
}

func Supplier(userID uuid.UUID, assignedStore *uuid.UUID) Actor {
	return Actor{UserID: userID, Role: model.RoleSupplier, AssignedStoreID: assignedStore}
}

// FromUser resolves the actor from a loaded user and its profile.
func FromUser(u *model.User) Actor {
	if u.Role == model.RoleAdmin {
		return Admin(u.ID)
	}
	a := Supplier(u.ID, nil)
	if u.SupplierProfile != nil {
		a.AssignedStoreID = u.SupplierProfile.AssignedStoreID
	}
	return a
}

func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

func (a Actor) IsSupplier() bool { return a.Role == model.RoleSupplier }

// HasStore reports whether a supplier has an assigned store.
func (a Actor) HasStore() bool { return a.AssignedStoreID != nil }

// CanWrite is the central write predicate: admins always, suppliers only on
// their assigned store.
func (a Actor) CanWrite(storeID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.IsSupplier() && a.AssignedStoreID != nil && *a.AssignedStoreID == storeID
}

// RequireAdmin fails with Forbidden unless the actor is an admin.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return apierror.Forbidden("only admins can perform this action")
	}
	return nil
}

// RequireWrite fails with Forbidden unless CanWrite(storeID).
func (a Actor) RequireWrite(storeID uuid.UUID) error {
	if a.CanWrite(storeID) {
		return nil
	}
	if a.IsSupplier() && !a.HasStore() {
		return apierror.Forbidden("no store is assigned to this supplier")
	}
	return apierror.Forbidden("you can only modify data of your assigned store")
}

// Scope is the store filter applied to write-scoped views.
type Scope struct {
	// Restricted is false for admins.
	Restricted bool
	StoreID    *uuid.UUID
}

// WriteScope returns the visibility of write-scoped views for the actor.
func (a Actor) WriteScope() Scope {
	if a.IsAdmin() {
		return Scope{}
	}
	return Scope{Restricted: true, StoreID: a.AssignedStoreID}
}

// Empty reports whether the scope can match nothing (unassigned supplier).
func (s Scope) Empty() bool { return s.Restricted && s.StoreID == nil }

// Narrow intersects the scope with an optional requested store. ok is false
// when the request falls outside the scope.
func (s Scope) Narrow(requested *uuid.UUID) (storeID *uuid.UUID, ok bool) {
	if !s.Restricted {
		return requested, true
	}
	if s.StoreID == nil {
		return nil, false
	}
	if requested != nil && *requested != *s.StoreID {
		return nil, false
	}
	return s.StoreID, true
}

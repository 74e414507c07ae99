// Package policy decides which actor may edit or delete which record.
// It replaces per-entity voter classes with a single decision function over
// a tagged resource descriptor; every rule is pure and side-effect free.
package policy

import "floradesk/internal/domain/entity"

// Action is the operation being attempted on a resource.
type Action string

const (
	// ActionEdit covers any mutation short of removal.
	ActionEdit Action = "edit"
	// ActionDelete covers removal.
	ActionDelete Action = "delete"
)

// ResourceKind tags which entity type a decision concerns.
type ResourceKind string

const (
	KindUser    ResourceKind = "User"
	KindProduct ResourceKind = "Product"
	KindService ResourceKind = "Service"
	KindOrder   ResourceKind = "Order"
)

// Resource describes the record an actor wants to touch. For User resources
// OwnerID is the target user's own ID and OwnerRole the target's role; for
// catalog resources they describe whoever created the record.
type Resource struct {
	Kind      ResourceKind
	OwnerID   int64
	OwnerRole entity.Role
}

// Decide reports whether actor may perform action on resource.
//
// Admins are always allowed. Staff operate as a pool: any staff member may
// manage any order/product/service not authored by an admin (ownership is
// deliberately not per-user). For user targets, staff may manage any
// non-admin account; everyone else may only edit themselves, never delete.
func Decide(actor entity.Actor, action Action, resource Resource) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	switch resource.Kind {
	case KindOrder, KindProduct, KindService:
		if !actor.Role.IsStaff() {
			return false
		}
		// Staff never touch admin-authored records.
		return !resource.OwnerRole.IsAdmin()

	case KindUser:
		if actor.Role.IsStaff() {
			return !resource.OwnerRole.IsAdmin()
		}
		// Non-staff may edit their own profile only.
		if actor.ID == resource.OwnerID {
			return action == ActionEdit
		}

		return false

	default:
		return false
	}
}

// CanEdit reports whether actor may edit resource.
func CanEdit(actor entity.Actor, resource Resource) bool {
	return Decide(actor, ActionEdit, resource)
}

// CanDelete reports whether actor may delete resource.
func CanDelete(actor entity.Actor, resource Resource) bool {
	return Decide(actor, ActionDelete, resource)
}

// UserResource builds the descriptor for a user target.
func UserResource(target *entity.User) Resource {
	return Resource{Kind: KindUser, OwnerID: target.ID, OwnerRole: target.Role}
}

// ProductResource builds the descriptor for a product record.
func ProductResource(p *entity.Product) Resource {
	return Resource{Kind: KindProduct, OwnerID: p.CreatedBy.ID, OwnerRole: p.CreatedBy.Role}
}

// ServiceResource builds the descriptor for a service record.
func ServiceResource(s *entity.Service) Resource {
	return Resource{Kind: KindService, OwnerID: s.CreatedBy.ID, OwnerRole: s.CreatedBy.Role}
}

// OrderResource builds the descriptor for an order record.
func OrderResource(o *entity.Order) Resource {
	return Resource{Kind: KindOrder, OwnerID: o.CreatedBy.ID, OwnerRole: o.CreatedBy.Role}
}

package policy

import (
	"testing"

	"floradesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDecide_TruthTable(t *testing.T) {
	admin := entity.Actor{ID: 1, Role: entity.RoleAdmin}
	staff := entity.Actor{ID: 2, Role: entity.RoleStaff}
	client := entity.Actor{ID: 3, Role: entity.RoleClient}

	adminOrder := Resource{Kind: KindOrder, OwnerID: 1, OwnerRole: entity.RoleAdmin}
	staffOrder := Resource{Kind: KindOrder, OwnerID: 2, OwnerRole: entity.RoleStaff}
	otherStaffOrder := Resource{Kind: KindOrder, OwnerID: 9, OwnerRole: entity.RoleStaff}

	tests := []struct {
		name     string
		actor    entity.Actor
		action   Action
		resource Resource
		want     bool
	}{
		{"admin edits admin-created order", admin, ActionEdit, adminOrder, true},
		{"admin deletes staff-created order", admin, ActionDelete, staffOrder, true},
		{"staff edits admin-created order", staff, ActionEdit, adminOrder, false},
		{"staff edits own order", staff, ActionEdit, staffOrder, true},
		{"staff edits another staff's order", staff, ActionEdit, otherStaffOrder, true},
		{"staff deletes another staff's order", staff, ActionDelete, otherStaffOrder, true},
		{"client edits order", client, ActionEdit, staffOrder, false},

		{"staff edits client account", staff, ActionEdit, Resource{Kind: KindUser, OwnerID: 3, OwnerRole: entity.RoleClient}, true},
		{"staff deletes client account", staff, ActionDelete, Resource{Kind: KindUser, OwnerID: 3, OwnerRole: entity.RoleClient}, true},
		{"staff edits admin account", staff, ActionEdit, Resource{Kind: KindUser, OwnerID: 1, OwnerRole: entity.RoleAdmin}, false},
		{"client edits own profile", client, ActionEdit, Resource{Kind: KindUser, OwnerID: 3, OwnerRole: entity.RoleClient}, true},
		{"client deletes own profile", client, ActionDelete, Resource{Kind: KindUser, OwnerID: 3, OwnerRole: entity.RoleClient}, false},
		{"client edits another client's profile", client, ActionEdit, Resource{Kind: KindUser, OwnerID: 4, OwnerRole: entity.RoleClient}, false},

		{"staff edits admin-created product", staff, ActionEdit, Resource{Kind: KindProduct, OwnerID: 1, OwnerRole: entity.RoleAdmin}, false},
		{"staff deletes staff-created service", staff, ActionDelete, Resource{Kind: KindService, OwnerID: 9, OwnerRole: entity.RoleStaff}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.actor, tt.action, tt.resource))
		})
	}
}

func TestResourceBuilders(t *testing.T) {
	author := entity.Actor{ID: 8, Role: entity.RoleStaff}

	order := OrderResource(&entity.Order{CreatedBy: author})
	assert.Equal(t, KindOrder, order.Kind)
	assert.Equal(t, int64(8), order.OwnerID)
	assert.Equal(t, entity.RoleStaff, order.OwnerRole)

	user := UserResource(&entity.User{ID: 5, Role: entity.RoleClient})
	assert.Equal(t, KindUser, user.Kind)
	assert.Equal(t, int64(5), user.OwnerID)
}

package entity

import "time"

// Activity log action codes. CRUD actions are suffixed with the target
// entity name by the recorder (e.g. "CREATE_Order").
const (
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ActivityLog is a single append-only audit entry. Entries are created as a
// side effect of audited mutations and auth events and are never updated or
// deleted by application logic.
type ActivityLog struct {
	ID             int64
	UserID         int64  // The actor who performed the action.
	Role           string // Role snapshot at the time of the action.
	Action         string // e.g. LOGIN, CREATE_Order, DELETE_User.
	ActionDetails  string
	TargetEntity   string // Related entity type (User, Order, Service), if any.
	TargetEntityID int64  // Related entity ID; zero when not applicable.
	Description    string
	CreatedAt      time.Time
}

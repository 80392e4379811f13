package constants

// User roles.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleStaff       = "staff"
)

// User statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// MaxSessionStartTime is the latest start a session may declare, in minutes
// since midnight (23:00).
const MaxSessionStartTime = 1380

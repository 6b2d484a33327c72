// Package constants defines shared constant values used across the application.
package constants

// Pagination
const (
	DefaultPage = 1
	// PageSize is the fixed page size used by collection listings.
	PageSize = 5
)

// Gin context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role_id"
)

// Sort directions accepted by list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

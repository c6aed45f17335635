package constants

// Session and context keys
const (
	SessionCookieName = "gallery_session"
	ContextKeyUserID  = "user_id"

	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Validation limits
const (
	MinPasswordLength = 6
)

// Pagination
const (
	DefaultPage     = 0
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// StorageFolderPrefix is the top-level folder in the object store; each
// user's images live under "<prefix>/<username>".
const StorageFolderPrefix = "gallery"

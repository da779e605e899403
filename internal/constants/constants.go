package constants

// Session
const (
	// SessionCookieName is the cookie holding the session.
	SessionCookieName = "fantasy_session"

	// ContextKeyUserID keys the authenticated user ID in both the session
	// and the gin context.
	ContextKeyUserID = "user_id"

	// ContextKeyTeam keys the team loaded by the ownership middleware.
	ContextKeyTeam = "team"
)

// Validation bounds
const (
	MinUsernameLength = 4
	MaxUsernameLength = 20
	MinPasswordLength = 6
	MinTeamNameLength = 3
	MaxTeamNameLength = 100
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

package constants

// Session
const (
	SessionCookieName = "auction_session"
	ContextKeyUserID  = "user_id"
	ContextKeyListing = "listing"
)

// Validation limits
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 50
	MinPasswordLength    = 8
	MaxTitleLength       = 50
	MaxDescriptionLength = 300
	MaxCommentLength     = 300
	MaxImageURLLength    = 250
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

package constants

// Handle constants
const (
	// HandleSigil is the prefix every normalized user handle carries
	HandleSigil = "@"
)

// Assistant constants
const (
	// MaxDraftLength is the character budget the assistant is asked to
	// keep improved drafts under
	MaxDraftLength = 280

	// PlaceSuggestionLimit is how many place names the assistant is
	// asked for per search
	PlaceSuggestionLimit = 5

	// AssistantMaxRetries is the number of attempts per assistant request
	AssistantMaxRetries = 3
)

// Profile constants
const (
	// DefaultAvatarURL is assigned to freshly registered users until
	// they pick their own avatar
	DefaultAvatarURL = "https://picsum.photos/seed/new_user/200/200"
)

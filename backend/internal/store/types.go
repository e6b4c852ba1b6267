package store

import "time"

// ============================================================================
// Social Graph Types
// ============================================================================

// MediaKind identifies the media type of a story
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Highlight is a pinned collection entry on a user's profile
type Highlight struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// User represents a node in the social graph
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Handle          string      `json:"handle"`
	AvatarURL       string      `json:"avatarUrl"`
	Bio             string      `json:"bio,omitempty"`
	IsPrivate       bool        `json:"isPrivate"`
	Following       []string    `json:"following"`
	Followers       []string    `json:"followers"`
	RepostedPostIDs []string    `json:"repostedPostIds"`
	Highlights      []Highlight `json:"highlights"`
}

// Comment is appended to a post's comment sequence, immutable once created
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a content item owned by exactly one author.
//
// Likes and IsLikedByCurrentUser move together and only together; the
// same pairing holds for Reposts/IsRepostedByCurrentUser, which must
// additionally agree with the current actor's RepostedPostIDs set.
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Location      string    `json:"location,omitempty"`
	TaggedUserIDs []string  `json:"taggedUsers,omitempty"`
	Likes         int       `json:"likes"`
	Reposts       int       `json:"reposts"`
	Comments      []Comment `json:"comments"`
	Timestamp     time.Time `json:"timestamp"`

	// Flags scoped to the single current actor the store models
	IsLikedByCurrentUser    bool `json:"isLikedByCurrentUser"`
	IsRepostedByCurrentUser bool `json:"isRepostedByCurrentUser"`
	IsSavedByCurrentUser    bool `json:"isSavedByCurrentUser"`
}

// Story is an ephemeral media item owned by one user
type Story struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	MediaURL  string    `json:"mediaUrl"`
	MediaKind MediaKind `json:"mediaType"`
	IsViewed  bool      `json:"isViewed"`
	Timestamp time.Time `json:"timestamp"`
}

// Message is a directed text between two users, append-only
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreatePostInput carries the fields accepted by CreatePost; only
// Content is meaningful on its own, the rest are optional
type CreatePostInput struct {
	Content       string   `json:"content"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Location      string   `json:"location,omitempty"`
	TaggedUserIDs []string `json:"taggedUsers,omitempty"`
}

// ProfileUpdate carries the optional fields UpdateProfile merges into
// the current actor; nil fields are left untouched
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Handle    *string `json:"handle,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
}

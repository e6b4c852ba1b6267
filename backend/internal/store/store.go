package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"loop-social/backend/pkg/logger"
	"go.uber.org/zap"
)

// Store is the in-memory social graph: it owns every entity collection
// and the single current-actor reference. Construct one per session and
// pass it by reference to every consumer; there is no package-level
// instance.
//
// One lock guards the whole state. Actions take the write lock so each
// mutation is an atomic, non-interleaved step; queries take the read
// lock and return deep copies, so callers never alias store-owned
// state and must re-query after any action to observe fresh state.
type Store struct {
	mu sync.RWMutex

	users    map[string]*User
	posts    []*Post
	stories  []*Story
	messages []*Message

	// currentUserID always refers to an entry in users once a session
	// has an actor; it is reassigned only by CreateNewUser
	currentUserID string

	logger *zap.Logger
}

// New creates an empty store with no registered actor. CreateNewUser
// must run before any actor-scoped operation succeeds.
func New() *Store {
	return &Store{
		users:  make(map[string]*User),
		logger: logger.Get(),
	}
}

// NewWithSeed creates a store populated with the demo graph so a
// session starts with a signed-in demo actor and browsable content.
func NewWithSeed() *Store {
	s := New()
	s.seed()
	return s
}

// current returns the current actor without copying. Callers must hold
// the lock; a nil result means no actor is registered yet.
func (s *Store) current() *User {
	if s.currentUserID == "" {
		return nil
	}
	return s.users[s.currentUserID]
}

// findPost returns the stored post with the given id, or nil
func (s *Store) findPost(postID string) *Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

// newID generates a session-unique entity id
func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}

// cloneUser deep-copies a user so edge lists and highlights are not
// shared with store state
func cloneUser(u *User) User {
	var out User
	_ = copier.CopyWithOption(&out, u, copier.Option{DeepCopy: true})
	return out
}

// clonePost deep-copies a post including its comment sequence
func clonePost(p *Post) Post {
	var out Post
	_ = copier.CopyWithOption(&out, p, copier.Option{DeepCopy: true})
	return out
}

func clonePosts(posts []*Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, clonePost(p))
	}
	return out
}

package store

import (
	"strings"

	"loop-social/backend/internal/constants"
	apperrors "loop-social/backend/pkg/errors"
	"go.uber.org/zap"
)

// ============================================================================
// User Operations
// ============================================================================

// CurrentUser returns the current actor's record
func (s *Store) CurrentUser() (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.current()
	if cur == nil {
		return User{}, apperrors.NewUserNotFound("current")
	}
	return cloneUser(cur), nil
}

// UserByID returns the user with the given id
func (s *Store) UserByID(userID string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, apperrors.NewUserNotFound(userID)
	}
	return cloneUser(u), nil
}

// AllUsers returns every user except the current actor, order unspecified
func (s *Store) AllUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID == s.currentUserID {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out
}

// IsFollowing reports whether the current actor follows the given user
func (s *Store) IsFollowing(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.current()
	if cur == nil {
		return false
	}
	return containsString(cur.Following, userID)
}

// CreateNewUser replaces the current actor with a brand-new user with
// empty graph edges. It is the registration transition: any message
// history belonging to the previous demo actor is discarded so the new
// identity starts with a clean inbox.
func (s *Store) CreateNewUser(name, handle string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &User{
		ID:              newID(),
		Name:            name,
		Handle:          normalizeHandle(handle),
		AvatarURL:       constants.DefaultAvatarURL,
		Following:       []string{},
		Followers:       []string{},
		RepostedPostIDs: []string{},
		Highlights:      []Highlight{},
	}

	s.users[u.ID] = u
	s.currentUserID = u.ID
	s.messages = nil

	s.logger.Info("New user registered",
		zap.String("user_id", u.ID),
		zap.String("handle", u.Handle),
	)
	return cloneUser(u)
}

// UpdateProfile merges the provided fields into the current actor;
// unset fields are untouched and handles are normalized to carry the
// sigil prefix
func (s *Store) UpdateProfile(update ProfileUpdate) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return User{}, apperrors.NewUserNotFound("current")
	}

	if update.Name != nil {
		cur.Name = *update.Name
	}
	if update.Handle != nil {
		cur.Handle = normalizeHandle(*update.Handle)
	}
	if update.AvatarURL != nil {
		cur.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		cur.Bio = *update.Bio
	}
	if update.IsPrivate != nil {
		cur.IsPrivate = *update.IsPrivate
	}

	s.logger.Debug("Profile updated", zap.String("user_id", cur.ID))
	return cloneUser(cur), nil
}

// AddHighlight appends a new highlight to the current actor's profile
// and returns the full highlight sequence
func (s *Store) AddHighlight(title, imageURL string) ([]Highlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return nil, apperrors.NewUserNotFound("current")
	}

	cur.Highlights = append(cur.Highlights, Highlight{
		ID:       newID(),
		Title:    title,
		ImageURL: imageURL,
	})

	out := make([]Highlight, len(cur.Highlights))
	copy(out, cur.Highlights)
	return out, nil
}

// ToggleFollow flips membership of targetUserID in the current actor's
// following set and mirrors the current actor's id in the target's
// followers set. Both edges change together or not at all; an unknown
// target mutates nothing.
func (s *Store) ToggleFollow(targetUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return apperrors.NewUserNotFound("current")
	}
	target, ok := s.users[targetUserID]
	if !ok {
		return apperrors.NewUserNotFound(targetUserID)
	}

	if containsString(cur.Following, targetUserID) {
		cur.Following = removeString(cur.Following, targetUserID)
		target.Followers = removeString(target.Followers, cur.ID)
	} else {
		cur.Following = append(cur.Following, targetUserID)
		target.Followers = append(target.Followers, cur.ID)
	}

	s.logger.Debug("Follow toggled",
		zap.String("user_id", cur.ID),
		zap.String("target_id", targetUserID),
		zap.Bool("following", containsString(cur.Following, targetUserID)),
	)
	return nil
}

// normalizeHandle ensures a handle carries the sigil prefix exactly once
func normalizeHandle(handle string) string {
	if strings.HasPrefix(handle, constants.HandleSigil) {
		return handle
	}
	return constants.HandleSigil + handle
}

func containsString(list []string, val string) bool {
	for _, v := range list {
		if v == val {
			return true
		}
	}
	return false
}

func removeString(list []string, val string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != val {
			out = append(out, v)
		}
	}
	return out
}

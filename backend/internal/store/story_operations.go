package store

import (
	"sort"

	apperrors "loop-social/backend/pkg/errors"
	"go.uber.org/zap"
)

// ============================================================================
// Story Operations
// ============================================================================

// AllStories returns the story rail: exactly one representative story
// per distinct owner (the first found for that owner), with the current
// actor's own story first and unviewed stories ahead of viewed ones.
func (s *Store) AllStories() []Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.stories))
	out := make([]Story, 0, len(s.stories))
	for _, st := range s.stories {
		if seen[st.UserID] {
			continue
		}
		seen[st.UserID] = true
		out = append(out, *st)
	}

	currentID := s.currentUserID
	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].UserID == currentID) != (out[j].UserID == currentID) {
			return out[i].UserID == currentID
		}
		return !out[i].IsViewed && out[j].IsViewed
	})
	return out
}

// StoriesByUser returns every story item owned by the given user in
// insertion order
func (s *Store) StoriesByUser(userID string) []Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Story, 0)
	for _, st := range s.stories {
		if st.UserID == userID {
			out = append(out, *st)
		}
	}
	return out
}

// CreateStory creates a new unviewed story owned by the current actor,
// discoverable by subsequent queries immediately
func (s *Store) CreateStory(mediaURL string, kind MediaKind) (Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return Story{}, apperrors.NewUserNotFound("current")
	}

	st := &Story{
		ID:        newID(),
		UserID:    cur.ID,
		MediaURL:  mediaURL,
		MediaKind: kind,
		Timestamp: now(),
	}
	s.stories = append([]*Story{st}, s.stories...)

	s.logger.Info("Story created",
		zap.String("story_id", st.ID),
		zap.String("user_id", cur.ID),
		zap.String("media_kind", string(kind)),
	)
	return *st, nil
}

// MarkStoryViewed flips a story's viewed flag from the viewing actor's
// perspective, which demotes its owner in the rail ordering
func (s *Store) MarkStoryViewed(storyID string) (Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.stories {
		if st.ID == storyID {
			st.IsViewed = true
			return *st, nil
		}
	}
	return Story{}, apperrors.NewStoryNotFound(storyID)
}

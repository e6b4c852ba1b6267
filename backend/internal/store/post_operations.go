package store

import (
	"math/rand"
	"sort"

	apperrors "loop-social/backend/pkg/errors"
	"go.uber.org/zap"
)

// ============================================================================
// Post Operations
// ============================================================================

// Feed returns every post sorted by timestamp descending. Posts are
// stored newest-first and the sort is stable, so a post created now
// always sorts ahead of one created in the same instant.
func (s *Store) Feed() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := clonePosts(s.posts)
	sortPostsByTimestampDesc(out)
	return out
}

// ExplorePosts returns every post not authored by the current actor.
// The order is shuffled and explicitly not deterministic or stable
// across calls.
func (s *Store) ExplorePosts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.UserID == s.currentUserID {
			continue
		}
		out = append(out, clonePost(p))
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// SavedPosts returns the posts the current actor has saved
func (s *Store) SavedPosts() []Post {
	return s.filterPosts(func(p *Post) bool { return p.IsSavedByCurrentUser })
}

// LikedPosts returns the posts the current actor has liked
func (s *Store) LikedPosts() []Post {
	return s.filterPosts(func(p *Post) bool { return p.IsLikedByCurrentUser })
}

// PostsByUser returns the posts authored by the given user, newest first
func (s *Store) PostsByUser(userID string) []Post {
	out := s.filterPosts(func(p *Post) bool { return p.UserID == userID })
	sortPostsByTimestampDesc(out)
	return out
}

// RepostsByUser returns the posts whose ids appear in the given user's
// reposted set, newest first. An unknown user yields an empty slice.
func (s *Store) RepostsByUser(userID string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return []Post{}
	}

	out := make([]Post, 0, len(u.RepostedPostIDs))
	for _, p := range s.posts {
		if containsString(u.RepostedPostIDs, p.ID) {
			out = append(out, clonePost(p))
		}
	}
	sortPostsByTimestampDesc(out)
	return out
}

// CreatePost creates a new post authored by the current actor. Counters
// start at zero and every actor-scoped flag starts false. The store
// imposes no emptiness constraint on content; that validation belongs
// to the caller.
func (s *Store) CreatePost(input CreatePostInput) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return Post{}, apperrors.NewUserNotFound("current")
	}

	p := &Post{
		ID:            newID(),
		UserID:        cur.ID,
		Content:       input.Content,
		ImageURL:      input.ImageURL,
		Location:      input.Location,
		TaggedUserIDs: input.TaggedUserIDs,
		Comments:      []Comment{},
		Timestamp:     now(),
	}

	// Newest first, so equal timestamps keep creation order in Feed
	s.posts = append([]*Post{p}, s.posts...)

	s.logger.Info("Post created",
		zap.String("post_id", p.ID),
		zap.String("user_id", cur.ID),
	)
	return clonePost(p), nil
}

// ToggleLike flips the liked flag and adjusts the like counter by one
// in the same step; the pair never moves independently
func (s *Store) ToggleLike(postID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPost(postID)
	if p == nil {
		return Post{}, apperrors.NewPostNotFound(postID)
	}

	if p.IsLikedByCurrentUser {
		p.IsLikedByCurrentUser = false
		p.Likes--
	} else {
		p.IsLikedByCurrentUser = true
		p.Likes++
	}

	s.logger.Debug("Like toggled",
		zap.String("post_id", postID),
		zap.Bool("liked", p.IsLikedByCurrentUser),
		zap.Int("likes", p.Likes),
	)
	return clonePost(p), nil
}

// ToggleSave flips the saved flag only; saving carries no counter
func (s *Store) ToggleSave(postID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPost(postID)
	if p == nil {
		return Post{}, apperrors.NewPostNotFound(postID)
	}

	p.IsSavedByCurrentUser = !p.IsSavedByCurrentUser
	return clonePost(p), nil
}

// ToggleRepost flips the reposted flag, adjusts the repost counter and
// updates the current actor's reposted set as one atomic unit. If the
// post is unknown none of the three changes happen.
func (s *Store) ToggleRepost(postID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return Post{}, apperrors.NewUserNotFound("current")
	}
	p := s.findPost(postID)
	if p == nil {
		return Post{}, apperrors.NewPostNotFound(postID)
	}

	if p.IsRepostedByCurrentUser {
		p.IsRepostedByCurrentUser = false
		p.Reposts--
		cur.RepostedPostIDs = removeString(cur.RepostedPostIDs, postID)
	} else {
		p.IsRepostedByCurrentUser = true
		p.Reposts++
		if !containsString(cur.RepostedPostIDs, postID) {
			cur.RepostedPostIDs = append(cur.RepostedPostIDs, postID)
		}
	}

	s.logger.Debug("Repost toggled",
		zap.String("post_id", postID),
		zap.Bool("reposted", p.IsRepostedByCurrentUser),
		zap.Int("reposts", p.Reposts),
	)
	return clonePost(p), nil
}

// AddComment appends a new comment authored by the current actor to the
// post's comment sequence
func (s *Store) AddComment(postID, text string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current()
	if cur == nil {
		return Comment{}, apperrors.NewUserNotFound("current")
	}
	p := s.findPost(postID)
	if p == nil {
		return Comment{}, apperrors.NewPostNotFound(postID)
	}

	c := Comment{
		ID:        newID(),
		UserID:    cur.ID,
		Text:      text,
		Timestamp: now(),
	}
	p.Comments = append(p.Comments, c)

	s.logger.Debug("Comment added",
		zap.String("post_id", postID),
		zap.String("comment_id", c.ID),
	)
	return c, nil
}

// filterPosts returns deep copies of the posts matching the predicate,
// in storage order
func (s *Store) filterPosts(keep func(*Post) bool) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, 0)
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func sortPostsByTimestampDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
}

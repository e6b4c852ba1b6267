package store

import (
	"testing"

	apperrors "loop-social/backend/pkg/errors"
)

func TestToggleLike_IsAnInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	created, err := s.CreatePost(CreatePostInput{Content: "hello"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	liked, err := s.ToggleLike(created.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if liked.Likes != 1 || !liked.IsLikedByCurrentUser {
		t.Errorf("After first toggle: likes=%d liked=%v, want 1/true", liked.Likes, liked.IsLikedByCurrentUser)
	}

	unliked, err := s.ToggleLike(created.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if unliked.Likes != created.Likes || unliked.IsLikedByCurrentUser != created.IsLikedByCurrentUser {
		t.Errorf("Double toggle must restore original state, got likes=%d liked=%v",
			unliked.Likes, unliked.IsLikedByCurrentUser)
	}
}

func TestToggleLike_UnknownPostIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreatePost(CreatePostInput{Content: "untouched"})

	_, err := s.ToggleLike("missing")
	if err == nil {
		t.Fatal("Expected error for unknown post")
	}
	if _, ok := err.(*apperrors.ErrPostNotFound); !ok {
		t.Errorf("Expected ErrPostNotFound, got %T", err)
	}

	for _, p := range s.Feed() {
		if p.Likes != 0 || p.IsLikedByCurrentUser {
			t.Error("Unknown-post toggle mutated an existing post")
		}
	}
}

// repostStateConsistent checks the triple that must never desync: the
// post flag, the post counter delta and the actor's reposted set
func repostStateConsistent(t *testing.T, s *Store, postID string) {
	t.Helper()
	cur, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	var post Post
	found := false
	for _, p := range s.Feed() {
		if p.ID == postID {
			post, found = p, true
			break
		}
	}
	if !found {
		t.Fatalf("Post %s not in feed", postID)
	}
	inSet := containsString(cur.RepostedPostIDs, postID)
	if post.IsRepostedByCurrentUser != inSet {
		t.Errorf("Repost flag (%v) and repostedPostIds membership (%v) diverged for %s",
			post.IsRepostedByCurrentUser, inSet, postID)
	}
}

func TestToggleRepost_TripleStaysConsistent(t *testing.T) {
	s, _ := newTestStore(t)
	created, err := s.CreatePost(CreatePostInput{Content: "repost me"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	repostStateConsistent(t, s, created.ID)

	for i := 0; i < 5; i++ {
		p, err := s.ToggleRepost(created.ID)
		if err != nil {
			t.Fatalf("ToggleRepost failed: %v", err)
		}
		wantReposts := (i + 1) % 2
		if p.Reposts != wantReposts {
			t.Errorf("Toggle %d: reposts=%d, want %d", i+1, p.Reposts, wantReposts)
		}
		repostStateConsistent(t, s, created.ID)
	}
}

func TestToggleRepost_UnknownPostMutatesNothing(t *testing.T) {
	s, actor := newTestStore(t)

	_, err := s.ToggleRepost("missing")
	if _, ok := err.(*apperrors.ErrPostNotFound); !ok {
		t.Fatalf("Expected ErrPostNotFound, got %v", err)
	}

	cur, _ := s.CurrentUser()
	if len(cur.RepostedPostIDs) != len(actor.RepostedPostIDs) {
		t.Error("Failed repost toggle touched the actor's reposted set")
	}
}

func TestToggleSave_FlipsFlagOnly(t *testing.T) {
	s, _ := newTestStore(t)
	created, _ := s.CreatePost(CreatePostInput{Content: "keep this"})

	saved, err := s.ToggleSave(created.ID)
	if err != nil {
		t.Fatalf("ToggleSave failed: %v", err)
	}
	if !saved.IsSavedByCurrentUser {
		t.Error("Expected saved flag true after toggle")
	}
	if saved.Likes != 0 || saved.Reposts != 0 {
		t.Error("ToggleSave must not touch counters")
	}

	got := s.SavedPosts()
	if len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("SavedPosts = %v, want just %s", got, created.ID)
	}

	s.ToggleSave(created.ID)
	if len(s.SavedPosts()) != 0 {
		t.Error("Expected no saved posts after second toggle")
	}
}

func TestAddComment_AppendsExactlyOne(t *testing.T) {
	s, actor := newTestStore(t)
	created, _ := s.CreatePost(CreatePostInput{Content: "discuss"})

	cm, err := s.AddComment(created.ID, "first!")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if cm.UserID != actor.ID {
		t.Errorf("Comment author = %s, want current actor %s", cm.UserID, actor.ID)
	}

	feed := s.Feed()
	if len(feed[0].Comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(feed[0].Comments))
	}
	if feed[0].Comments[0].Text != "first!" {
		t.Errorf("Comment text = %q", feed[0].Comments[0].Text)
	}
}

func TestAddComment_UnknownPostLeavesAllCountsUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreatePost(CreatePostInput{Content: "a"})
	s.CreatePost(CreatePostInput{Content: "b"})

	_, err := s.AddComment("missing", "into the void")
	if _, ok := err.(*apperrors.ErrPostNotFound); !ok {
		t.Fatalf("Expected ErrPostNotFound, got %v", err)
	}

	for _, p := range s.Feed() {
		if len(p.Comments) != 0 {
			t.Errorf("Post %s gained a comment from a failed append", p.ID)
		}
	}
}

func TestFeed_NewestCreatePostSortsFirst(t *testing.T) {
	s, _ := newTestStore(t)
	contents := []string{"one", "two", "three", "four"}
	for _, content := range contents {
		if _, err := s.CreatePost(CreatePostInput{Content: content}); err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}
	}

	feed := s.Feed()
	if len(feed) != len(contents) {
		t.Fatalf("Feed has %d posts, want %d", len(feed), len(contents))
	}
	for i := range feed {
		want := contents[len(contents)-1-i]
		if feed[i].Content != want {
			t.Errorf("feed[%d] = %q, want %q", i, feed[i].Content, want)
		}
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Errorf("Feed timestamps not non-increasing at %d", i)
		}
	}
}

func TestCreatePost_ThenLikeTwice_EndToEnd(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreatePost(CreatePostInput{Content: "hello"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	feed := s.Feed()
	if len(feed) != 1 {
		t.Fatalf("Feed has %d posts, want 1", len(feed))
	}
	p := feed[0]
	if p.Content != "hello" || p.Likes != 0 || p.Reposts != 0 || len(p.Comments) != 0 {
		t.Errorf("Fresh post state wrong: %+v", p)
	}

	liked, err := s.ToggleLike(created.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if liked.Likes != 1 || !liked.IsLikedByCurrentUser {
		t.Errorf("After like: likes=%d liked=%v, want 1/true", liked.Likes, liked.IsLikedByCurrentUser)
	}

	unliked, err := s.ToggleLike(created.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if unliked.Likes != 0 || unliked.IsLikedByCurrentUser {
		t.Errorf("After unlike: likes=%d liked=%v, want 0/false", unliked.Likes, unliked.IsLikedByCurrentUser)
	}
}

func TestExplorePosts_ExcludesOwnPosts(t *testing.T) {
	s := NewWithSeed()
	cur, _ := s.CurrentUser()
	s.CreatePost(CreatePostInput{Content: "mine"})

	for _, p := range s.ExplorePosts() {
		if p.UserID == cur.ID {
			t.Errorf("Explore surfaced the actor's own post %s", p.ID)
		}
	}
}

func TestPostsByUser_OnlyAuthoredNewestFirst(t *testing.T) {
	s := NewWithSeed()

	posts := s.PostsByUser("user3")
	if len(posts) == 0 {
		t.Fatal("Expected seeded posts for user3")
	}
	for i, p := range posts {
		if p.UserID != "user3" {
			t.Errorf("PostsByUser returned foreign post %s", p.ID)
		}
		if i > 0 && p.Timestamp.After(posts[i-1].Timestamp) {
			t.Error("PostsByUser not sorted newest first")
		}
	}
}

func TestRepostsByUser_MatchesRepostedSet(t *testing.T) {
	s := NewWithSeed()
	cur, _ := s.CurrentUser()

	feed := s.Feed()
	if len(feed) < 3 {
		t.Fatal("Seed too small for this test")
	}
	for _, id := range []string{feed[2].ID, feed[0].ID} {
		if _, err := s.ToggleRepost(id); err != nil {
			t.Fatalf("ToggleRepost failed: %v", err)
		}
	}
	// One toggle pair cancels out
	s.ToggleRepost(feed[0].ID)

	reposts := s.RepostsByUser(cur.ID)
	me, _ := s.CurrentUser()
	if len(reposts) != len(me.RepostedPostIDs) {
		t.Fatalf("RepostsByUser returned %d posts, reposted set has %d", len(reposts), len(me.RepostedPostIDs))
	}
	for i, p := range reposts {
		if !containsString(me.RepostedPostIDs, p.ID) {
			t.Errorf("RepostsByUser surfaced %s which is not in the reposted set", p.ID)
		}
		if i > 0 && p.Timestamp.After(reposts[i-1].Timestamp) {
			t.Error("RepostsByUser not sorted newest first")
		}
	}
}

func TestRepostsByUser_UnknownUserIsEmpty(t *testing.T) {
	s := NewWithSeed()
	if got := s.RepostsByUser("nobody"); len(got) != 0 {
		t.Errorf("Expected empty result for unknown user, got %d posts", len(got))
	}
}

func TestLikedPosts_TracksLikeToggles(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.CreatePost(CreatePostInput{Content: "a"})
	b, _ := s.CreatePost(CreatePostInput{Content: "b"})

	s.ToggleLike(a.ID)
	s.ToggleLike(b.ID)
	s.ToggleLike(a.ID)

	liked := s.LikedPosts()
	if len(liked) != 1 || liked[0].ID != b.ID {
		t.Errorf("LikedPosts = %v, want just %s", liked, b.ID)
	}
}

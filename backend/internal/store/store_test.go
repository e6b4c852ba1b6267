package store

import "testing"

// newTestStore returns an empty store with a freshly registered actor,
// so every test starts from a clean graph
func newTestStore(t *testing.T) (*Store, User) {
	t.Helper()
	s := New()
	actor := s.CreateNewUser("Test User", "tester")
	return s, actor
}

func TestNewWithSeed_MirrorInvariantHolds(t *testing.T) {
	s := NewWithSeed()

	cur, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if cur.ID == "" {
		t.Fatal("Seeded store has no current actor")
	}

	users := append(s.AllUsers(), cur)
	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, u := range users {
		for _, followeeID := range u.Following {
			followee, ok := byID[followeeID]
			if !ok {
				t.Fatalf("User %s follows unknown user %s", u.ID, followeeID)
			}
			if !containsString(followee.Followers, u.ID) {
				t.Errorf("User %s follows %s but is missing from their followers", u.ID, followeeID)
			}
		}
		for _, followerID := range u.Followers {
			follower, ok := byID[followerID]
			if !ok {
				t.Fatalf("User %s has unknown follower %s", u.ID, followerID)
			}
			if !containsString(follower.Following, u.ID) {
				t.Errorf("User %s lists follower %s who does not follow them", u.ID, followerID)
			}
		}
	}
}

func TestNewWithSeed_HasBrowsableContent(t *testing.T) {
	s := NewWithSeed()

	if len(s.Feed()) == 0 {
		t.Error("Seeded feed is empty")
	}
	if len(s.AllStories()) == 0 {
		t.Error("Seeded story rail is empty")
	}
	if len(s.AllUsers()) == 0 {
		t.Error("Seeded store has no other users")
	}
}

func TestQueries_ReturnIndependentCopies(t *testing.T) {
	s, _ := newTestStore(t)
	created, err := s.CreatePost(CreatePostInput{Content: "original"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if _, err := s.AddComment(created.ID, "first"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	feed := s.Feed()
	feed[0].Content = "mutated"
	feed[0].Likes = 999
	feed[0].Comments[0].Text = "mutated comment"

	fresh := s.Feed()
	if fresh[0].Content != "original" {
		t.Errorf("Mutating a snapshot changed stored content: %q", fresh[0].Content)
	}
	if fresh[0].Likes != 0 {
		t.Errorf("Mutating a snapshot changed stored likes: %d", fresh[0].Likes)
	}
	if fresh[0].Comments[0].Text != "first" {
		t.Errorf("Mutating a snapshot changed a stored comment: %q", fresh[0].Comments[0].Text)
	}

	cur, _ := s.CurrentUser()
	cur.Following = append(cur.Following, "nobody")
	refreshed, _ := s.CurrentUser()
	if len(refreshed.Following) != 0 {
		t.Error("Mutating a user snapshot changed stored edges")
	}
}

func TestCreateNewUser_ReplacesActorAndClearsMessages(t *testing.T) {
	s := NewWithSeed()
	previous, _ := s.CurrentUser()

	if len(s.MessagesForChat("user1")) == 0 {
		t.Fatal("Expected seeded chat with user1")
	}

	u := s.CreateNewUser("Fresh Face", "freshface")
	if u.ID == previous.ID {
		t.Error("CreateNewUser did not replace the current actor")
	}
	if u.Handle != "@freshface" {
		t.Errorf("Expected normalized handle '@freshface', got %q", u.Handle)
	}
	if len(u.Following) != 0 || len(u.Followers) != 0 || len(u.RepostedPostIDs) != 0 || len(u.Highlights) != 0 {
		t.Error("New user must start with empty graph edges")
	}

	if got := s.MessagesForChat("user1"); len(got) != 0 {
		t.Errorf("Prior demo messages must be discarded, got %d", len(got))
	}

	// The previous actor remains in the graph, only the pointer moved
	if _, err := s.UserByID(previous.ID); err != nil {
		t.Errorf("Previous actor disappeared from the graph: %v", err)
	}
	cur, _ := s.CurrentUser()
	if cur.ID != u.ID {
		t.Errorf("Current actor is %s, want %s", cur.ID, u.ID)
	}
}

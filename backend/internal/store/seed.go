package store

import "time"

// seed populates the store with the demo graph a session starts with:
// a signed-in demo actor, a handful of other users, posts with some
// engagement, a few stories and the beginning of two chats.
func (s *Store) seed() {
	base := now()

	demo := &User{
		ID:        "current",
		Name:      "Roberto Santos",
		Handle:    "@robertos",
		AvatarURL: "https://picsum.photos/seed/me/200/200",
		Bio:       "Tech enthusiast and loop creator.\nExploring the future of social networks.",
		Highlights: []Highlight{
			{ID: "h1", Title: "Travel", ImageURL: "https://picsum.photos/seed/travel/200/200"},
			{ID: "h2", Title: "Tech", ImageURL: "https://picsum.photos/seed/tech_h/200/200"},
		},
	}

	others := []*User{
		{
			ID:        "user1",
			Name:      "Ana Silva",
			Handle:    "@ana.silva",
			AvatarURL: "https://picsum.photos/seed/ana/200/200",
			Bio:       "Photographer and coffee lover.\nCapturing moments.",
			IsPrivate: true,
			Highlights: []Highlight{
				{ID: "h3", Title: "Coffee", ImageURL: "https://picsum.photos/seed/coffee/200/200"},
			},
		},
		{
			ID:        "user2",
			Name:      "Tech Insider",
			Handle:    "@tech_daily",
			AvatarURL: "https://picsum.photos/seed/tech/200/200",
			Bio:       "Daily tech news.",
		},
		{
			ID:        "user3",
			Name:      "Marcos Viajante",
			Handle:    "@marcos_trips",
			AvatarURL: "https://picsum.photos/seed/marcos/200/200",
			Bio:       "Traveling the world.",
			Highlights: []Highlight{
				{ID: "h4", Title: "Beaches", ImageURL: "https://picsum.photos/seed/beach/200/200"},
				{ID: "h5", Title: "Mountains", ImageURL: "https://picsum.photos/seed/mountain/200/200"},
			},
		},
		{
			ID:        "user4",
			Name:      "Laura Design",
			Handle:    "@laura.ux",
			AvatarURL: "https://picsum.photos/seed/laura/200/200",
			Bio:       "UX/UI designer crafting digital experiences.",
			Highlights: []Highlight{
				{ID: "h6", Title: "Projects", ImageURL: "https://picsum.photos/seed/design/200/200"},
			},
		},
		{
			ID:        "user5",
			Name:      "Pedro Gamer",
			Handle:    "@pedro_plays",
			AvatarURL: "https://picsum.photos/seed/pedro/200/200",
			Bio:       "Live every night! RPG and FPS.",
		},
		{
			ID:        "user6",
			Name:      "Sofia Fitness",
			Handle:    "@sofia.fit",
			AvatarURL: "https://picsum.photos/seed/sofia/200/200",
			Bio:       "Health and wellness. Workout tips.",
			Highlights: []Highlight{
				{ID: "h7", Title: "Workouts", ImageURL: "https://picsum.photos/seed/gym/200/200"},
			},
		},
		{
			ID:        "user7",
			Name:      "Lucas Chef",
			Handle:    "@lucas.cozinha",
			AvatarURL: "https://picsum.photos/seed/lucas/200/200",
			Bio:       "Easy and delicious recipes.",
		},
	}

	s.users[demo.ID] = demo
	for _, u := range others {
		s.users[u.ID] = u
	}
	for _, u := range s.users {
		u.Following = []string{}
		u.Followers = []string{}
		u.RepostedPostIDs = []string{}
		if u.Highlights == nil {
			u.Highlights = []Highlight{}
		}
	}
	s.currentUserID = demo.ID

	// Follow edges are seeded pairwise so the mirror invariant holds
	// from the first query on
	follows := [][2]string{
		{"current", "user1"}, {"current", "user2"}, {"current", "user4"},
		{"user1", "current"}, {"user1", "user3"},
		{"user2", "user4"},
		{"user3", "current"},
		{"user4", "user2"}, {"user4", "user5"},
		{"user5", "user2"}, {"user5", "current"},
		{"user7", "user6"},
	}
	for _, edge := range follows {
		s.addFollowEdge(edge[0], edge[1])
	}

	s.posts = []*Post{
		{
			ID:       "p1",
			UserID:   "user2",
			Content:  "The future of AI is now! Just tried the new assistant model and it is wild how well it follows context. #AI #Tech #Loop",
			Location: "Silicon Valley, CA",
			Likes:    124,
			Reposts:  12,
			Comments: []Comment{
				{ID: "c10", UserID: "user1", Text: "Can't wait to try it!", Timestamp: base},
			},
			Timestamp: base.Add(-1 * time.Hour),
		},
		{
			ID:            "p2",
			UserID:        "user3",
			Content:       "Nothing like breakfast with this view.",
			ImageURL:      "https://picsum.photos/seed/mountains/800/600",
			Location:      "Swiss Alps",
			TaggedUserIDs: []string{"user1"},
			Likes:         89,
			Reposts:       5,
			Comments: []Comment{
				{ID: "c1", UserID: "user1", Text: "What a gorgeous place!", Timestamp: base},
			},
			Timestamp:            base.Add(-2 * time.Hour),
			IsLikedByCurrentUser: true,
			IsSavedByCurrentUser: true,
		},
		{
			ID:        "p6",
			UserID:    "user4",
			Content:   "Just finished the redesign of my portfolio. What do you think of the colors?",
			ImageURL:  "https://picsum.photos/seed/colors/800/600",
			Likes:     210,
			Reposts:   34,
			Comments:  []Comment{},
			Timestamp: base.Add(-134 * time.Minute),
		},
		{
			ID:        "p3",
			UserID:    "user1",
			Content:   "New photo essay up on my portfolio. Link in bio!",
			ImageURL:  "https://picsum.photos/seed/camera/800/600",
			Likes:     45,
			Reposts:   2,
			Comments:  []Comment{},
			Timestamp: base.Add(-167 * time.Minute),
		},
		{
			ID:        "p7",
			UserID:    "user7",
			Content:   "Carrot cake with chocolate. The classic recipe that never fails!\n\nRecipe in the comments.",
			ImageURL:  "https://picsum.photos/seed/cake/800/600",
			Likes:     567,
			Reposts:   120,
			Comments:  []Comment{},
			Timestamp: base.Add(-3 * time.Hour),
		},
		{
			ID:        "p4",
			UserID:    "user2",
			Content:   "Big product announcements just dropped. Thoughts?",
			Likes:     230,
			Reposts:   45,
			Comments:  []Comment{},
			Timestamp: base.Add(-200 * time.Minute),
		},
		{
			ID:        "p5",
			UserID:    "user3",
			Content:   "Off to the next adventure!",
			ImageURL:  "https://picsum.photos/seed/plane/800/600",
			Likes:     12,
			Comments:  []Comment{},
			Timestamp: base.Add(-4 * time.Hour),
		},
	}

	s.stories = []*Story{
		{ID: "s1", UserID: "user1", MediaURL: "https://picsum.photos/seed/story1/300/500", MediaKind: MediaKindImage, Timestamp: base},
		{ID: "s2", UserID: "user2", MediaURL: "https://picsum.photos/seed/story2/300/500", MediaKind: MediaKindImage, Timestamp: base},
		{ID: "s3", UserID: "user4", MediaURL: "https://picsum.photos/seed/story3/300/500", MediaKind: MediaKindImage, Timestamp: base},
		{ID: "s4", UserID: "user6", MediaURL: "https://picsum.photos/seed/story4/300/500", MediaKind: MediaKindImage, Timestamp: base},
	}

	s.messages = []*Message{
		{ID: "m1", SenderID: "user1", ReceiverID: "current", Text: "Hey! Saw your post about AI, really cool!", Timestamp: base.Add(-24 * time.Hour)},
		{ID: "m2", SenderID: "current", ReceiverID: "user1", Text: "Thanks Ana! You should try it too.", Timestamp: base.Add(-23 * time.Hour)},
		{ID: "m3", SenderID: "user4", ReceiverID: "current", Text: "Loved the trip photos!", Timestamp: base.Add(-11 * time.Hour)},
	}
}

// addFollowEdge records that follower follows followee on both sides
func (s *Store) addFollowEdge(followerID, followeeID string) {
	follower, ok1 := s.users[followerID]
	followee, ok2 := s.users[followeeID]
	if !ok1 || !ok2 {
		return
	}
	if !containsString(follower.Following, followeeID) {
		follower.Following = append(follower.Following, followeeID)
	}
	if !containsString(followee.Followers, followerID) {
		followee.Followers = append(followee.Followers, followerID)
	}
}

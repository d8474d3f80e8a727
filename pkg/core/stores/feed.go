package stores

import (
	"slices"
	"sync"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// FeedStore holds the social feed and the selected filter tab
type FeedStore struct {
	mu sync.Mutex

	seed  []model.FeedPost
	posts []model.FeedPost
	tab   model.FeedTab
}

// NewFeedStore creates a feed showing seedPosts on the "all" tab.
// RefreshFeed restores this same list.
func NewFeedStore(seedPosts []model.FeedPost) *FeedStore {
	return &FeedStore{
		seed:  slices.Clone(seedPosts),
		posts: slices.Clone(seedPosts),
		tab:   model.FeedTabAll,
	}
}

func (s *FeedStore) SetFeedTab(tab model.FeedTab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tab = tab
}

// AddPost puts post at the top of the feed. IDs are not checked for uniqueness.
func (s *FeedStore) AddPost(post model.FeedPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]model.FeedPost, 0, len(s.posts)+1)
	posts = append(posts, post)
	s.posts = append(posts, s.posts...)
}

// RefreshFeed drops added posts and restores the seed list
func (s *FeedStore) RefreshFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = slices.Clone(s.seed)
}

// Posts returns every post, newest first
func (s *FeedStore) Posts() []model.FeedPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.posts)
}

func (s *FeedStore) Tab() model.FeedTab {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tab
}

// Visible returns the posts that pass the active tab's filter
func (s *FeedStore) Visible() []model.FeedPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FilterPosts(s.posts, s.tab)
}

// FilterPosts applies a feed tab to posts, keeping their order.
// drives: ngo_drive, recommendation. updates: ngo_update, volunteer_live,
// volunteer_post_event. all: everything.
func FilterPosts(posts []model.FeedPost, tab model.FeedTab) []model.FeedPost {
	if tab != model.FeedTabDrives && tab != model.FeedTabUpdates {
		return slices.Clone(posts)
	}

	filtered := make([]model.FeedPost, 0, len(posts))
	for _, p := range posts {
		if postInTab(p.Type, tab) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func postInTab(t model.PostType, tab model.FeedTab) bool {
	switch tab {
	case model.FeedTabDrives:
		return t == model.PostTypeNGODrive || t == model.PostTypeRecommendation
	case model.FeedTabUpdates:
		return t == model.PostTypeNGOUpdate || t == model.PostTypeVolunteerLive || t == model.PostTypeVolunteerPostEvent
	default:
		return true
	}
}

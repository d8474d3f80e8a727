package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/seed"
)

func postIDs(posts []model.FeedPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestFeed_InitialState(t *testing.T) {
	store := NewFeedStore(seed.FeedPosts())

	assert.Equal(t, model.FeedTabAll, store.Tab())
	assert.Equal(t, []string{"post-1", "post-2", "post-3", "post-4", "post-5"}, postIDs(store.Posts()))
}

func TestFeed_AddPost_Prepends(t *testing.T) {
	store := NewFeedStore(seed.FeedPosts())
	before := postIDs(store.Posts())

	store.AddPost(model.FeedPost{ID: "post-new", Type: model.PostTypeVolunteerLive})

	after := postIDs(store.Posts())
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "post-new", after[0])
	assert.Equal(t, before, after[1:])
}

func TestFeed_AddPost_NoDeduplication(t *testing.T) {
	store := NewFeedStore(nil)

	store.AddPost(model.FeedPost{ID: "dup"})
	store.AddPost(model.FeedPost{ID: "dup"})

	assert.Equal(t, []string{"dup", "dup"}, postIDs(store.Posts()))
}

func TestFeed_RefreshRestoresSeed(t *testing.T) {
	store := NewFeedStore(seed.FeedPosts())
	store.AddPost(model.FeedPost{ID: "post-new"})
	store.SetFeedTab(model.FeedTabDrives)

	store.RefreshFeed()

	assert.Equal(t, postIDs(seed.FeedPosts()), postIDs(store.Posts()))
	assert.Equal(t, model.FeedTabDrives, store.Tab(), "refresh keeps the tab")
}

func TestFeed_PostsReturnsCopy(t *testing.T) {
	store := NewFeedStore(seed.FeedPosts())

	posts := store.Posts()
	posts[0].Caption = "tampered"

	assert.NotEqual(t, "tampered", store.Posts()[0].Caption)
}

func TestFilterPosts_SeedPartition(t *testing.T) {
	posts := seed.FeedPosts()

	drives := FilterPosts(posts, model.FeedTabDrives)
	assert.Equal(t, []string{"post-1", "post-3"}, postIDs(drives))

	updates := FilterPosts(posts, model.FeedTabUpdates)
	assert.Equal(t, []string{"post-2", "post-4", "post-5"}, postIDs(updates))
	for _, p := range updates {
		assert.Contains(t,
			[]model.PostType{model.PostTypeNGOUpdate, model.PostTypeVolunteerLive, model.PostTypeVolunteerPostEvent},
			p.Type)
	}

	all := FilterPosts(posts, model.FeedTabAll)
	assert.Len(t, all, 5)

	// drives and updates partition the feed
	assert.Equal(t, len(posts), len(drives)+len(updates))
}

func TestFeed_VisibleFollowsTab(t *testing.T) {
	store := NewFeedStore(seed.FeedPosts())
	store.AddPost(model.FeedPost{ID: "live-1", Type: model.PostTypeVolunteerLive})

	store.SetFeedTab(model.FeedTabUpdates)
	visible := store.Visible()
	require.NotEmpty(t, visible)
	assert.Equal(t, "live-1", visible[0].ID)

	store.SetFeedTab(model.FeedTabDrives)
	assert.NotContains(t, postIDs(store.Visible()), "live-1")
}

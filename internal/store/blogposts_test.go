package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldmapx/worldmapx-be/internal/models"
)

// newJournal builds a store whose clock is advanced manually so each post
// gets a distinct creation timestamp. Posts are inserted oldest-first.
func newJournal(t *testing.T) *Store {
	t.Helper()
	s := New()

	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		current = current.Add(time.Hour)
		return current
	}

	for _, p := range []models.BlogPost{
		{Title: "Cartography", Slug: "cartography", Published: true},
		{Title: "Photography", Slug: "photography", Published: true},
		{Title: "Drafts", Slug: "drafts", Published: false},
		{Title: "Manuscripts", Slug: "manuscripts", Published: true},
	} {
		_, err := s.CreateBlogPost(p)
		require.NoError(t, err)
	}
	return s
}

func TestCreateBlogPost_TimestampsEqualAtCreation(t *testing.T) {
	s := New()

	post, err := s.CreateBlogPost(models.BlogPost{Title: "Cartography", Slug: "cartography"})
	require.NoError(t, err)

	assert.Equal(t, 1, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestCreateBlogPost_RejectsDuplicateSlug(t *testing.T) {
	s := New()

	_, err := s.CreateBlogPost(models.BlogPost{Title: "Cartography", Slug: "cartography"})
	require.NoError(t, err)

	_, err = s.CreateBlogPost(models.BlogPost{Title: "Cartography Revisited", Slug: "cartography"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestGetBlogPosts_NewestFirst(t *testing.T) {
	s := newJournal(t)

	got := s.GetBlogPosts(BlogQuery{})
	require.Len(t, got, 4)
	assert.Equal(t, "manuscripts", got[0].Slug)
	assert.Equal(t, "cartography", got[3].Slug)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

func TestGetBlogPosts_NoPublishedOptionReturnsAll(t *testing.T) {
	s := newJournal(t)

	// The published-only default belongs to the API layer, not the store.
	got := s.GetBlogPosts(BlogQuery{})
	assert.Len(t, got, 4)
}

func TestGetBlogPosts_PublishedFilter(t *testing.T) {
	s := newJournal(t)

	published := true
	got := s.GetBlogPosts(BlogQuery{Published: &published})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, p.Published)
	}

	published = false
	got = s.GetBlogPosts(BlogQuery{Published: &published})
	require.Len(t, got, 1)
	assert.Equal(t, "drafts", got[0].Slug)
}

func TestGetBlogPosts_LimitAppliedAfterSort(t *testing.T) {
	s := newJournal(t)

	got := s.GetBlogPosts(BlogQuery{Limit: 2})
	require.Len(t, got, 2)
	assert.Equal(t, "manuscripts", got[0].Slug)
	assert.Equal(t, "drafts", got[1].Slug)
}

func TestGetBlogPostBySlug(t *testing.T) {
	s := newJournal(t)

	got, ok := s.GetBlogPostBySlug("photography")
	require.True(t, ok)
	assert.Equal(t, "Photography", got.Title)

	_, ok = s.GetBlogPostBySlug("unknown")
	assert.False(t, ok)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_LoadsSampleCatalog(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	categories := s.GetCategories()
	require.Len(t, categories, 6)
	assert.Equal(t, "maps", categories[0].Slug)
	assert.Equal(t, 1, categories[0].ID)

	products := s.GetProducts(ProductQuery{})
	assert.Len(t, products, 8)

	posts := s.GetBlogPosts(BlogQuery{})
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.True(t, p.Published)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	}
}

func TestSeed_ProductsReferenceSeededCategories(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	byID := make(map[int]bool)
	for _, c := range s.GetCategories() {
		byID[c.ID] = true
	}
	for _, p := range s.GetProducts(ProductQuery{}) {
		assert.True(t, byID[p.CategoryID], "product %q references unknown category %d", p.Slug, p.CategoryID)
	}
}

func TestSeed_IsDeterministicAcrossStores(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.Seed())
	require.NoError(t, b.Seed())

	assert.Equal(t, slugs(a.GetProducts(ProductQuery{})), slugs(b.GetProducts(ProductQuery{})))
	assert.Equal(t, len(a.GetCategories()), len(b.GetCategories()))
}

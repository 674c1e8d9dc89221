// Package store holds the four storefront collections in process memory.
// A restart reseeds deterministically from the fixed sample data; there is
// no persistence layer behind it.
package store

import (
	"sync"
	"time"

	"github.com/worldmapx/worldmapx-be/internal/models"
)

// Store owns the in-memory collections. All mutation goes through the
// Create methods, which are the sole writers. Collections are kept in
// insertion order; identifiers are assigned from per-collection counters
// and never reused.
type Store struct {
	mu sync.RWMutex

	users      []models.User
	categories []models.Category
	products   []models.Product
	blogPosts  []models.BlogPost

	nextUserID     int
	nextCategoryID int
	nextProductID  int
	nextBlogPostID int

	now func() time.Time
}

// New creates an empty Store. Call Seed to load the sample data set.
func New() *Store {
	return &Store{
		nextUserID:     1,
		nextCategoryID: 1,
		nextProductID:  1,
		nextBlogPostID: 1,
		now:            time.Now,
	}
}

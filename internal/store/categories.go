package store

import (
	"sort"

	"github.com/worldmapx/worldmapx-be/internal/models"
)

// CategoryProvider defines the category operations consumed by the API layer.
type CategoryProvider interface {
	GetCategories() []models.Category
	GetCategoryBySlug(slug string) (models.Category, bool)
	CreateCategory(category models.Category) (models.Category, error)
}

// GetCategories returns all categories sorted ascending by display order.
func (s *Store) GetCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetCategoryBySlug retrieves the first category with the given slug.
func (s *Store) GetCategoryBySlug(slug string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryBySlug(slug)
}

// categoryBySlug is the lock-free lookup shared with the product filters.
// Callers must hold at least a read lock.
func (s *Store) categoryBySlug(slug string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

// CreateCategory assigns the next identifier and stores the category.
// The ID field of the input is ignored.
func (s *Store) CreateCategory(category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categoryBySlug(category.Slug); exists {
		return models.Category{}, ErrSlugTaken
	}

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories = append(s.categories, category)
	return category, nil
}

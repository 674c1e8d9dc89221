package store

import "github.com/worldmapx/worldmapx-be/internal/models"

// ProductQuery enumerates the optional filters recognized by GetProducts.
// Nil pointer fields mean "not applied"; Limit 0 means no truncation.
type ProductQuery struct {
	Featured     *bool
	IsNew        *bool
	CategoryID   *int
	CategorySlug string
	Limit        int
}

// ProductProvider defines the product operations consumed by the API layer.
type ProductProvider interface {
	GetProducts(q ProductQuery) []models.Product
	GetProductBySlug(slug string) (models.Product, bool)
	CreateProduct(product models.Product) (models.Product, error)
}

// GetProducts returns products in stored order after applying, in sequence,
// every filter the query provides: category ID, category slug (resolved to
// an ID first; an unresolvable slug matches nothing), featured, isNew. The
// limit is applied last, after all filters.
func (s *Store) GetProducts(q ProductQuery) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	categoryID := 0
	if q.CategorySlug != "" {
		category, ok := s.categoryBySlug(q.CategorySlug)
		if !ok {
			return out
		}
		categoryID = category.ID
	}

	for _, p := range s.products {
		if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
			continue
		}
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		if q.IsNew != nil && p.IsNew != *q.IsNew {
			continue
		}
		out = append(out, p)
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// GetProductBySlug retrieves the first product with the given slug.
func (s *Store) GetProductBySlug(slug string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// CreateProduct assigns the next identifier and the creation timestamp,
// then stores the product. The ID and CreatedAt fields of the input are
// ignored.
func (s *Store) CreateProduct(product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Slug == product.Slug {
			return models.Product{}, ErrSlugTaken
		}
	}

	product.ID = s.nextProductID
	s.nextProductID++
	product.CreatedAt = s.now()
	s.products = append(s.products, product)
	return product, nil
}

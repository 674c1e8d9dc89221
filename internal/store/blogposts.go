package store

import (
	"sort"

	"github.com/worldmapx/worldmapx-be/internal/models"
)

// BlogQuery enumerates the optional filters recognized by GetBlogPosts.
// A nil Published means "all posts"; Limit 0 means no truncation. The
// published-only default for the public listing lives in the API layer,
// not here.
type BlogQuery struct {
	Published *bool
	Limit     int
}

// BlogProvider defines the blog operations consumed by the API layer.
type BlogProvider interface {
	GetBlogPosts(q BlogQuery) []models.BlogPost
	GetBlogPostBySlug(slug string) (models.BlogPost, bool)
	CreateBlogPost(post models.BlogPost) (models.BlogPost, error)
}

// GetBlogPosts returns posts sorted newest-first by creation timestamp,
// filtered by the published flag when supplied and truncated to the limit.
func (s *Store) GetBlogPosts(q BlogQuery) []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		if q.Published != nil && p.Published != *q.Published {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// GetBlogPostBySlug retrieves the first post with the given slug.
func (s *Store) GetBlogPostBySlug(slug string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.blogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// CreateBlogPost assigns the next identifier and identical creation and
// update timestamps, then stores the post. The ID, CreatedAt and UpdatedAt
// fields of the input are ignored.
func (s *Store) CreateBlogPost(post models.BlogPost) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.blogPosts {
		if p.Slug == post.Slug {
			return models.BlogPost{}, ErrSlugTaken
		}
	}

	post.ID = s.nextBlogPostID
	s.nextBlogPostID++
	now := s.now()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.blogPosts = append(s.blogPosts, post)
	return post, nil
}

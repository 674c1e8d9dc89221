package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/worldmapx/worldmapx-be/internal/models"
	"github.com/worldmapx/worldmapx-be/internal/store"
	"github.com/worldmapx/worldmapx-be/internal/validation"
)

// BlogHandler handles HTTP requests for the blog.
type BlogHandler struct {
	store    store.BlogProvider
	validate *validation.Validator
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(store store.BlogProvider, validate *validation.Validator) *BlogHandler {
	return &BlogHandler{store: store, validate: validate}
}

// CreateBlogPostPayload defines the structure for blog post creation
// requests. Timestamps are assigned server-side and not accepted here.
type CreateBlogPostPayload struct {
	Title     string `json:"title" validate:"required"`
	Slug      string `json:"slug" validate:"required"`
	Excerpt   string `json:"excerpt" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Image     string `json:"image" validate:"required,url"`
	ReadTime  int    `json:"readTime" validate:"gt=0"`
	Published bool   `json:"published"`
}

// GetAll handles the request to list blog posts, newest first. When the
// published parameter is omitted the listing defaults to published posts
// only; the store itself applies no such default.
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var q store.BlogQuery

	published := true
	if query.Has("published") {
		published = query.Get("published") == "true"
	}
	q.Published = &published

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		q.Limit = limit
	}

	writeJSON(w, http.StatusOK, h.store.GetBlogPosts(q))
}

// GetBySlug handles the request to get a single blog post by its slug.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, ok := h.store.GetBlogPostBySlug(slug)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Blog post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create handles the request to create a new blog post.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateBlogPostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Validate(payload); err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid blog post data",
				"errors":  verrs.Fields,
			})
			return
		}
		log.Error().Err(err).Msg("Blog post payload validation failed unexpectedly")
		writeMessage(w, http.StatusInternalServerError, "Error creating blog post")
		return
	}

	post, err := h.store.CreateBlogPost(models.BlogPost{
		Title:     payload.Title,
		Slug:      payload.Slug,
		Excerpt:   payload.Excerpt,
		Content:   payload.Content,
		Image:     payload.Image,
		ReadTime:  payload.ReadTime,
		Published: payload.Published,
	})
	if err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			writeMessage(w, http.StatusConflict, "Blog post slug already in use")
			return
		}
		log.Error().Err(err).Str("slug", payload.Slug).Msg("Failed to create blog post")
		writeMessage(w, http.StatusInternalServerError, "Error creating blog post")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

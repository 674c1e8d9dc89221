package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/worldmapx/worldmapx-be/internal/models"
	"github.com/worldmapx/worldmapx-be/internal/store"
	"github.com/worldmapx/worldmapx-be/internal/validation"
)

// CategoryHandler handles HTTP requests for the category catalog.
type CategoryHandler struct {
	store    store.CategoryProvider
	validate *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(store store.CategoryProvider, validate *validation.Validator) *CategoryHandler {
	return &CategoryHandler{store: store, validate: validate}
}

// CreateCategoryPayload defines the structure for category creation requests.
type CreateCategoryPayload struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required,url"`
	Order       int    `json:"order" validate:"gt=0"`
}

// GetAll handles the request to list all categories, sorted by display order.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.GetCategories())
}

// GetBySlug handles the request to get a single category by its slug.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	category, ok := h.store.GetCategoryBySlug(slug)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Create handles the request to create a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateCategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Validate(payload); err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid category data",
				"errors":  verrs.Fields,
			})
			return
		}
		log.Error().Err(err).Msg("Category payload validation failed unexpectedly")
		writeMessage(w, http.StatusInternalServerError, "Error creating category")
		return
	}

	category, err := h.store.CreateCategory(models.Category{
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		Image:       payload.Image,
		Order:       payload.Order,
	})
	if err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			writeMessage(w, http.StatusConflict, "Category slug already in use")
			return
		}
		log.Error().Err(err).Str("slug", payload.Slug).Msg("Failed to create category")
		writeMessage(w, http.StatusInternalServerError, "Error creating category")
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

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

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	store    store.ProductProvider
	validate *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store store.ProductProvider, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{store: store, validate: validate}
}

// CreateProductPayload defines the structure for product creation requests.
// ID and createdAt are assigned server-side and not accepted here.
type CreateProductPayload struct {
	Name             string   `json:"name" validate:"required"`
	Slug             string   `json:"slug" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	Price            string   `json:"price" validate:"required"`
	CategoryID       int      `json:"categoryId" validate:"gt=0"`
	Image            string   `json:"image" validate:"required,url"`
	Gallery          []string `json:"gallery"`
	Featured         bool     `json:"featured"`
	IsNew            bool     `json:"isNew"`
	InStock          bool     `json:"inStock"`
}

// GetAll handles the request to list products. Query parameters arrive as
// strings and are coerced here before reaching the store: "true" means
// true for the flag filters, anything else false.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var q store.ProductQuery

	if query.Has("featured") {
		featured := query.Get("featured") == "true"
		q.Featured = &featured
	}
	if query.Has("isNew") {
		isNew := query.Get("isNew") == "true"
		q.IsNew = &isNew
	}
	if v := query.Get("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid categoryId parameter")
			return
		}
		q.CategoryID = &id
	}
	q.CategorySlug = query.Get("categorySlug")
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		q.Limit = limit
	}

	writeJSON(w, http.StatusOK, h.store.GetProducts(q))
}

// GetBySlug handles the request to get a single product by its slug.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, ok := h.store.GetProductBySlug(slug)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create handles the request to create a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Validate(payload); err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid product data",
				"errors":  verrs.Fields,
			})
			return
		}
		log.Error().Err(err).Msg("Product payload validation failed unexpectedly")
		writeMessage(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	product, err := h.store.CreateProduct(models.Product{
		Name:             payload.Name,
		Slug:             payload.Slug,
		Description:      payload.Description,
		ShortDescription: payload.ShortDescription,
		Price:            payload.Price,
		CategoryID:       payload.CategoryID,
		Image:            payload.Image,
		Gallery:          payload.Gallery,
		Featured:         payload.Featured,
		IsNew:            payload.IsNew,
		InStock:          payload.InStock,
	})
	if err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			writeMessage(w, http.StatusConflict, "Product slug already in use")
			return
		}
		log.Error().Err(err).Str("slug", payload.Slug).Msg("Failed to create product")
		writeMessage(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

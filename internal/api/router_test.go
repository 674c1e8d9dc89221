package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldmapx/worldmapx-be/internal/api"
	"github.com/worldmapx/worldmapx-be/internal/models"
	"github.com/worldmapx/worldmapx-be/internal/store"
)

func newRouter(t *testing.T, st *store.Store) http.Handler {
	t.Helper()
	return api.NewRouter(st, st, st, st, "http://localhost:3000")
}

func seededRouter(t *testing.T) http.Handler {
	t.Helper()
	st := store.New()
	require.NoError(t, st.Seed())
	return newRouter(t, st)
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestGetCategories_ReturnsSeededListInDisplayOrder(t *testing.T) {
	router := seededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	categories := decodeList(t, rec)
	require.Len(t, categories, 6)
	assert.Equal(t, "maps", categories[0]["slug"])
	assert.Equal(t, "other", categories[5]["slug"])
}

func TestGetCategoryBySlug_UnknownReturns404WithMessage(t *testing.T) {
	router := seededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/categories/unknown-slug", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeObject(t, rec)
	assert.Equal(t, "Category not found", body["message"])
}

func TestPostCategory(t *testing.T) {
	t.Run("valid payload is created", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/categories", map[string]any{
			"name":        "Globes",
			"slug":        "globes",
			"description": "Terrestrial and celestial globes",
			"image":       "https://example.com/globes.jpg",
			"order":       7,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeObject(t, rec)
		assert.Equal(t, float64(7), created["id"])
		assert.Equal(t, "globes", created["slug"])
	})

	t.Run("missing fields are rejected with field errors", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/categories", map[string]any{
			"slug": "globes",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeObject(t, rec)
		assert.Equal(t, "Invalid category data", body["message"])
		assert.NotEmpty(t, body["errors"])
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/categories", map[string]any{
			"name":        "More Maps",
			"slug":        "maps",
			"description": "Duplicate of the seeded category",
			"image":       "https://example.com/maps.jpg",
			"order":       7,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

// twoProductRouter reproduces the minimal two-product catalog: prices 100
// and 200, category identifiers 1 and 2.
func twoProductRouter(t *testing.T) http.Handler {
	t.Helper()
	st := store.New()

	_, err := st.CreateCategory(models.Category{Name: "Maps", Slug: "maps", Description: "Maps", Order: 1})
	require.NoError(t, err)
	_, err = st.CreateCategory(models.Category{Name: "Prints", Slug: "prints", Description: "Prints", Order: 2})
	require.NoError(t, err)

	_, err = st.CreateProduct(models.Product{Name: "Atlas", Slug: "atlas", Price: "100", CategoryID: 1})
	require.NoError(t, err)
	_, err = st.CreateProduct(models.Product{Name: "Poster", Slug: "poster", Price: "200", CategoryID: 2})
	require.NoError(t, err)

	return newRouter(t, st)
}

func TestGetProducts_QueryFilters(t *testing.T) {
	t.Run("categoryId returns only matching products", func(t *testing.T) {
		router := twoProductRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/products?categoryId=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		products := decodeList(t, rec)
		require.Len(t, products, 1)
		assert.Equal(t, "100", products[0]["price"])
	})

	t.Run("limit returns the first in stored order", func(t *testing.T) {
		router := twoProductRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/products?limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		products := decodeList(t, rec)
		require.Len(t, products, 1)
		assert.Equal(t, "atlas", products[0]["slug"])
	})

	t.Run("featured flag is coerced from the query string", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/products?featured=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		for _, p := range decodeList(t, rec) {
			assert.Equal(t, true, p["featured"])
		}
	})

	t.Run("unknown category slug yields an empty list", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/products?categorySlug=nonexistent", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeList(t, rec))
	})

	t.Run("non-numeric limit is rejected", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodGet, "/api/products?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProductBySlug(t *testing.T) {
	router := seededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/products/1755-map-of-north-america", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	product := decodeObject(t, rec)
	assert.Equal(t, "1755 Map of North America", product["name"])

	rec = doRequest(t, router, http.MethodGet, "/api/products/unknown-slug", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeObject(t, rec)["message"])
}

func TestPostProduct_Valid(t *testing.T) {
	router := seededRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/products", map[string]any{
		"name":             "Medieval Portolan Chart",
		"slug":             "medieval-portolan-chart",
		"description":      "A navigational chart from the 14th century.",
		"shortDescription": "14th century navigational chart.",
		"price":            "4200",
		"categoryId":       1,
		"image":            "https://example.com/portolan.jpg",
		"gallery":          []string{"https://example.com/portolan-large.jpg"},
		"featured":         true,
		"inStock":          true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeObject(t, rec)
	assert.Equal(t, float64(9), created["id"])
	assert.NotEmpty(t, created["createdAt"])
}

func TestGetBlog_DefaultsToPublishedOnly(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Seed())

	// Add a draft; the default listing must not include it.
	_, err := st.CreateBlogPost(models.BlogPost{
		Title: "Unfinished Thoughts", Slug: "unfinished-thoughts",
		Excerpt: "Draft", Content: "## Draft", Image: "https://example.com/draft.jpg",
		ReadTime: 2, Published: false,
	})
	require.NoError(t, err)
	router := newRouter(t, st)

	rec := doRequest(t, router, http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeList(t, rec)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.Equal(t, true, p["published"])
	}

	rec = doRequest(t, router, http.MethodGet, "/api/blog?published=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts = decodeList(t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "unfinished-thoughts", posts[0]["slug"])
}

func TestGetBlog_Limit(t *testing.T) {
	router := seededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/blog?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 2)
}

func TestPostBlog(t *testing.T) {
	t.Run("missing title is rejected with an errors array", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/blog", map[string]any{
			"slug":     "untitled",
			"excerpt":  "An untitled piece",
			"content":  "## Untitled",
			"image":    "https://example.com/untitled.jpg",
			"readTime": 3,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeObject(t, rec)
		assert.Equal(t, "Invalid blog post data", body["message"])

		errs, ok := body["errors"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, errs)
		first, ok := errs[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "title", first["field"])
	})

	t.Run("valid payload gets equal timestamps", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/blog", map[string]any{
			"title":     "Restoring Antique Frames",
			"slug":      "restoring-antique-frames",
			"excerpt":   "Care and restoration of period frames.",
			"content":   "## Restoring Antique Frames\n\nPeriod frames deserve period care.",
			"image":     "https://example.com/frames.jpg",
			"readTime":  5,
			"published": true,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeObject(t, rec)
		assert.Equal(t, float64(4), created["id"])
		assert.Equal(t, created["createdAt"], created["updatedAt"])
	})
}

func TestUsers(t *testing.T) {
	t.Run("signup never returns the password", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{
			"username": "mercator",
			"password": "projection1569",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		assert.NotContains(t, rec.Body.String(), "projection1569")
		assert.False(t, strings.Contains(strings.ToLower(rec.Body.String()), "password"))

		created := decodeObject(t, rec)
		assert.Equal(t, float64(1), created["id"])
		assert.Equal(t, "mercator", created["username"])
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		st := store.New()
		_, err := st.CreateUser("mercator", "projection1569")
		require.NoError(t, err)
		router := newRouter(t, st)

		rec := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{
			"username": "mercator",
			"password": "otherpassword",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("lookup by id", func(t *testing.T) {
		st := store.New()
		created, err := st.CreateUser("mercator", "projection1569")
		require.NoError(t, err)
		router := newRouter(t, st)

		rec := doRequest(t, router, http.MethodGet, "/api/users/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.Username, decodeObject(t, rec)["username"])

		rec = doRequest(t, router, http.MethodGet, "/api/users/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/api/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		router := seededRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{
			"username": "mercator",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMalformedBodyReturns400(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

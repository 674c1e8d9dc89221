package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/worldmapx/worldmapx-be/internal/api/handlers"
	"github.com/worldmapx/worldmapx-be/internal/store"
	"github.com/worldmapx/worldmapx-be/internal/validation"
)

// NewRouter creates and configures a new Chi router for the storefront API.
func NewRouter(users store.UserProvider, categories store.CategoryProvider, products store.ProductProvider, blog store.BlogProvider, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	validate := validation.New()

	categoryHandler := handlers.NewCategoryHandler(categories, validate)
	productHandler := handlers.NewProductHandler(products, validate)
	blogHandler := handlers.NewBlogHandler(blog, validate)
	userHandler := handlers.NewUserHandler(users, validate)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.GetAll)
			r.Post("/", categoryHandler.Create)
			r.Get("/{slug}", categoryHandler.GetBySlug)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.GetAll)
			r.Post("/", productHandler.Create)
			r.Get("/{slug}", productHandler.GetBySlug)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blogHandler.GetAll)
			r.Post("/", blogHandler.Create)
			r.Get("/{slug}", blogHandler.GetBySlug)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Get("/{id}", userHandler.Get)
		})
	})

	return r
}

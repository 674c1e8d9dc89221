package models

// Category represents a product category in the storefront catalog.
// Order is the ascending sort key used when listing categories.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

package models

import "time"

// Product represents a single catalog item.
// Price is kept as a decimal string to avoid float rounding in JSON.
// CategoryID references Category.ID but is not enforced by the store.
type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Price            string    `json:"price"`
	CategoryID       int       `json:"categoryId"`
	Image            string    `json:"image"`
	Gallery          []string  `json:"gallery"`
	Featured         bool      `json:"featured"`
	IsNew            bool      `json:"isNew"`
	InStock          bool      `json:"inStock"`
	CreatedAt        time.Time `json:"createdAt"`
}

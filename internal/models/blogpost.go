package models

import "time"

// BlogPost represents a journal article. Content is markdown with heading
// markers; ReadTime is the estimated reading time in minutes.
type BlogPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	ReadTime  int       `json:"readTime"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package model

import "time"

// Article is a blog post managed through the admin panel.
// Content is stored as sanitized HTML.
type Article struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

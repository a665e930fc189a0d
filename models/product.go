package models

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   int       `json:"category_id"`
	Category     string    `json:"category,omitempty"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	CloudinaryID string    `json:"cloudinary_id,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package category

import "github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"

// Category is an inventory product category as served by the backend.
type Category struct {
	ID            shared.ID    `json:"id"`
	Name          string       `json:"name"`
	Code          *string      `json:"code,omitempty"`
	Description   *string      `json:"description,omitempty"`
	IsActive      shared.Flag  `json:"is_active"`
	ProductsCount shared.Count `json:"products_count"`
	CreatedAt     string       `json:"created_at,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
}

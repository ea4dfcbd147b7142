package unit

import "github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"

// Unit is an inventory unit of measure.
type Unit struct {
	ID            shared.ID    `json:"id"`
	Name          string       `json:"name"`
	Symbol        string       `json:"symbol"`
	Description   *string      `json:"description,omitempty"`
	IsActive      shared.Flag  `json:"is_active"`
	ProductsCount shared.Count `json:"products_count"`
	CreatedAt     string       `json:"created_at,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
}

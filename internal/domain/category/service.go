package category

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

// CategoryService wraps the /inventory/categories endpoints.
type CategoryService interface {
	List(ctx context.Context, filter CategoryFilter) (envelope.Result[Category], error)
	Show(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, req CreateCategoryRequest) (Category, error)
	Update(ctx context.Context, req UpdateCategoryRequest) (Category, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter CategoryFilter) (envelope.Statistics, error)
	ToggleStatus(ctx context.Context, id int64) (Category, error)
}

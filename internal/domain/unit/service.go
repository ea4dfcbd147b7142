package unit

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type UnitService interface {
	List(ctx context.Context, filter UnitFilter) (envelope.Result[Unit], error)
	Show(ctx context.Context, id int64) (Unit, error)
	Create(ctx context.Context, req CreateUnitRequest) (Unit, error)
	Update(ctx context.Context, req UpdateUnitRequest) (Unit, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter UnitFilter) (envelope.Statistics, error)
	ToggleStatus(ctx context.Context, id int64) (Unit, error)
}

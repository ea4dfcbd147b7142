package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) (envelope.Result[Employee], error)
	Show(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter EmployeeFilter) (envelope.Statistics, error)
	ToggleStatus(ctx context.Context, id int64) (Employee, error)
}

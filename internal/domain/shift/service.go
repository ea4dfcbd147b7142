package shift

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type ShiftService interface {
	List(ctx context.Context, filter ShiftFilter) (envelope.Result[Shift], error)
	Show(ctx context.Context, id int64) (Shift, error)
	Create(ctx context.Context, req CreateShiftRequest) (Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) (Shift, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter ShiftFilter) (envelope.Statistics, error)
	ToggleStatus(ctx context.Context, id int64) (Shift, error)

	// Assignments
	ListAssignments(ctx context.Context, shiftID int64, filter AssignmentFilter) (envelope.Result[Assignment], error)
	AssignEmployee(ctx context.Context, req AssignEmployeeRequest) (Assignment, error)
	EndAssignment(ctx context.Context, req EndAssignmentRequest) (Assignment, error)
}

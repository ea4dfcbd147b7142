package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type AttendanceService interface {
	List(ctx context.Context, filter AttendanceFilter) (envelope.Result[Record], error)
	Show(ctx context.Context, id int64) (Record, error)
	Create(ctx context.Context, req CreateAttendanceRequest) (Record, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (Record, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter AttendanceFilter) (envelope.Statistics, error)
}

package overtime

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type OvertimeService interface {
	List(ctx context.Context, filter OvertimeFilter) (envelope.Result[Record], error)
	Show(ctx context.Context, id int64) (Record, error)
	Create(ctx context.Context, req CreateOvertimeRequest) (Record, error)
	Update(ctx context.Context, req UpdateOvertimeRequest) (Record, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter OvertimeFilter) (envelope.Statistics, error)
	Approve(ctx context.Context, id int64) (Record, error)
	Reject(ctx context.Context, req shared.ReasonRequest) (Record, error)
	MarkPaid(ctx context.Context, id int64) (Record, error)
}

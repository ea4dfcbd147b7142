package loan

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

// LoanService wraps the /payroll/loans (salary advance) endpoints.
type LoanService interface {
	List(ctx context.Context, filter LoanFilter) (envelope.Result[Loan], error)
	Show(ctx context.Context, id int64) (Loan, error)
	Create(ctx context.Context, req CreateLoanRequest) (Loan, error)
	Update(ctx context.Context, req UpdateLoanRequest) (Loan, error)
	Delete(ctx context.Context, id int64) error
	// Statistics counts the records matching filter client-side.
	Statistics(ctx context.Context, filter LoanFilter) (envelope.Statistics, error)
	Approve(ctx context.Context, id int64) (Loan, error)
	Reject(ctx context.Context, req shared.ReasonRequest) (Loan, error)
	MarkPaid(ctx context.Context, id int64) (Loan, error)
}

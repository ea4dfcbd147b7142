package loan

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "loans",
	Path:           "/payroll/loans",
	SingularKey:    "loan",
	DefaultPerPage: loan.DefaultPerPage,
}

var (
	notFound = map[int]error{http.StatusNotFound: loan.ErrLoanNotFound}
	pending  = map[int]error{
		http.StatusNotFound: loan.ErrLoanNotFound,
		http.StatusConflict: loan.ErrLoanNotPending,
	}
)

type LoanServiceImpl struct {
	client   *resource.Client[loan.Loan]
	fallback statistics.Fallback
}

func NewLoanService(api *apiclient.Client, fallback statistics.Fallback) loan.LoanService {
	return &LoanServiceImpl{
		client:   resource.New[loan.Loan](api, Definition),
		fallback: fallback,
	}
}

func (s *LoanServiceImpl) List(ctx context.Context, filter loan.LoanFilter) (envelope.Result[loan.Loan], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[loan.Loan]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *LoanServiceImpl) Show(ctx context.Context, id int64) (loan.Loan, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *LoanServiceImpl) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.Loan, error) {
	if err := req.Validate(); err != nil {
		return loan.Loan{}, err
	}
	return s.client.Create(ctx, req.Payload())
}

func (s *LoanServiceImpl) Update(ctx context.Context, req loan.UpdateLoanRequest) (loan.Loan, error) {
	if err := req.Validate(); err != nil {
		return loan.Loan{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req.Payload())
	return item, resource.Translate(err, pending)
}

func (s *LoanServiceImpl) Delete(ctx context.Context, id int64) error {
	return resource.Translate(s.client.Delete(ctx, id), pending)
}

func (s *LoanServiceImpl) Statistics(ctx context.Context, filter loan.LoanFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.LoanCounters)
}

func (s *LoanServiceImpl) Approve(ctx context.Context, id int64) (loan.Loan, error) {
	item, err := s.client.Action(ctx, http.MethodPost, id, "approve", nil)
	return item, resource.Translate(err, pending)
}

func (s *LoanServiceImpl) Reject(ctx context.Context, req shared.ReasonRequest) (loan.Loan, error) {
	if err := req.Validate(); err != nil {
		return loan.Loan{}, err
	}
	item, err := s.client.Action(ctx, http.MethodPost, req.ID, "reject", req)
	return item, resource.Translate(err, pending)
}

func (s *LoanServiceImpl) MarkPaid(ctx context.Context, id int64) (loan.Loan, error) {
	item, err := s.client.Action(ctx, http.MethodPost, id, "mark-paid", nil)
	return item, resource.Translate(err, notFound)
}

package overtime

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "overtime",
	Path:           "/payroll/overtime",
	SingularKey:    "overtime",
	DefaultPerPage: overtime.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: overtime.ErrOvertimeNotFound}

type OvertimeServiceImpl struct {
	client   *resource.Client[overtime.Record]
	fallback statistics.Fallback
}

func NewOvertimeService(api *apiclient.Client, fallback statistics.Fallback) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		client:   resource.New[overtime.Record](api, Definition),
		fallback: fallback,
	}
}

func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.OvertimeFilter) (envelope.Result[overtime.Record], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[overtime.Record]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *OvertimeServiceImpl) Show(ctx context.Context, id int64) (overtime.Record, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.Record, error) {
	if err := req.Validate(); err != nil {
		return overtime.Record{}, err
	}
	return s.client.Create(ctx, req.Payload())
}

func (s *OvertimeServiceImpl) Update(ctx context.Context, req overtime.UpdateOvertimeRequest) (overtime.Record, error) {
	if err := req.Validate(); err != nil {
		return overtime.Record{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req.Payload())
	return item, resource.Translate(err, map[int]error{
		http.StatusNotFound: overtime.ErrOvertimeNotFound,
		http.StatusConflict: overtime.ErrOvertimeNotPending,
	})
}

func (s *OvertimeServiceImpl) Delete(ctx context.Context, id int64) error {
	return resource.Translate(s.client.Delete(ctx, id), map[int]error{
		http.StatusNotFound: overtime.ErrOvertimeNotFound,
		http.StatusConflict: overtime.ErrOvertimeNotPending,
	})
}

func (s *OvertimeServiceImpl) Statistics(ctx context.Context, filter overtime.OvertimeFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.OvertimeCounters)
}

func (s *OvertimeServiceImpl) Approve(ctx context.Context, id int64) (overtime.Record, error) {
	item, err := s.client.Action(ctx, http.MethodPost, id, "approve", nil)
	return item, resource.Translate(err, map[int]error{
		http.StatusNotFound: overtime.ErrOvertimeNotFound,
		http.StatusConflict: overtime.ErrOvertimeNotPending,
	})
}

func (s *OvertimeServiceImpl) Reject(ctx context.Context, req shared.ReasonRequest) (overtime.Record, error) {
	if err := req.Validate(); err != nil {
		return overtime.Record{}, err
	}
	item, err := s.client.Action(ctx, http.MethodPost, req.ID, "reject", req)
	return item, resource.Translate(err, map[int]error{
		http.StatusNotFound: overtime.ErrOvertimeNotFound,
		http.StatusConflict: overtime.ErrOvertimeNotPending,
	})
}

func (s *OvertimeServiceImpl) MarkPaid(ctx context.Context, id int64) (overtime.Record, error) {
	item, err := s.client.Action(ctx, http.MethodPost, id, "mark-paid", nil)
	return item, resource.Translate(err, map[int]error{
		http.StatusNotFound: overtime.ErrOvertimeNotFound,
		http.StatusConflict: overtime.ErrOvertimeNotApproved,
	})
}

package attendance

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "attendance",
	Path:           "/payroll/attendance",
	SingularKey:    "attendance",
	DefaultPerPage: attendance.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: attendance.ErrAttendanceNotFound}

type AttendanceServiceImpl struct {
	client   *resource.Client[attendance.Record]
	fallback statistics.Fallback
}

func NewAttendanceService(api *apiclient.Client, fallback statistics.Fallback) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		client:   resource.New[attendance.Record](api, Definition),
		fallback: fallback,
	}
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (envelope.Result[attendance.Record], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[attendance.Record]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *AttendanceServiceImpl) Show(ctx context.Context, id int64) (attendance.Record, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	item, err := s.client.Create(ctx, req)
	return item, resource.Translate(err, map[int]error{
		http.StatusConflict: attendance.ErrAttendanceAlreadyExists,
	})
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req)
	return item, resource.Translate(err, map[int]error{
		http.StatusNotFound: attendance.ErrAttendanceNotFound,
		http.StatusConflict: attendance.ErrAttendanceAlreadyExists,
	})
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return resource.Translate(s.client.Delete(ctx, id), notFound)
}

func (s *AttendanceServiceImpl) Statistics(ctx context.Context, filter attendance.AttendanceFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.AttendanceCounters)
}

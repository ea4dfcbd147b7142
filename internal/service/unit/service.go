package unit

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/unit"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "units",
	Path:           "/inventory/units",
	SingularKey:    "unit",
	DefaultPerPage: unit.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: unit.ErrUnitNotFound}

type UnitServiceImpl struct {
	client   *resource.Client[unit.Unit]
	fallback statistics.Fallback
}

func NewUnitService(api *apiclient.Client, fallback statistics.Fallback) unit.UnitService {
	return &UnitServiceImpl{
		client:   resource.New[unit.Unit](api, Definition),
		fallback: fallback,
	}
}

func (s *UnitServiceImpl) List(ctx context.Context, filter unit.UnitFilter) (envelope.Result[unit.Unit], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[unit.Unit]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *UnitServiceImpl) Show(ctx context.Context, id int64) (unit.Unit, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *UnitServiceImpl) Create(ctx context.Context, req unit.CreateUnitRequest) (unit.Unit, error) {
	if err := req.Validate(); err != nil {
		return unit.Unit{}, err
	}
	return s.client.Create(ctx, req)
}

func (s *UnitServiceImpl) Update(ctx context.Context, req unit.UpdateUnitRequest) (unit.Unit, error) {
	if err := req.Validate(); err != nil {
		return unit.Unit{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req)
	return item, resource.Translate(err, notFound)
}

func (s *UnitServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.client.Delete(ctx, id)
	return resource.Translate(err, map[int]error{
		http.StatusNotFound: unit.ErrUnitNotFound,
		http.StatusConflict: unit.ErrUnitInUse,
	})
}

func (s *UnitServiceImpl) Statistics(ctx context.Context, filter unit.UnitFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.UnitCounters)
}

func (s *UnitServiceImpl) ToggleStatus(ctx context.Context, id int64) (unit.Unit, error) {
	item, err := s.client.Action(ctx, http.MethodPatch, id, "toggle-status", nil)
	return item, resource.Translate(err, notFound)
}

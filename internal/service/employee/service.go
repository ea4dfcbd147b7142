package employee

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "employees",
	Path:           "/payroll/employees",
	SingularKey:    "employee",
	DefaultPerPage: employee.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: employee.ErrEmployeeNotFound}

// duplicate maps a conflict to the sentinel for the field the backend
// flagged. Conflicts that name no email are treated as a duplicate code.
func duplicate(err error) error {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		return nil
	}
	if _, ok := apiErr.Details["email"]; ok {
		return employee.ErrEmployeeEmailExists
	}
	if strings.Contains(strings.ToLower(apiErr.Message), "email") {
		return employee.ErrEmployeeEmailExists
	}
	return employee.ErrEmployeeCodeExists
}

func translateWrite(err error, byStatus map[int]error) error {
	if sentinel := duplicate(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return resource.Translate(err, byStatus)
}

type EmployeeServiceImpl struct {
	client   *resource.Client[employee.Employee]
	fallback statistics.Fallback
}

func NewEmployeeService(api *apiclient.Client, fallback statistics.Fallback) employee.EmployeeService {
	return &EmployeeServiceImpl{
		client:   resource.New[employee.Employee](api, Definition),
		fallback: fallback,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (envelope.Result[employee.Employee], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[employee.Employee]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *EmployeeServiceImpl) Show(ctx context.Context, id int64) (employee.Employee, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	item, err := s.client.Create(ctx, req.Payload())
	return item, translateWrite(err, nil)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req.Payload())
	return item, translateWrite(err, notFound)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return resource.Translate(s.client.Delete(ctx, id), notFound)
}

func (s *EmployeeServiceImpl) Statistics(ctx context.Context, filter employee.EmployeeFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.EmployeeCounters)
}

func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id int64) (employee.Employee, error) {
	item, err := s.client.Action(ctx, http.MethodPatch, id, "toggle-status", nil)
	return item, resource.Translate(err, notFound)
}

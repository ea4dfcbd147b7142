package shift

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shift"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "shifts",
	Path:           "/payroll/shifts",
	SingularKey:    "shift",
	DefaultPerPage: shift.DefaultPerPage,
}

var assignmentOptions = envelope.Options{
	ResourceKey:    "assignments",
	SingularKey:    "assignment",
	DefaultPerPage: shift.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: shift.ErrShiftNotFound}

type ShiftServiceImpl struct {
	api      *apiclient.Client
	client   *resource.Client[shift.Shift]
	fallback statistics.Fallback
}

func NewShiftService(api *apiclient.Client, fallback statistics.Fallback) shift.ShiftService {
	return &ShiftServiceImpl{
		api:      api,
		client:   resource.New[shift.Shift](api, Definition),
		fallback: fallback,
	}
}

func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ShiftFilter) (envelope.Result[shift.Shift], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[shift.Shift]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *ShiftServiceImpl) Show(ctx context.Context, id int64) (shift.Shift, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}
	return s.client.Create(ctx, req.Payload())
}

func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req.Payload())
	return item, resource.Translate(err, notFound)
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id int64) error {
	return resource.Translate(s.client.Delete(ctx, id), notFound)
}

func (s *ShiftServiceImpl) Statistics(ctx context.Context, filter shift.ShiftFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.ShiftCounters)
}

func (s *ShiftServiceImpl) ToggleStatus(ctx context.Context, id int64) (shift.Shift, error) {
	item, err := s.client.Action(ctx, http.MethodPatch, id, "toggle-status", nil)
	return item, resource.Translate(err, notFound)
}

// ==================== ASSIGNMENTS ====================

func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, shiftID int64, filter shift.AssignmentFilter) (envelope.Result[shift.Assignment], error) {
	if shiftID <= 0 {
		return envelope.Result[shift.Assignment]{}, shift.ErrShiftNotFound
	}
	if err := filter.Validate(); err != nil {
		return envelope.Result[shift.Assignment]{}, err
	}

	path := Definition.ActionPath(shiftID, "assignments")
	result, err := resource.List[shift.Assignment](ctx, s.api, path, filter.Params(), filter.Request(), assignmentOptions)
	if err != nil {
		return result, resource.Translate(err, notFound)
	}

	for i := range result.Items {
		resolveAssignment(&result.Items[i])
	}
	return result, nil
}

func (s *ShiftServiceImpl) AssignEmployee(ctx context.Context, req shift.AssignEmployeeRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	path := Definition.ActionPath(req.ShiftID, "assign")
	item, err := resource.Send[shift.Assignment](ctx, s.api, http.MethodPost, path, req, assignmentOptions)
	if err != nil {
		return item, resource.Translate(err, map[int]error{
			http.StatusNotFound: shift.ErrShiftNotFound,
			http.StatusConflict: shift.ErrEmployeeAlreadyAssigned,
		})
	}
	resolveAssignment(&item)
	return item, nil
}

func (s *ShiftServiceImpl) EndAssignment(ctx context.Context, req shift.EndAssignmentRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	path := fmt.Sprintf("%s/assignments/%d/end", Definition.ItemPath(req.ShiftID), req.AssignmentID)
	item, err := resource.Send[shift.Assignment](ctx, s.api, http.MethodPost, path, req, assignmentOptions)
	if err != nil {
		return item, resource.Translate(err, map[int]error{
			http.StatusNotFound: shift.ErrAssignmentNotFound,
			http.StatusConflict: shift.ErrAssignmentAlreadyEnded,
		})
	}
	resolveAssignment(&item)
	return item, nil
}

func resolveAssignment(a *shift.Assignment) {
	if a.Resolve() {
		status := ""
		if a.Status != nil {
			status = *a.Status
		}
		slog.Warn("Shift assignment state fields disagree",
			"assignment_id", a.ID,
			"shift_id", a.ShiftID,
			"status", status,
			"is_active", bool(*a.IsActive),
		)
	}
}

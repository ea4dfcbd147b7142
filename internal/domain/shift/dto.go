package shift

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 15

var SortFields = []string{"name", "start_time", "employees_count", "created_at"}

type ShiftFilter struct {
	shared.ListFilter
	IsActive *bool `json:"is_active,omitempty"`
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	return errs.Err()
}

func (f ShiftFilter) Params() apiclient.Params {
	return f.ListFilter.Params().Set("is_active", f.IsActive)
}

// ShiftInput is the shift form.
type ShiftInput struct {
	Name         string             `json:"name" validate:"required,max=100"`
	StartTime    string             `json:"start_time" validate:"required"`
	EndTime      string             `json:"end_time" validate:"required"`
	BreakMinutes shared.NumberInput `json:"break_minutes"`
	Description  *string            `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive     *bool              `json:"is_active,omitempty"`
}

func (r *ShiftInput) validate(errs *validator.ValidationErrors) {
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if validator.IsEmpty(r.StartTime) {
		errs.Add("start_time", "start_time is required")
	} else {
		shared.ValidateClock("start_time", &r.StartTime, errs)
	}
	if validator.IsEmpty(r.EndTime) {
		errs.Add("end_time", "end_time is required")
	} else {
		shared.ValidateClock("end_time", &r.EndTime, errs)
	}

	if !r.BreakMinutes.IsEmpty() {
		if minutes, err := validator.ParseMinutes(string(r.BreakMinutes)); err != nil {
			errs.Add("break_minutes", "break_minutes must be a number of minutes")
		} else if minutes < 0 {
			errs.Add("break_minutes", "break_minutes must not be negative")
		}
	}

	validator.StructInto(r, errs)
}

// Payload is the body sent upstream.
func (r ShiftInput) Payload() ShiftPayload {
	breakMinutes, _ := validator.ParseMinutes(string(r.BreakMinutes))
	return ShiftPayload{
		Name:         r.Name,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		BreakMinutes: breakMinutes,
		Description:  r.Description,
		IsActive:     r.IsActive,
	}
}

type ShiftPayload struct {
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type CreateShiftRequest struct {
	ShiftInput
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	r.ShiftInput.validate(&errs)
	return errs.Err()
}

type UpdateShiftRequest struct {
	ID int64 `json:"-"`
	ShiftInput
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.ShiftInput.validate(&errs)
	return errs.Err()
}

type AssignmentFilter struct {
	shared.ListFilter
	Status *string `json:"status,omitempty"`
}

var AssignmentSortFields = []string{"start_date", "employee_name", "created_at"}

func (f *AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, AssignmentSortFields, &errs)
	shared.ValidateOneOf("status", f.Status, []string{AssignmentActive, AssignmentEnded, AssignmentInactive}, &errs)
	return errs.Err()
}

func (f AssignmentFilter) Params() apiclient.Params {
	return f.ListFilter.Params().Set("status", f.Status)
}

type AssignEmployeeRequest struct {
	ShiftID    int64   `json:"-"`
	EmployeeID int64   `json:"employee_id" validate:"required,gt=0"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *AssignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftID <= 0 {
		errs.Add("shift_id", "shift_id is required")
	}
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else {
		shared.ValidateDate("start_date", &r.StartDate, &errs)
	}
	shared.ValidateDate("end_date", r.EndDate, &errs)
	if r.EndDate != nil && *r.EndDate != "" {
		start, okStart := validator.IsValidDate(r.StartDate)
		end, okEnd := validator.IsValidDate(*r.EndDate)
		if okStart && okEnd && end.Before(start) {
			errs.Add("end_date", "end_date must not be before start_date")
		}
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}

type EndAssignmentRequest struct {
	ShiftID      int64   `json:"-"`
	AssignmentID int64   `json:"-"`
	EndDate      *string `json:"end_date,omitempty"`
}

func (r *EndAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftID <= 0 {
		errs.Add("shift_id", "shift_id is required")
	}
	if r.AssignmentID <= 0 {
		errs.Add("assignment_id", "assignment_id is required")
	}
	shared.ValidateDate("end_date", r.EndDate, &errs)

	return errs.Err()
}

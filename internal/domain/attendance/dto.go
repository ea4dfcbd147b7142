package attendance

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 20

var SortFields = []string{"date", "employee_name", "check_in", "status", "created_at"}

type AttendanceFilter struct {
	shared.ListFilter
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	DateFrom   *string `json:"date_from,omitempty"`
	DateTo     *string `json:"date_to,omitempty"`
	Month      *string `json:"month,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	shared.ValidateOneOf("status", f.Status, Statuses, &errs)
	shared.ValidateDateRange(f.DateFrom, f.DateTo, &errs)
	shared.ValidateMonth("month", f.Month, &errs)
	return errs.Err()
}

func (f AttendanceFilter) Params() apiclient.Params {
	return f.ListFilter.Params().
		Set("employee_id", f.EmployeeID).
		Set("status", f.Status).
		Set("date_from", f.DateFrom).
		Set("date_to", f.DateTo).
		Set("month", f.Month)
}

// AttendanceInput is the manual attendance form.
type AttendanceInput struct {
	EmployeeID int64   `json:"employee_id" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (r *AttendanceInput) validate(errs *validator.ValidationErrors) {
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else {
		shared.ValidateDate("date", &r.Date, errs)
	}

	shared.ValidateClock("check_in", r.CheckIn, errs)
	shared.ValidateClock("check_out", r.CheckOut, errs)
	if r.CheckIn != nil && r.CheckOut != nil && validator.IsValidClock(*r.CheckIn) && validator.IsValidClock(*r.CheckOut) {
		if shared.ClockMinutes(*r.CheckOut) < shared.ClockMinutes(*r.CheckIn) {
			errs.Add("check_out", "check_out must be after check_in")
		}
	}

	shared.ValidateOneOf("status", r.Status, Statuses, errs)

	validator.StructInto(r, errs)
}

type CreateAttendanceRequest struct {
	AttendanceInput
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	r.AttendanceInput.validate(&errs)
	return errs.Err()
}

type UpdateAttendanceRequest struct {
	ID int64 `json:"-"`
	AttendanceInput
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.AttendanceInput.validate(&errs)
	return errs.Err()
}

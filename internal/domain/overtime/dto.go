package overtime

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 15

// MaxDurationMinutes caps a single claim at one day.
const MaxDurationMinutes = 24 * 60

var SortFields = []string{"date", "employee_name", "duration_minutes", "amount", "status", "created_at"}

type OvertimeFilter struct {
	shared.ListFilter
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	DateFrom   *string `json:"date_from,omitempty"`
	DateTo     *string `json:"date_to,omitempty"`
	Month      *string `json:"month,omitempty"`
}

func (f *OvertimeFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	shared.ValidateOneOf("status", f.Status, Statuses, &errs)
	shared.ValidateDateRange(f.DateFrom, f.DateTo, &errs)
	shared.ValidateMonth("month", f.Month, &errs)
	return errs.Err()
}

func (f OvertimeFilter) Params() apiclient.Params {
	return f.ListFilter.Params().
		Set("employee_id", f.EmployeeID).
		Set("status", f.Status).
		Set("date_from", f.DateFrom).
		Set("date_to", f.DateTo).
		Set("month", f.Month)
}

// OvertimeInput is the overtime claim form. Duration is optional when both
// clock times are given; it is then derived from them.
type OvertimeInput struct {
	EmployeeID int64              `json:"employee_id" validate:"required,gt=0"`
	Date       string             `json:"date" validate:"required"`
	StartTime  *string            `json:"start_time,omitempty"`
	EndTime    *string            `json:"end_time,omitempty"`
	Duration   shared.NumberInput `json:"duration_minutes"`
	Reason     *string            `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (r *OvertimeInput) validate(errs *validator.ValidationErrors) {
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else {
		shared.ValidateDate("date", &r.Date, errs)
	}

	shared.ValidateClock("start_time", r.StartTime, errs)
	shared.ValidateClock("end_time", r.EndTime, errs)

	if r.Duration.IsEmpty() {
		if !r.hasClockRange() {
			errs.Add("duration_minutes", "duration_minutes is required when start_time and end_time are not given")
		}
	} else if minutes, err := validator.ParseMinutes(string(r.Duration)); err != nil {
		errs.Add("duration_minutes", "duration_minutes must be a number of minutes")
	} else if minutes <= 0 || minutes > MaxDurationMinutes {
		errs.Add("duration_minutes", "duration_minutes must be between 1 and 1440")
	}

	validator.StructInto(r, errs)
}

func (r OvertimeInput) hasClockRange() bool {
	return r.StartTime != nil && r.EndTime != nil &&
		validator.IsValidClock(*r.StartTime) && validator.IsValidClock(*r.EndTime)
}

// DurationMinutes returns the typed duration, or the span between the clock
// times. An end time before the start time crosses midnight.
func (r OvertimeInput) DurationMinutes() int {
	if !r.Duration.IsEmpty() {
		minutes, _ := validator.ParseMinutes(string(r.Duration))
		return minutes
	}
	if !r.hasClockRange() {
		return 0
	}
	span := shared.ClockMinutes(*r.EndTime) - shared.ClockMinutes(*r.StartTime)
	if span <= 0 {
		span += MaxDurationMinutes
	}
	return span
}

// Payload is the body sent upstream.
func (r OvertimeInput) Payload() OvertimePayload {
	return OvertimePayload{
		EmployeeID:      r.EmployeeID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes(),
		Reason:          r.Reason,
	}
}

type OvertimePayload struct {
	EmployeeID      int64   `json:"employee_id"`
	Date            string  `json:"date"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Reason          *string `json:"reason,omitempty"`
}

type CreateOvertimeRequest struct {
	OvertimeInput
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors
	r.OvertimeInput.validate(&errs)
	return errs.Err()
}

type UpdateOvertimeRequest struct {
	ID int64 `json:"-"`
	OvertimeInput
}

func (r *UpdateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.OvertimeInput.validate(&errs)
	return errs.Err()
}

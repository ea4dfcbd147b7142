package shift

import "github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"

// Shift is a payroll work shift.
type Shift struct {
	ID             shared.ID    `json:"id"`
	Name           string       `json:"name"`
	StartTime      string       `json:"start_time"`
	EndTime        string       `json:"end_time"`
	BreakMinutes   shared.Count `json:"break_minutes"`
	Description    *string      `json:"description,omitempty"`
	IsActive       shared.Flag  `json:"is_active"`
	EmployeesCount shared.Count `json:"employees_count"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

const (
	AssignmentActive   = "active"
	AssignmentEnded    = "ended"
	AssignmentInactive = "inactive"
)

// Assignment links an employee to a shift for a date range.
//
// The backend reports the state twice, through IsActive and Status, and the
// two are not always kept in sync. Ended and StatusConflict are filled by
// Resolve.
type Assignment struct {
	ID           shared.ID    `json:"id"`
	ShiftID      shared.ID    `json:"shift_id"`
	ShiftName    *string      `json:"shift_name,omitempty"`
	EmployeeID   shared.ID    `json:"employee_id"`
	EmployeeName *string      `json:"employee_name,omitempty"`
	StartDate    string       `json:"start_date"`
	EndDate      *string      `json:"end_date,omitempty"`
	Status       *string      `json:"status,omitempty"`
	IsActive     *shared.Flag `json:"is_active,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty"`
	UpdatedAt    string       `json:"updated_at,omitempty"`

	Ended          bool `json:"ended"`
	StatusConflict bool `json:"status_conflict"`
}

// Resolve derives Ended from both state fields. An assignment is ended when
// either field says so. When the fields disagree StatusConflict is set and
// Resolve returns true so the caller can report it.
func (a *Assignment) Resolve() (conflict bool) {
	flagEnded, flagKnown := false, a.IsActive != nil
	if flagKnown {
		flagEnded = !bool(*a.IsActive)
	}

	statusEnded, statusKnown := false, false
	if a.Status != nil && *a.Status != "" {
		statusKnown = true
		statusEnded = *a.Status == AssignmentEnded || *a.Status == AssignmentInactive
	}

	a.Ended = flagEnded || statusEnded
	a.StatusConflict = flagKnown && statusKnown && flagEnded != statusEnded
	return a.StatusConflict
}

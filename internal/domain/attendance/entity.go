package attendance

import "github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

var Statuses = []string{StatusPresent, StatusLate, StatusAbsent, StatusLeave}

// Record is one employee-day. Status, WorkMinutes and LateMinutes are
// derived upstream from the clock times.
type Record struct {
	ID             shared.ID    `json:"id"`
	EmployeeID     shared.ID    `json:"employee_id"`
	EmployeeName   *string      `json:"employee_name,omitempty"`
	DepartmentName *string      `json:"department_name,omitempty"`
	Date           string       `json:"date"`
	CheckIn        *string      `json:"check_in,omitempty"`
	CheckOut       *string      `json:"check_out,omitempty"`
	Status         string       `json:"status"`
	WorkMinutes    shared.Count `json:"work_minutes"`
	LateMinutes    shared.Count `json:"late_minutes"`
	Notes          *string      `json:"notes,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

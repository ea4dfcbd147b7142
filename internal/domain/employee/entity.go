package employee

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

// Employee is a payroll employee. BaseSalary is display data; salary
// computation happens upstream.
type Employee struct {
	ID             shared.ID       `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	Name           string          `json:"name"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	DepartmentID   *shared.ID      `json:"department_id,omitempty"`
	DepartmentName *string         `json:"department_name,omitempty"`
	Position       *string         `json:"position,omitempty"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	JoinDate       *string         `json:"join_date,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at,omitempty"`
	UpdatedAt      string          `json:"updated_at,omitempty"`
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

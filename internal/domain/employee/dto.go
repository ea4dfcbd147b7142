package employee

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 20

var SortFields = []string{"name", "employee_code", "join_date", "base_salary", "created_at"}

type EmployeeFilter struct {
	shared.ListFilter
	Status       *string `json:"status,omitempty"`
	DepartmentID *int64  `json:"department_id,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	shared.ValidateOneOf("status", f.Status, Statuses, &errs)
	if f.DepartmentID != nil && *f.DepartmentID <= 0 {
		errs.Add("department_id", "department_id must be a positive number")
	}
	return errs.Err()
}

func (f EmployeeFilter) Params() apiclient.Params {
	return f.ListFilter.Params().
		Set("status", f.Status).
		Set("department_id", f.DepartmentID)
}

// EmployeeInput is the employee form.
type EmployeeInput struct {
	EmployeeCode string             `json:"employee_code" validate:"required,max=50"`
	Name         string             `json:"name" validate:"required,max=150"`
	Email        *string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string            `json:"phone,omitempty" validate:"omitempty,max=30"`
	DepartmentID *int64             `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Position     *string            `json:"position,omitempty" validate:"omitempty,max=100"`
	BaseSalary   shared.NumberInput `json:"base_salary"`
	JoinDate     *string            `json:"join_date,omitempty"`
	Status       *string            `json:"status,omitempty"`
}

func (r *EmployeeInput) validate(errs *validator.ValidationErrors) {
	if validator.IsEmpty(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if r.BaseSalary.IsEmpty() {
		errs.Add("base_salary", "base_salary is required")
	} else if amount, err := validator.ParseAmount(string(r.BaseSalary)); err != nil {
		errs.Add("base_salary", "base_salary must be a number")
	} else if amount.IsNegative() {
		errs.Add("base_salary", "base_salary must not be negative")
	}

	shared.ValidateDate("join_date", r.JoinDate, errs)
	shared.ValidateOneOf("status", r.Status, Statuses, errs)

	validator.StructInto(r, errs)
}

// Payload is the body sent upstream, with the salary parsed.
func (r EmployeeInput) Payload() EmployeePayload {
	salary, _ := validator.ParseAmount(string(r.BaseSalary))
	return EmployeePayload{
		EmployeeCode: r.EmployeeCode,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		DepartmentID: r.DepartmentID,
		Position:     r.Position,
		BaseSalary:   shared.NewMoney(salary),
		JoinDate:     r.JoinDate,
		Status:       r.Status,
	}
}

type EmployeePayload struct {
	EmployeeCode string       `json:"employee_code"`
	Name         string       `json:"name"`
	Email        *string      `json:"email,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	DepartmentID *int64       `json:"department_id,omitempty"`
	Position     *string      `json:"position,omitempty"`
	BaseSalary   shared.Money `json:"base_salary"`
	JoinDate     *string      `json:"join_date,omitempty"`
	Status       *string      `json:"status,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeInput
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	r.EmployeeInput.validate(&errs)
	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID int64 `json:"-"`
	EmployeeInput
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.EmployeeInput.validate(&errs)
	return errs.Err()
}

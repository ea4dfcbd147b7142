package loan

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const (
	DefaultPerPage  = 15
	MaxInstallments = 24
)

var SortFields = []string{"request_date", "employee_name", "amount", "status", "created_at"}

type LoanFilter struct {
	shared.ListFilter
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	DateFrom   *string `json:"date_from,omitempty"`
	DateTo     *string `json:"date_to,omitempty"`
}

func (f *LoanFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	shared.ValidateOneOf("status", f.Status, Statuses, &errs)
	shared.ValidateDateRange(f.DateFrom, f.DateTo, &errs)
	return errs.Err()
}

func (f LoanFilter) Params() apiclient.Params {
	return f.ListFilter.Params().
		Set("employee_id", f.EmployeeID).
		Set("status", f.Status).
		Set("date_from", f.DateFrom).
		Set("date_to", f.DateTo)
}

// LoanInput is the salary advance form.
type LoanInput struct {
	EmployeeID   int64              `json:"employee_id" validate:"required,gt=0"`
	Amount       shared.NumberInput `json:"amount"`
	Installments shared.NumberInput `json:"installments"`
	Reason       *string            `json:"reason,omitempty" validate:"omitempty,max=500"`
	RequestDate  *string            `json:"request_date,omitempty"`
}

func (r *LoanInput) validate(errs *validator.ValidationErrors) {
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	if r.Amount.IsEmpty() {
		errs.Add("amount", "amount is required")
	} else if amount, err := validator.ParseAmount(string(r.Amount)); err != nil {
		errs.Add("amount", "amount must be a number")
	} else if !amount.IsPositive() {
		errs.Add("amount", "amount must be greater than 0")
	}

	if r.Installments.IsEmpty() {
		errs.Add("installments", "installments is required")
	} else if n, err := validator.ParseCount(string(r.Installments)); err != nil {
		errs.Add("installments", "installments must be a whole number")
	} else if n < 1 || n > MaxInstallments {
		errs.Add("installments", "installments must be between 1 and 24")
	}

	shared.ValidateDate("request_date", r.RequestDate, errs)

	validator.StructInto(r, errs)
}

// Payload is the body sent upstream.
func (r LoanInput) Payload() LoanPayload {
	amount, _ := validator.ParseAmount(string(r.Amount))
	installments, _ := validator.ParseCount(string(r.Installments))
	return LoanPayload{
		EmployeeID:   r.EmployeeID,
		Amount:       shared.NewMoney(amount),
		Installments: installments,
		Reason:       r.Reason,
		RequestDate:  r.RequestDate,
	}
}

type LoanPayload struct {
	EmployeeID   int64        `json:"employee_id"`
	Amount       shared.Money `json:"amount"`
	Installments int          `json:"installments"`
	Reason       *string      `json:"reason,omitempty"`
	RequestDate  *string      `json:"request_date,omitempty"`
}

type CreateLoanRequest struct {
	LoanInput
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors
	r.LoanInput.validate(&errs)
	return errs.Err()
}

type UpdateLoanRequest struct {
	ID int64 `json:"-"`
	LoanInput
}

func (r *UpdateLoanRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.LoanInput.validate(&errs)
	return errs.Err()
}

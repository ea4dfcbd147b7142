package loan

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusPaid     = "paid"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusPaid}

// Loan is a salary advance. Installment amounts and the remaining balance
// are computed upstream.
type Loan struct {
	ID                shared.ID        `json:"id"`
	EmployeeID        shared.ID        `json:"employee_id"`
	EmployeeName      *string          `json:"employee_name,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	Installments      shared.Count     `json:"installments"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
	RemainingBalance  *decimal.Decimal `json:"remaining_balance,omitempty"`
	Reason            *string          `json:"reason,omitempty"`
	RequestDate       string           `json:"request_date"`
	Status            string           `json:"status"`
	RejectionReason   *string          `json:"rejection_reason,omitempty"`
	CreatedAt         string           `json:"created_at,omitempty"`
	UpdatedAt         string           `json:"updated_at,omitempty"`
}

package overtime

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

// Record is an overtime claim. Multiplier and Amount are computed upstream.
type Record struct {
	ID              shared.ID        `json:"id"`
	EmployeeID      shared.ID        `json:"employee_id"`
	EmployeeName    *string          `json:"employee_name,omitempty"`
	Date            string           `json:"date"`
	StartTime       *string          `json:"start_time,omitempty"`
	EndTime         *string          `json:"end_time,omitempty"`
	DurationMinutes shared.Count     `json:"duration_minutes"`
	Multiplier      *decimal.Decimal `json:"multiplier,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	Reason          *string          `json:"reason,omitempty"`
	Status          string           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

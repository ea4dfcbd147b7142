package employee

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	email := "not-an-email"
	joined := "2024-13-01"
	status := "fired"
	req := CreateEmployeeRequest{EmployeeInput: EmployeeInput{
		Name:       "Dewi",
		Email:      &email,
		BaseSalary: "4,500,000",
		JoinDate:   &joined,
		Status:     &status,
	}}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := errs.ToMap()
	assert.Equal(t, "employee_code is required", fields["employee_code"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "join_date must be in YYYY-MM-DD format", fields["join_date"])
	assert.Equal(t, "status must be one of: active, inactive", fields["status"])
	assert.NotContains(t, fields, "base_salary")
}

func TestEmployeeInput_Payload(t *testing.T) {
	in := EmployeeInput{EmployeeCode: "EMP-001", Name: "Dewi", BaseSalary: "4,500,000"}
	require.NoError(t, (&CreateEmployeeRequest{EmployeeInput: in}).Validate())
	assert.Equal(t, "4500000", in.Payload().BaseSalary.String())
}

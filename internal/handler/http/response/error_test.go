package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        validator.ValidationErrors{{Field: "name", Message: "name is required"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "Validation failed",
		},
		{
			name:       "domain not found keeps upstream message",
			err:        fmt.Errorf("%w: %w", loan.ErrLoanNotFound, &apiclient.Error{StatusCode: 404, Message: "Loan #4 not found"}),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Loan #4 not found",
		},
		{
			name:       "domain conflict without message",
			err:        fmt.Errorf("%w: %w", loan.ErrLoanNotPending, &apiclient.Error{StatusCode: 409}),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantMsg:    "Salary advance already processed",
		},
		{
			name:       "upstream forbidden",
			err:        &apiclient.Error{StatusCode: 403, Message: "Not allowed"},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
			wantMsg:    "Not allowed",
		},
		{
			name:       "upstream server error",
			err:        &apiclient.Error{StatusCode: 500},
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
			wantMsg:    apiclient.GenericMessage,
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("GET /payroll/loans: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "UPSTREAM_TIMEOUT",
			wantMsg:    "The server took too long to respond. Please try again.",
		},
		{
			name:       "unknown",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestHandleError_UpstreamValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &apiclient.Error{
		StatusCode: 422,
		Message:    "The code has already been taken.",
		Details:    map[string]string{"code": "The code has already been taken."},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "The code has already been taken.", resp.Error.Message)
	assert.Equal(t, map[string]string{"code": "The code has already been taken."}, resp.Error.Details)
}

func TestHandleError_CancelledWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, context.Canceled)
	assert.Empty(t, rec.Body.String())
}

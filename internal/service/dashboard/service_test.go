package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	attendanceservice "github.com/cmlabs-hris/hris-mobile-go/internal/service/attendance"
	employeeservice "github.com/cmlabs-hris/hris-mobile-go/internal/service/employee"
	loanservice "github.com/cmlabs-hris/hris-mobile-go/internal/service/loan"
	overtimeservice "github.com/cmlabs-hris/hris-mobile-go/internal/service/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(t *testing.T, mux *http.ServeMux) dashboard.DashboardService {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := apiclient.New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, nil)
	fb := statistics.NewFallback(500, nil)
	return NewDashboardService(
		employeeservice.NewEmployeeService(api, fb),
		attendanceservice.NewAttendanceService(api, fb),
		overtimeservice.NewOvertimeService(api, fb),
		loanservice.NewLoanService(api, fb),
	)
}

func TestGetOverview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/payroll/employees", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1,"status":"active"}],"meta":{"total":12},"statistics":{"total":12,"active":10,"inactive":2}}`))
	})
	mux.HandleFunc("/payroll/attendance", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-06", r.URL.Query().Get("month"))
		if r.URL.Query().Get("per_page") == "500" {
			// Fallback request: the whole month.
			_, _ = w.Write([]byte(`{"data":[
				{"id":1,"status":"present"},{"id":2,"status":"present"},
				{"id":3,"status":"late"},{"id":4,"status":"absent"}
			]}`))
			return
		}
		assert.Equal(t, "desc", r.URL.Query().Get("sort_order"))
		_, _ = w.Write([]byte(`{"data":{"data":[{"id":4,"date":"2024-06-28","status":"absent"}],"total":4}}`))
	})
	mux.HandleFunc("/payroll/overtime", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"overtime":[],"statistics":{"total":3,"pending":1,"approved":2}}}`))
	})
	mux.HandleFunc("/payroll/loans", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("date_from"))
		assert.Equal(t, "2024-06-30", r.URL.Query().Get("date_to"))
		_, _ = w.Write([]byte(`{"data":[],"statistics":{"total":0}}`))
	})

	svc := newDashboard(t, mux)
	got, err := svc.GetOverview(context.Background(), "2024-06")
	require.NoError(t, err)

	assert.Equal(t, "2024-06", got.Month)

	assert.Equal(t, "server", got.Employees.Source)
	assert.EqualValues(t, 10, got.Employees.Statistics["active"])

	assert.Equal(t, "fallback", got.Attendance.Source)
	assert.Equal(t, 4, got.Attendance.Statistics["total"])
	assert.Equal(t, 2, got.Attendance.Statistics["present"])
	assert.InDelta(t, 50.0, got.Attendance.PresentPercent, 0.001)
	assert.InDelta(t, 25.0, got.Attendance.LatePercent, 0.001)
	require.Len(t, got.RecentAttendance, 1)
	assert.EqualValues(t, 4, got.RecentAttendance[0].ID)

	assert.Equal(t, "server", got.Overtime.Source)
	assert.EqualValues(t, 2, got.Overtime.Statistics["approved"])

	assert.Equal(t, "server", got.Loans.Source)
}

func TestGetOverview_UpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	ok := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"statistics":{"total":0}}`))
	}
	mux.HandleFunc("/payroll/employees", ok)
	mux.HandleFunc("/payroll/attendance", ok)
	mux.HandleFunc("/payroll/overtime", ok)
	mux.HandleFunc("/payroll/loans", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Forbidden"}`))
	})

	svc := newDashboard(t, mux)
	got, err := svc.GetOverview(context.Background(), "2024-06")
	assert.Nil(t, got)
	assert.Equal(t, http.StatusForbidden, apiclient.StatusCode(err))
}

func TestGetOverview_InvalidMonth(t *testing.T) {
	svc := newDashboard(t, http.NewServeMux())
	_, err := svc.GetOverview(context.Background(), "June")
	assert.ErrorIs(t, err, dashboard.ErrInvalidMonth)
}

func TestAttendanceCard_AcceptsServerNumbers(t *testing.T) {
	c := attendanceCard(dashboard.StatCard{Statistics: map[string]any{
		"present": float64(3),
		"late":    "1",
	}})
	assert.InDelta(t, 75.0, c.PresentPercent, 0.001)
	assert.InDelta(t, 25.0, c.LatePercent, 0.001)
	assert.Zero(t, c.AbsentPercent)
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.HandlerFunc) employee.EmployeeService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := apiclient.New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil, nil)
	return NewEmployeeService(api, statistics.NewFallback(50, nil))
}

func TestEmployeeService_List_DefaultsToTwentyPerPage(t *testing.T) {
	var query map[string][]string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"employees":[{"id":1,"employee_code":"E-001","name":"Rina","base_salary":"4500000","status":"active"}]}`))
	})

	dept := int64(3)
	result, err := svc.List(context.Background(), employee.EmployeeFilter{
		Status:       shared.StringPtr("active"),
		DepartmentID: &dept,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "4500000", result.Items[0].BaseSalary.String())
	assert.Equal(t, 20, result.Pagination.PerPage)
	assert.Equal(t, 1, result.Pagination.Total)

	assert.Equal(t, []string{"20"}, query["per_page"])
	assert.Equal(t, []string{"active"}, query["status"])
	assert.Equal(t, []string{"3"}, query["department_id"])
}

func TestEmployeeService_Create_SendsParsedSalary(t *testing.T) {
	var sent map[string]any
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &sent))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created","data":{"employee":{"id":12,"employee_code":"E-012","name":"Budi"}}}`))
	})

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeInput: employee.EmployeeInput{
			EmployeeCode: "E-012",
			Name:         "Budi",
			BaseSalary:   "5,250,000",
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 12, created.ID)
	assert.Equal(t, float64(5250000), sent["base_salary"])
	assert.Equal(t, "E-012", sent["employee_code"])
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"The employee code has already been taken."}`))
	})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeInput: employee.EmployeeInput{EmployeeCode: "E-001", Name: "Rina", BaseSalary: "100"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, employee.ErrEmployeeCodeExists))
	assert.Equal(t, "The employee code has already been taken.", apiclient.UserMessage(err))
}

func TestEmployeeService_Conflict_EmailTaken(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"field details", `{"message":"The given data was invalid.","errors":{"email":["The email has already been taken."]}}`},
		{"message only", `{"message":"Email already registered"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tc.body))
			})

			email := "rina@example.com"
			_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
				ID:            4,
				EmployeeInput: employee.EmployeeInput{EmployeeCode: "E-004", Name: "Rina", Email: &email, BaseSalary: "100"},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, employee.ErrEmployeeEmailExists)
			assert.NotErrorIs(t, err, employee.ErrEmployeeCodeExists)
		})
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:            99,
		EmployeeInput: employee.EmployeeInput{EmployeeCode: "E-099", Name: "Ghost", BaseSalary: "100"},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Statistics(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"50"}, r.URL.Query()["per_page"])
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"status":"active"},
			{"id":2,"status":"inactive"},
			{"id":3,"status":"active"}
		]}`))
	})

	stats, err := svc.Statistics(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats["total"])
	assert.Equal(t, 2, stats["active"])
	assert.Equal(t, 1, stats["inactive"])
}

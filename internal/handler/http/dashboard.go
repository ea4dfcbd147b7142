package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetOverview returns the payroll overview cards for a month
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOverview handles GET /payroll/overview
func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month")) // format: YYYY-MM, default: current month

	result, err := h.dashboardService.GetOverview(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

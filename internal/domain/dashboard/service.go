package dashboard

import "context"

// DashboardService builds the payroll overview.
type DashboardService interface {
	// GetOverview loads every card of the overview in parallel. month is
	// YYYY-MM and defaults to the current month.
	GetOverview(ctx context.Context, month string) (*OverviewResponse, error)
}

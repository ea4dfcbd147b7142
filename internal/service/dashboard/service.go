package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/fetch"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

type DashboardServiceImpl struct {
	employees  employee.EmployeeService
	attendance attendance.AttendanceService
	overtime   overtime.OvertimeService
	loans      loan.LoanService
}

func NewDashboardService(
	employees employee.EmployeeService,
	attendance attendance.AttendanceService,
	overtime overtime.OvertimeService,
	loans loan.LoanService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employees:  employees,
		attendance: attendance,
		overtime:   overtime,
		loans:      loans,
	}
}

// parseMonth parses YYYY-MM format, defaults to current month
func parseMonth(month string) (time.Time, error) {
	if month == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), nil
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// GetOverview loads the four cards with one goroutine each. A card whose
// list response carries no statistics falls back to a client-side count.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context, month string) (*dashboard.OverviewResponse, error) {
	start, err := parseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", dashboard.ErrInvalidMonth)
	}
	end := start.AddDate(0, 1, -1)

	monthStr := start.Format("2006-01")
	dateFrom := start.Format("2006-01-02")
	dateTo := end.Format("2006-01-02")

	overview := &dashboard.OverviewResponse{Month: monthStr}
	g := fetch.NewGroup(ctx)

	// 1. Employees
	fetch.Load(g, func(ctx context.Context) (dashboard.StatCard, error) {
		filter := employee.EmployeeFilter{ListFilter: shared.ListFilter{PerPage: 1}}
		result, err := s.employees.List(ctx, filter)
		if err != nil {
			return dashboard.StatCard{}, err
		}
		return card(ctx, result.Statistics, func(ctx context.Context) (envelope.Statistics, error) {
			return s.employees.Statistics(ctx, filter)
		})
	}, func(c dashboard.StatCard) { overview.Employees = c })

	// 2. Attendance for the month, with the latest records
	fetch.Load(g, func(ctx context.Context) (dashboard.AttendanceCard, error) {
		filter := attendance.AttendanceFilter{
			ListFilter: shared.ListFilter{PerPage: dashboard.RecentAttendanceLimit, SortBy: "date", SortOrder: "desc"},
			Month:      &monthStr,
		}
		result, err := s.attendance.List(ctx, filter)
		if err != nil {
			return dashboard.AttendanceCard{}, err
		}
		c, err := card(ctx, result.Statistics, func(ctx context.Context) (envelope.Statistics, error) {
			return s.attendance.Statistics(ctx, filter)
		})
		if err != nil {
			return dashboard.AttendanceCard{}, err
		}
		// Records ride along with the card.
		g.Guard().Apply(func() { overview.RecentAttendance = result.Items })
		return attendanceCard(c), nil
	}, func(c dashboard.AttendanceCard) { overview.Attendance = c })

	// 3. Overtime for the month
	fetch.Load(g, func(ctx context.Context) (dashboard.StatCard, error) {
		filter := overtime.OvertimeFilter{ListFilter: shared.ListFilter{PerPage: 1}, Month: &monthStr}
		result, err := s.overtime.List(ctx, filter)
		if err != nil {
			return dashboard.StatCard{}, err
		}
		return card(ctx, result.Statistics, func(ctx context.Context) (envelope.Statistics, error) {
			return s.overtime.Statistics(ctx, filter)
		})
	}, func(c dashboard.StatCard) { overview.Overtime = c })

	// 4. Salary advances requested in the month
	fetch.Load(g, func(ctx context.Context) (dashboard.StatCard, error) {
		filter := loan.LoanFilter{ListFilter: shared.ListFilter{PerPage: 1}, DateFrom: &dateFrom, DateTo: &dateTo}
		result, err := s.loans.List(ctx, filter)
		if err != nil {
			return dashboard.StatCard{}, err
		}
		return card(ctx, result.Statistics, func(ctx context.Context) (envelope.Statistics, error) {
			return s.loans.Statistics(ctx, filter)
		})
	}, func(c dashboard.StatCard) { overview.Loans = c })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if overview.RecentAttendance == nil {
		overview.RecentAttendance = []attendance.Record{}
	}
	return overview, nil
}

func card(ctx context.Context, server envelope.Statistics, compute func(context.Context) (envelope.Statistics, error)) (dashboard.StatCard, error) {
	stats, source, err := statistics.Resolve(ctx, server, true, compute)
	if err != nil {
		return dashboard.StatCard{}, err
	}
	return dashboard.StatCard{Statistics: stats, Source: string(source)}, nil
}

func attendanceCard(c dashboard.StatCard) dashboard.AttendanceCard {
	present := number(c.Statistics["present"])
	late := number(c.Statistics["late"])
	absent := number(c.Statistics["absent"])
	leave := number(c.Statistics["leave"])

	out := dashboard.AttendanceCard{StatCard: c}
	total := present + late + absent + leave
	if total > 0 {
		out.PresentPercent = present / total * 100
		out.LatePercent = late / total * 100
		out.AbsentPercent = absent / total * 100
		out.LeavePercent = leave / total * 100
	}
	return out
}

// number reads a counter that may have come from JSON (float64, numeric
// string) or from the fallback (int).
func number(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

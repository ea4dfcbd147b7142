package dashboard

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

// ========== PAYROLL OVERVIEW ==========

// OverviewResponse is the payroll home screen: one statistics card per
// resource plus the latest attendance records.
type OverviewResponse struct {
	Month            string              `json:"month"` // Format: "YYYY-MM"
	Employees        StatCard            `json:"employees"`
	Attendance       AttendanceCard      `json:"attendance"`
	Overtime         StatCard            `json:"overtime"`
	Loans            StatCard            `json:"loans"`
	RecentAttendance []attendance.Record `json:"recent_attendance"`
}

// StatCard is one statistics card.
type StatCard struct {
	Statistics envelope.Statistics `json:"statistics"`
	Source     string              `json:"statistics_source"` // "server" or "fallback"
}

// AttendanceCard adds the percentages shown on the attendance pie chart.
type AttendanceCard struct {
	StatCard
	PresentPercent float64 `json:"present_percent"`
	LatePercent    float64 `json:"late_percent"`
	AbsentPercent  float64 `json:"absent_percent"`
	LeavePercent   float64 `json:"leave_percent"`
}

// RecentAttendanceLimit is how many attendance rows the overview shows.
const RecentAttendanceLimit = 10

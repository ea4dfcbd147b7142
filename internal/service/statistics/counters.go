package statistics

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/category"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shift"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/unit"
)

func activeCounters[T any](isActive func(T) bool) []Counter[T] {
	return []Counter[T]{
		{Key: "active", Match: isActive},
		{Key: "inactive", Match: func(item T) bool { return !isActive(item) }},
	}
}

func statusCounters[T any](status func(T) string, statuses ...string) []Counter[T] {
	counters := make([]Counter[T], 0, len(statuses))
	for _, s := range statuses {
		counters = append(counters, Counter[T]{
			Key:   s,
			Match: func(item T) bool { return status(item) == s },
		})
	}
	return counters
}

var (
	CategoryCounters = activeCounters(func(c category.Category) bool { return bool(c.IsActive) })
	UnitCounters     = activeCounters(func(u unit.Unit) bool { return bool(u.IsActive) })
	ShiftCounters    = activeCounters(func(s shift.Shift) bool { return bool(s.IsActive) })
	EmployeeCounters = activeCounters(employee.Employee.IsActive)

	AttendanceCounters = statusCounters(func(r attendance.Record) string { return r.Status }, attendance.Statuses...)
	OvertimeCounters   = statusCounters(func(r overtime.Record) string { return r.Status }, overtime.Statuses...)
	LoanCounters       = statusCounters(func(l loan.Loan) string { return l.Status }, loan.Statuses...)
)

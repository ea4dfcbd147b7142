package shared

import (
	"strings"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

// MaxPerPage bounds ordinary list screens. The statistics fallback bypasses
// it on purpose.
const MaxPerPage = 100

// ListFilter is the paging, search and sort state every list screen keeps.
type ListFilter struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

// Normalize validates the common fields and fills defaults. Errors are
// appended to errs so resource filters can report everything at once.
func (f *ListFilter) Normalize(defaultPerPage int, sortFields []string, errs *validator.ValidationErrors) {
	if f.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.PerPage < 0 {
		errs.Add("per_page", "per_page must be a positive number")
	}
	if f.PerPage == 0 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > MaxPerPage {
		errs.Add("per_page", "per_page must not exceed 100")
	}

	f.Search = strings.TrimSpace(f.Search)

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, sortFields) {
		errs.Add("sort_by", "sort_by must be one of: "+strings.Join(sortFields, ", "))
	}

	if f.SortOrder != "" {
		f.SortOrder = strings.ToLower(f.SortOrder)
		if !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
			errs.Add("sort_order", "sort_order must be one of: asc, desc")
		}
	}
}

// Params renders the common fields as query parameters.
func (f ListFilter) Params() apiclient.Params {
	return apiclient.Params{
		"page":       f.Page,
		"per_page":   f.PerPage,
		"search":     f.Search,
		"sort_by":    f.SortBy,
		"sort_order": f.SortOrder,
	}
}

// Request echoes the paging sent upstream for pagination fallbacks.
func (f ListFilter) Request() envelope.Request {
	return envelope.Request{Page: f.Page, PerPage: f.PerPage}
}

// ValidateDate appends an error when value is set but not YYYY-MM-DD.
func ValidateDate(field string, value *string, errs *validator.ValidationErrors) {
	if value == nil || *value == "" {
		return
	}
	if _, ok := validator.IsValidDate(*value); !ok {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

// ValidateOneOf appends an error when value is set but not allowed.
func ValidateOneOf(field string, value *string, allowed []string, errs *validator.ValidationErrors) {
	if value == nil || *value == "" {
		return
	}
	if !validator.IsInSlice(*value, allowed) {
		errs.Add(field, field+" must be one of: "+strings.Join(allowed, ", "))
	}
}

// StringPtr returns nil for blank strings.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ValidateDateRange checks date_from and date_to and their order.
func ValidateDateRange(from, to *string, errs *validator.ValidationErrors) {
	ValidateDate("date_from", from, errs)
	ValidateDate("date_to", to, errs)
	if from == nil || to == nil || *from == "" || *to == "" {
		return
	}
	start, okStart := validator.IsValidDate(*from)
	end, okEnd := validator.IsValidDate(*to)
	if okStart && okEnd && end.Before(start) {
		errs.Add("date_to", "date_to must not be before date_from")
	}
}

// ValidateMonth appends an error when value is set but not YYYY-MM.
func ValidateMonth(field string, value *string, errs *validator.ValidationErrors) {
	if value == nil || *value == "" {
		return
	}
	if !validator.IsValidMonth(*value) {
		errs.Add(field, field+" must be in YYYY-MM format")
	}
}

// ValidateClock appends an error when value is set but not HH:MM[:SS].
func ValidateClock(field string, value *string, errs *validator.ValidationErrors) {
	if value == nil || *value == "" {
		return
	}
	if !validator.IsValidClock(*value) {
		errs.Add(field, field+" must be in HH:MM format")
	}
}

// ClockMinutes returns minutes since midnight for a valid HH:MM[:SS] value.
func ClockMinutes(clock string) int {
	if len(clock) < 5 {
		return 0
	}
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return h*60 + m
}

package shared

import (
	"encoding/json"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberInput_UnmarshalJSON(t *testing.T) {
	var form struct {
		Amount NumberInput `json:"amount"`
		Count  NumberInput `json:"count"`
		Empty  NumberInput `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"1,500,000","count":12,"empty":null}`), &form))

	assert.Equal(t, NumberInput("1,500,000"), form.Amount)
	assert.Equal(t, NumberInput("12"), form.Count)
	assert.True(t, form.Empty.IsEmpty())

	assert.Error(t, json.Unmarshal([]byte(`{"amount":true}`), &form))
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`1`:       true,
		`0`:       false,
		`"1"`:     true,
		`"false"`: false,
		`null`:    false,
	}
	for raw, want := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(raw), &f), raw)
		assert.Equal(t, want, bool(f), raw)
	}

	var f Flag
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &f))
}

func TestListFilter_Normalize(t *testing.T) {
	var errs validator.ValidationErrors
	f := ListFilter{SortOrder: "ASC", Search: "  rice "}
	f.Normalize(20, []string{"name"}, &errs)
	assert.Empty(t, errs)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PerPage)
	assert.Equal(t, "asc", f.SortOrder)
	assert.Equal(t, "rice", f.Search)

	errs = nil
	f = ListFilter{Page: -1, PerPage: 500, SortBy: "salary", SortOrder: "up"}
	f.Normalize(20, []string{"name"}, &errs)
	fields := errs.ToMap()
	assert.Len(t, fields, 4)
	assert.Contains(t, fields, "page")
	assert.Contains(t, fields, "per_page")
	assert.Contains(t, fields, "sort_by")
	assert.Contains(t, fields, "sort_order")
}

func TestValidateDateRange(t *testing.T) {
	var errs validator.ValidationErrors
	from, to := "2024-06-10", "2024-06-01"
	ValidateDateRange(&from, &to, &errs)
	assert.Equal(t, "date_to must not be before date_from", errs.ToMap()["date_to"])

	errs = nil
	bad := "June"
	ValidateDateRange(&bad, nil, &errs)
	assert.Equal(t, "date_from must be in YYYY-MM-DD format", errs.ToMap()["date_from"])
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 0, ClockMinutes("00:00"))
	assert.Equal(t, 8*60+30, ClockMinutes("08:30"))
	assert.Equal(t, 23*60+59, ClockMinutes("23:59:10"))
}

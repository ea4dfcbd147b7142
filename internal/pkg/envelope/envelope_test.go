package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var categoryOpts = Options{ResourceKey: "categories", SingularKey: "category", DefaultPerPage: 15}

func itemsJSON(n int) string {
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, fmt.Sprintf(`{"id":%d,"name":"item-%d"}`, i, i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestNormalize_SameItemsAcrossKnownShapes(t *testing.T) {
	items := itemsJSON(3)
	shapes := map[string]string{
		"flat":                   `{"data":` + items + `,"current_page":1,"last_page":1,"per_page":15,"total":3}`,
		"nested-under-data":      `{"success":true,"data":{"current_page":1,"data":` + items + `,"total":3}}`,
		"nested-under-data.data": `{"data":{"data":` + items + `,"pagination":{"current_page":1,"total":3}}}`,
		"meta-only":              `{"data":` + items + `,"meta":{"current_page":1,"last_page":1,"total":3}}`,
		"pagination-only":        `{"categories":` + items + `,"pagination":{"current_page":1,"total":3}}`,
		"resource-under-data":    `{"data":{"categories":` + items + `,"current_page":1,"total":3}}`,
		"bare-array":             items,
	}

	var want []testItem
	require.NoError(t, json.Unmarshal([]byte(items), &want))

	for name, payload := range shapes {
		t.Run(name, func(t *testing.T) {
			got := Normalize[testItem]([]byte(payload), Request{Page: 1, PerPage: 15}, categoryOpts)
			assert.Equal(t, want, got.Items)
			assert.Equal(t, 3, got.Pagination.Total)
			assert.Equal(t, 1, got.Pagination.CurrentPage)
		})
	}
}

func TestNormalize_ZeroTotalHasNoRange(t *testing.T) {
	payloads := []string{
		`{"data":[]}`,
		`{"data":[],"meta":{"total":0,"from":null,"to":null}}`,
		`{"data":{"data":[],"total":0}}`,
		`[]`,
	}
	for _, p := range payloads {
		got := Normalize[testItem]([]byte(p), Request{Page: 3, PerPage: 20}, categoryOpts)
		assert.Equal(t, 0, got.Pagination.Total, p)
		assert.Equal(t, 0, got.Pagination.From, p)
		assert.Equal(t, 0, got.Pagination.To, p)
	}
}

func TestNormalize_LastPageComputedWhenOmitted(t *testing.T) {
	cases := []struct {
		total, perPage, want int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{100, 20, 5},
		{101, 20, 6},
	}
	for _, c := range cases {
		payload := fmt.Sprintf(`{"data":[],"meta":{"total":%d,"per_page":%d}}`, c.total, c.perPage)
		got := Normalize[testItem]([]byte(payload), Request{}, categoryOpts)
		assert.Equal(t, c.want, got.Pagination.LastPage, "total=%d per_page=%d", c.total, c.perPage)
	}
}

func TestNormalize_CanonicalShapeIsIdempotent(t *testing.T) {
	first := Normalize[testItem]([]byte(`{"data":`+itemsJSON(5)+`,"meta":{"total":42,"current_page":2,"per_page":5}}`), Request{}, categoryOpts)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second := Normalize[testItem](encoded, Request{Page: 9, PerPage: 99}, categoryOpts)
	assert.Equal(t, first, second)
}

func TestNormalize_RequestParamsDriveDefaults(t *testing.T) {
	got := Normalize[testItem]([]byte(itemsJSON(15)), Request{Page: 2, PerPage: 15}, categoryOpts)

	assert.Len(t, got.Items, 15)
	assert.Equal(t, 2, got.Pagination.CurrentPage)
	assert.Equal(t, 16, got.Pagination.From)
	assert.Equal(t, 15, got.Pagination.PerPage)
}

func TestNormalize_EmptyWithoutMetadata(t *testing.T) {
	got := Normalize[testItem]([]byte(`{"data":[]}`), Request{PerPage: 15}, categoryOpts)

	assert.Empty(t, got.Items)
	assert.NotNil(t, got.Items)
	assert.Equal(t, Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0, From: 0, To: 0}, got.Pagination)
}

func TestNormalize_NestedDataWithTotal(t *testing.T) {
	payload := `{"data":{"data":` + itemsJSON(12) + `,"total":12}}`
	got := Normalize[testItem]([]byte(payload), Request{Page: 1, PerPage: 15}, categoryOpts)

	assert.Len(t, got.Items, 12)
	assert.Equal(t, 1, got.Pagination.LastPage)
	assert.Equal(t, 12, got.Pagination.To)
	assert.Equal(t, 1, got.Pagination.From)
	assert.Equal(t, 15, got.Pagination.PerPage)
}

func TestNormalize_PerPageFallbackOrder(t *testing.T) {
	t.Run("items length", func(t *testing.T) {
		got := Normalize[testItem]([]byte(itemsJSON(7)), Request{}, categoryOpts)
		assert.Equal(t, 7, got.Pagination.PerPage)
	})
	t.Run("resource default", func(t *testing.T) {
		got := Normalize[testItem]([]byte(`[]`), Request{}, Options{DefaultPerPage: 20})
		assert.Equal(t, 20, got.Pagination.PerPage)
	})
	t.Run("package default", func(t *testing.T) {
		got := Normalize[testItem]([]byte(`[]`), Request{}, Options{})
		assert.Equal(t, FallbackPerPage, got.Pagination.PerPage)
	})
}

func TestNormalize_AliasedAndStringFields(t *testing.T) {
	payload := `{"success":true,"data":` + itemsJSON(2) + `,"meta":{"page":"3","limit":"2","total_items":"10","total_pages":5}}`
	got := Normalize[testItem]([]byte(payload), Request{}, categoryOpts)

	assert.Equal(t, Pagination{CurrentPage: 3, LastPage: 5, PerPage: 2, Total: 10, From: 5, To: 6}, got.Pagination)
}

func TestNormalize_ServerValuesWin(t *testing.T) {
	payload := `{"data":{"current_page":4,"last_page":9,"per_page":10,"total":85,"from":31,"to":40,"data":` + itemsJSON(10) + `}}`
	got := Normalize[testItem]([]byte(payload), Request{Page: 1, PerPage: 50}, categoryOpts)

	assert.Equal(t, Pagination{CurrentPage: 4, LastPage: 9, PerPage: 10, Total: 85, From: 31, To: 40}, got.Pagination)
}

func TestNormalize_Statistics(t *testing.T) {
	t.Run("under data", func(t *testing.T) {
		got := Normalize[testItem]([]byte(`{"data":{"data":[],"statistics":{"total":4,"active":3}}}`), Request{}, categoryOpts)
		require.NotNil(t, got.Statistics)
		assert.EqualValues(t, 4, got.Statistics["total"])
		assert.EqualValues(t, 3, got.Statistics["active"])
	})
	t.Run("at root", func(t *testing.T) {
		got := Normalize[testItem]([]byte(`{"data":[],"statistics":{"pending":2}}`), Request{}, categoryOpts)
		assert.EqualValues(t, 2, got.Statistics["pending"])
	})
	t.Run("absent", func(t *testing.T) {
		got := Normalize[testItem]([]byte(`{"data":[]}`), Request{}, categoryOpts)
		assert.Nil(t, got.Statistics)
	})
}

func TestNormalize_NeverFails(t *testing.T) {
	for _, p := range []string{``, `not json`, `null`, `42`, `"text"`, `{"data":"oops"}`} {
		got := Normalize[testItem]([]byte(p), Request{PerPage: 15}, categoryOpts)
		assert.NotNil(t, got.Items, p)
		assert.Empty(t, got.Items, p)
		assert.Equal(t, 1, got.Pagination.CurrentPage, p)
		assert.Equal(t, 1, got.Pagination.LastPage, p)
	}
}

func TestNormalize_SkipsMalformedElements(t *testing.T) {
	got := Normalize[testItem]([]byte(`{"data":[{"id":1,"name":"a"},{"id":"x"},{"id":3,"name":"c"}]}`), Request{}, categoryOpts)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(3), got.Items[1].ID)
}

func TestUnwrap(t *testing.T) {
	cases := map[string]string{
		"data":        `{"success":true,"data":{"id":7,"name":"Bolts"}}`,
		"data.data":   `{"data":{"data":{"id":7,"name":"Bolts"}}}`,
		"data.single": `{"data":{"category":{"id":7,"name":"Bolts"}}}`,
		"singular":    `{"message":"ok","category":{"id":7,"name":"Bolts"}}`,
		"bare object": `{"id":7,"name":"Bolts"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := Unwrap[testItem]([]byte(payload), categoryOpts)
			require.True(t, ok)
			assert.Equal(t, testItem{ID: 7, Name: "Bolts"}, got)
		})
	}

	_, ok := Unwrap[testItem]([]byte(`[1,2]`), categoryOpts)
	assert.False(t, ok)
	_, ok = Unwrap[testItem]([]byte(`garbage`), categoryOpts)
	assert.False(t, ok)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
	"github.com/go-chi/chi/v5"
)

// listResponse is the canonical list shape returned to the app.
type listResponse[T any] struct {
	Items            []T                 `json:"items"`
	Pagination       envelope.Pagination `json:"pagination"`
	Statistics       envelope.Statistics `json:"statistics"`
	StatisticsSource statistics.Source   `json:"statistics_source,omitempty"`
}

// writeList resolves statistics (server, or the fallback when the caller
// asked for them) and writes the list.
func writeList[T any](w http.ResponseWriter, r *http.Request, result envelope.Result[T], compute func(context.Context) (envelope.Statistics, error)) {
	want := withStatistics(r)
	stats, source, err := statistics.Resolve(r.Context(), result.Statistics, want, compute)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := result.Items
	if items == nil {
		items = []T{}
	}
	response.Success(w, listResponse[T]{
		Items:            items,
		Pagination:       result.Pagination,
		Statistics:       stats,
		StatisticsSource: source,
	})
}

func withStatistics(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("with_statistics"))
	return err == nil && v
}

// queryParser reads optional list filters. Malformed values are collected as
// field errors instead of being dropped.
type queryParser struct {
	q    url.Values
	errs validator.ValidationErrors
}

func newQuery(r *http.Request) *queryParser {
	return &queryParser{q: r.URL.Query()}
}

func (p *queryParser) get(key string) string {
	return strings.TrimSpace(p.q.Get(key))
}

func (p *queryParser) intValue(keys ...string) int {
	for _, key := range keys {
		raw := p.get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.errs.Add(key, key+" must be a number")
			return 0
		}
		return n
	}
	return 0
}

func (p *queryParser) int64Ptr(key string) *int64 {
	raw := p.get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errs.Add(key, key+" must be a number")
		return nil
	}
	return &n
}

func (p *queryParser) stringPtr(key string) *string {
	return shared.StringPtr(p.q.Get(key))
}

func (p *queryParser) boolPtr(key string) *bool {
	raw := p.get(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs.Add(key, key+" must be true or false")
		return nil
	}
	return shared.Bool(b)
}

// listFilter reads paging, search and sort. limit is accepted as an alias
// of per_page.
func (p *queryParser) listFilter() shared.ListFilter {
	return shared.ListFilter{
		Page:      p.intValue("page"),
		PerPage:   p.intValue("per_page", "limit"),
		Search:    p.get("search"),
		SortBy:    p.get("sort_by"),
		SortOrder: p.get("sort_order"),
	}
}

func (p *queryParser) err() error {
	return p.errs.Err()
}

// urlID reads a positive integer path parameter.
func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeOptional decodes a JSON body that callers may omit entirely.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

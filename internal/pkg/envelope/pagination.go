package envelope

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FallbackPerPage is used when neither the server, the request nor the page
// itself says how many items a page holds.
const FallbackPerPage = 15

var (
	currentPageKeys = []string{"current_page", "page"}
	lastPageKeys    = []string{"last_page", "total_pages"}
	perPageKeys     = []string{"per_page", "limit", "page_size"}
	totalKeys       = []string{"total", "total_items", "total_count"}
)

// paginationSource finds the object holding pagination fields. A data object
// (or the root) that carries current_page/last_page/total directly wins over
// pagination/meta sub-objects, which are searched deepest first.
func paginationSource(root gjson.Result) (gjson.Result, bool) {
	for _, obj := range []gjson.Result{root.Get("data"), root} {
		if !obj.IsObject() {
			continue
		}
		if obj.Get("current_page").Exists() || obj.Get("last_page").Exists() || obj.Get("total").Exists() {
			return obj, true
		}
	}

	for _, p := range []string{
		"data.data.pagination",
		"data.data.meta",
		"data.pagination",
		"data.meta",
		"pagination",
		"meta",
	} {
		if obj := root.Get(p); obj.IsObject() {
			return obj, true
		}
	}
	return gjson.Result{}, false
}

func reconcile(root gjson.Result, itemCount int, req Request, defaultPerPage int) Pagination {
	src, _ := paginationSource(root)

	total, ok := intField(src, totalKeys...)
	if !ok || total < 0 {
		total = itemCount
	}

	perPage, ok := intField(src, perPageKeys...)
	if !ok || perPage <= 0 {
		switch {
		case req.PerPage > 0:
			perPage = req.PerPage
		case itemCount > 0:
			perPage = itemCount
		case defaultPerPage > 0:
			perPage = defaultPerPage
		default:
			perPage = FallbackPerPage
		}
	}

	currentPage, ok := intField(src, currentPageKeys...)
	if !ok || currentPage <= 0 {
		currentPage = 1
		if req.Page > 0 {
			currentPage = req.Page
		}
	}

	lastPage, ok := intField(src, lastPageKeys...)
	if !ok {
		lastPage = LastPage(total, perPage)
	}
	if lastPage < 1 {
		lastPage = 1
	}

	from, ok := intField(src, "from")
	if !ok {
		from = 0
		if total > 0 {
			from = (currentPage-1)*perPage + 1
		}
	}

	to, ok := intField(src, "to")
	if !ok {
		to = 0
		if total > 0 {
			to = min(total, from+itemCount-1)
		}
	}

	return Pagination{
		CurrentPage: currentPage,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		From:        from,
		To:          to,
	}
}

// LastPage returns ceil(total/perPage), never less than 1.
func LastPage(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// intField reads the first present key as an int. Numeric strings are
// accepted; null counts as absent.
func intField(obj gjson.Result, keys ...string) (int, bool) {
	if !obj.IsObject() {
		return 0, false
	}
	for _, k := range keys {
		v := obj.Get(k)
		switch v.Type {
		case gjson.Number:
			return int(v.Int()), true
		case gjson.String:
			if n, err := strconv.Atoi(strings.TrimSpace(v.Str)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

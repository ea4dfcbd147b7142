// Package envelope turns the list and detail envelopes returned by the
// inventory/payroll backend into one canonical shape.
//
// The backend is inconsistent about where it puts items and pagination
// metadata (flat, under data, under data.data, under meta or pagination).
// Normalize hides that from every caller and never fails: missing fields
// degrade to computed defaults.
package envelope

import (
	"encoding/json"
	"log/slog"

	"github.com/tidwall/gjson"
)

// Pagination is the reconciled pagination block of a list response.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Statistics holds server supplied (or fallback computed) aggregate counters.
type Statistics map[string]any

// Result is the canonical list shape.
type Result[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
	Statistics Statistics `json:"statistics"`
}

// Request echoes the paging parameters that were sent upstream. They are the
// first fallback when the server omits pagination fields.
type Request struct {
	Page    int
	PerPage int
}

// Options describes where a resource's items may live.
type Options struct {
	// ResourceKey is the plural key some endpoints use instead of data,
	// e.g. "categories".
	ResourceKey string
	// SingularKey is used by Unwrap, e.g. "category".
	SingularKey string
	// DefaultPerPage is the last per_page fallback (15 or 20 depending on the resource).
	DefaultPerPage int
}

// Normalize extracts items, pagination and statistics from payload.
func Normalize[T any](payload []byte, req Request, opts Options) Result[T] {
	var root gjson.Result
	if gjson.ValidBytes(payload) {
		root = gjson.ParseBytes(payload)
	}

	items := extractItems[T](root, opts.ResourceKey)

	return Result[T]{
		Items:      items,
		Pagination: reconcile(root, len(items), req, opts.DefaultPerPage),
		Statistics: extractStatistics(root, opts.ResourceKey),
	}
}

// Unwrap extracts a single resource from a show/create/update response.
// The first object found at data.data, data.<singular>, data, <singular> or
// the root wins. ok is false when the payload holds no object at all.
func Unwrap[T any](payload []byte, opts Options) (item T, ok bool) {
	if !gjson.ValidBytes(payload) {
		return item, false
	}
	root := gjson.ParseBytes(payload)

	candidates := []gjson.Result{root.Get("data.data")}
	if opts.SingularKey != "" {
		key := gjson.Escape(opts.SingularKey)
		candidates = append(candidates, root.Get("data."+key), root.Get("data"), root.Get(key))
	} else {
		candidates = append(candidates, root.Get("data"))
	}
	candidates = append(candidates, root)

	for _, c := range candidates {
		if !c.IsObject() {
			continue
		}
		if err := json.Unmarshal([]byte(c.Raw), &item); err != nil {
			continue
		}
		return item, true
	}

	var zero T
	return zero, false
}

func extractItems[T any](root gjson.Result, resourceKey string) []T {
	candidates := []gjson.Result{root.Get("data"), root.Get("data.data")}
	if resourceKey != "" {
		key := gjson.Escape(resourceKey)
		candidates = append(candidates, root.Get(key), root.Get("data."+key))
	}
	candidates = append(candidates, root.Get("items"), root)

	for _, c := range candidates {
		if c.IsArray() {
			return decodeArray[T](c, resourceKey)
		}
	}
	return []T{}
}

// decodeArray decodes element by element so a single malformed record does
// not blank the whole page. Dropped records are logged since the server's
// total still counts them.
func decodeArray[T any](arr gjson.Result, resourceKey string) []T {
	items := make([]T, 0)
	var (
		dropped int
		lastErr error
	)
	arr.ForEach(func(_, value gjson.Result) bool {
		var item T
		if err := json.Unmarshal([]byte(value.Raw), &item); err != nil {
			dropped++
			lastErr = err
			return true
		}
		items = append(items, item)
		return true
	})
	if dropped > 0 {
		slog.Warn("Dropped undecodable records",
			"resource", resourceKey,
			"dropped", dropped,
			"decoded", len(items),
			"error", lastErr,
		)
	}
	return items
}

func extractStatistics(root gjson.Result, resourceKey string) Statistics {
	paths := []string{"data.data.statistics", "data.statistics"}
	if resourceKey != "" {
		paths = append(paths, gjson.Escape(resourceKey)+".statistics")
	}
	paths = append(paths, "statistics", "meta.statistics")

	for _, p := range paths {
		v := root.Get(p)
		if !v.IsObject() {
			continue
		}
		var stats Statistics
		if err := json.Unmarshal([]byte(v.Raw), &stats); err == nil {
			return stats
		}
	}
	return nil
}

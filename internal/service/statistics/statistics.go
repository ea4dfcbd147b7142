// Package statistics computes list aggregates client-side when the backend
// did not send a statistics block.
package statistics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/metrics"
)

// DefaultFallbackPerPage is the page size used to pull "everything" for a
// client-side count.
const DefaultFallbackPerPage = 10000

// Source tells the caller where the statistics of a response came from.
type Source string

const (
	SourceNone     Source = ""
	SourceServer   Source = "server"
	SourceFallback Source = "fallback"
)

// Lister fetches one page of a resource. *resource.Client satisfies it.
type Lister[T any] interface {
	List(ctx context.Context, params apiclient.Params, req envelope.Request) (envelope.Result[T], error)
}

// Counter counts the items matching Match under Key. The total is always
// counted and needs no Counter.
type Counter[T any] struct {
	Key   string
	Match func(T) bool
}

// Fallback configures ComputeStatisticsFallback.
type Fallback struct {
	PerPage int
	Metrics *metrics.Upstream
}

func NewFallback(perPage int, m *metrics.Upstream) Fallback {
	if perPage <= 0 {
		perPage = DefaultFallbackPerPage
	}
	return Fallback{PerPage: perPage, Metrics: m}
}

// ComputeStatisticsFallback issues one extra list call for the first
// fb.PerPage records matching params and counts them. The whole filtered
// collection is downloaded.
//
// total is the server's total when known, so it stays correct even when the
// backend caps per_page below the size of the collection. The per-predicate
// counts only cover the records that were returned.
func ComputeStatisticsFallback[T any](ctx context.Context, fb Fallback, resource string, lister Lister[T], params apiclient.Params, counters []Counter[T]) (envelope.Statistics, error) {
	perPage := fb.PerPage
	if perPage <= 0 {
		perPage = DefaultFallbackPerPage
	}

	query := apiclient.Params{}
	for k, v := range params {
		switch k {
		case "page", "per_page", "sort_by", "sort_order":
			continue
		}
		query[k] = v
	}
	query["page"] = 1
	query["per_page"] = perPage

	result, err := lister.List(ctx, query, envelope.Request{Page: 1, PerPage: perPage})
	if err != nil {
		return nil, fmt.Errorf("statistics fallback for %s: %w", resource, err)
	}
	fb.Metrics.ObserveFallback(resource)

	stats := envelope.Statistics{"total": max(result.Pagination.Total, len(result.Items))}
	for _, c := range counters {
		n := 0
		for _, item := range result.Items {
			if c.Match(item) {
				n++
			}
		}
		stats[c.Key] = n
	}

	if result.Pagination.Total > len(result.Items) {
		slog.Warn("Statistics fallback saw a partial collection",
			"resource", resource,
			"fetched", len(result.Items),
			"total", result.Pagination.Total,
		)
	}
	return stats, nil
}

// Resolve keeps server statistics when present. Otherwise, when want is set,
// it runs compute.
func Resolve(ctx context.Context, server envelope.Statistics, want bool, compute func(context.Context) (envelope.Statistics, error)) (envelope.Statistics, Source, error) {
	if server != nil {
		return server, SourceServer, nil
	}
	if !want || compute == nil {
		return nil, SourceNone, nil
	}
	stats, err := compute(ctx)
	if err != nil {
		return nil, SourceNone, err
	}
	return stats, SourceFallback, nil
}

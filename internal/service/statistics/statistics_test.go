package statistics

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/unit"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister[T any] struct {
	result envelope.Result[T]
	err    error
	params apiclient.Params
	req    envelope.Request
	calls  int
}

func (f *fakeLister[T]) List(_ context.Context, params apiclient.Params, req envelope.Request) (envelope.Result[T], error) {
	f.calls++
	f.params = params
	f.req = req
	return f.result, f.err
}

func TestComputeStatisticsFallback_CountsPredicates(t *testing.T) {
	lister := &fakeLister[loan.Loan]{result: envelope.Result[loan.Loan]{
		Items: []loan.Loan{
			{ID: 1, Status: loan.StatusPending},
			{ID: 2, Status: loan.StatusPending},
			{ID: 3, Status: loan.StatusApproved},
			{ID: 4, Status: loan.StatusPaid},
		},
		Pagination: envelope.Pagination{Total: 4},
	}}
	m := metrics.NewUpstream()

	stats, err := ComputeStatisticsFallback(context.Background(), NewFallback(10000, m), "loans", lister, apiclient.Params{
		"page":       3,
		"per_page":   15,
		"sort_by":    "amount",
		"sort_order": "desc",
		"search":     "dewi",
	}, LoanCounters)
	require.NoError(t, err)

	assert.Equal(t, envelope.Statistics{
		"total":    4,
		"pending":  2,
		"approved": 1,
		"rejected": 0,
		"paid":     1,
	}, stats)

	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, apiclient.Params{"page": 1, "per_page": 10000, "search": "dewi"}, lister.params)
	assert.Equal(t, envelope.Request{Page: 1, PerPage: 10000}, lister.req)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackCounter("loans")))
}

func TestComputeStatisticsFallback_ActiveCounters(t *testing.T) {
	lister := &fakeLister[unit.Unit]{result: envelope.Result[unit.Unit]{
		Items: []unit.Unit{
			{ID: 1, IsActive: shared.Flag(true)},
			{ID: 2, IsActive: shared.Flag(false)},
			{ID: 3, IsActive: shared.Flag(true)},
		},
		Pagination: envelope.Pagination{Total: 3},
	}}

	stats, err := ComputeStatisticsFallback(context.Background(), Fallback{}, "units", lister, nil, UnitCounters)
	require.NoError(t, err)
	assert.Equal(t, envelope.Statistics{"total": 3, "active": 2, "inactive": 1}, stats)
	assert.Equal(t, DefaultFallbackPerPage, lister.req.PerPage)
}

func TestComputeStatisticsFallback_TotalPrefersServer(t *testing.T) {
	lister := &fakeLister[unit.Unit]{result: envelope.Result[unit.Unit]{
		Items:      []unit.Unit{{ID: 1, IsActive: true}},
		Pagination: envelope.Pagination{Total: 250},
	}}

	stats, err := ComputeStatisticsFallback(context.Background(), Fallback{PerPage: 1}, "units", lister, nil, UnitCounters)
	require.NoError(t, err)
	assert.Equal(t, 250, stats["total"])
	assert.Equal(t, 1, stats["active"])
}

func TestComputeStatisticsFallback_Error(t *testing.T) {
	upstream := &apiclient.Error{StatusCode: 500}
	lister := &fakeLister[unit.Unit]{err: upstream}

	stats, err := ComputeStatisticsFallback(context.Background(), Fallback{}, "units", lister, nil, UnitCounters)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, upstream)
}

func TestResolve(t *testing.T) {
	computed := 0
	compute := func(context.Context) (envelope.Statistics, error) {
		computed++
		return envelope.Statistics{"total": 1}, nil
	}

	stats, source, err := Resolve(context.Background(), envelope.Statistics{"total": 9}, true, compute)
	require.NoError(t, err)
	assert.Equal(t, SourceServer, source)
	assert.Equal(t, 9, stats["total"])

	stats, source, err = Resolve(context.Background(), nil, false, compute)
	require.NoError(t, err)
	assert.Equal(t, SourceNone, source)
	assert.Nil(t, stats)

	stats, source, err = Resolve(context.Background(), nil, true, compute)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, 1, stats["total"])
	assert.Equal(t, 1, computed)

	boom := errors.New("boom")
	_, source, err = Resolve(context.Background(), nil, true, func(context.Context) (envelope.Statistics, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, SourceNone, source)
}

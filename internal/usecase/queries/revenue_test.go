//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"driveshare/internal/pkg/clock"
	"driveshare/internal/usecase/queries"
	queriesmock "driveshare/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewGranularity(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  queries.Granularity
		errIs error
	}{
		{name: "day", input: "day", want: queries.GranularityDay},
		{name: "month", input: "month", want: queries.GranularityMonth},
		{name: "empty defaults to month", input: "", want: queries.GranularityMonth},
		{name: "weekly unsupported", input: "week", errIs: queries.ErrInvalidGranularity},
		{name: "yearly unsupported", input: "year", errIs: queries.ErrInvalidGranularity},
		{name: "case sensitive", input: "Day", errIs: queries.ErrInvalidGranularity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := queries.NewGranularity(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRevenueQueries_Series(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	newQueries := func(t *testing.T) (queries.RevenueQueries, *queriesmock.MockRevenueReadStore) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockRevenueReadStore(ctrl)
		return queries.NewRevenueQueries(readStore, clock.NewMockClock(now)), readStore
	}

	t.Run("monthly buckets count by creation and sum by completion", func(t *testing.T) {
		q, readStore := newQueries(t)
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

		// One booking created in June, completed in July, fee 30.00.
		readStore.EXPECT().
			CreatedCounts(gomock.Any(), queries.GranularityMonth, gomock.Any(), gomock.Any()).
			Return(map[string]int64{"2026-06": 1}, nil)
		readStore.EXPECT().
			CompletedAmounts(gomock.Any(), queries.GranularityMonth, gomock.Any(), gomock.Any()).
			Return(map[string]queries.BucketAmounts{
				"2026-07": {TotalCents: 30000, FeeCents: 3000, PayoutCents: 27000},
			}, nil)

		got, err := q.Series(context.Background(), queries.GranularityMonth, &from, &to)
		require.NoError(t, err)

		want := &queries.RevenueSeries{
			Granularity:  "month",
			StartDate:    "2026-06",
			EndDate:      "2026-08",
			Labels:       []string{"2026-06", "2026-07", "2026-08"},
			Bookings:     []int64{1, 0, 0},
			TotalRevenue: []string{"0.00", "300.00", "0.00"},
			PlatformFees: []string{"0.00", "30.00", "0.00"},
			OwnerPayouts: []string{"0.00", "270.00", "0.00"},
			Totals: queries.RevenueTotals{
				Bookings:     1,
				TotalRevenue: "300.00",
				PlatformFees: "30.00",
				OwnerPayouts: "270.00",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("monthly labels roll over the year boundary", func(t *testing.T) {
		q, readStore := newQueries(t)
		from := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

		readStore.EXPECT().
			CreatedCounts(gomock.Any(), queries.GranularityMonth, gomock.Any(), gomock.Any()).
			Return(map[string]int64{}, nil)
		readStore.EXPECT().
			CompletedAmounts(gomock.Any(), queries.GranularityMonth, gomock.Any(), gomock.Any()).
			Return(map[string]queries.BucketAmounts{}, nil)

		got, err := q.Series(context.Background(), queries.GranularityMonth, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-11", "2025-12", "2026-01", "2026-02"}, got.Labels)
	})

	t.Run("daily buckets cover every day in the window", func(t *testing.T) {
		q, readStore := newQueries(t)
		from := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

		readStore.EXPECT().
			CreatedCounts(gomock.Any(), queries.GranularityDay, gomock.Any(), gomock.Any()).
			Return(map[string]int64{"2026-07-31": 2}, nil)
		readStore.EXPECT().
			CompletedAmounts(gomock.Any(), queries.GranularityDay, gomock.Any(), gomock.Any()).
			Return(map[string]queries.BucketAmounts{}, nil)

		got, err := q.Series(context.Background(), queries.GranularityDay, &from, &to)
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-07-30", "2026-07-31", "2026-08-01", "2026-08-02"}, got.Labels)
		assert.Equal(t, []int64{0, 2, 0, 0}, got.Bookings)
		assert.Equal(t, int64(2), got.Totals.Bookings)
	})

	t.Run("window defaults to the trailing 180 days", func(t *testing.T) {
		q, readStore := newQueries(t)
		wantStart := now.Add(-180 * 24 * time.Hour)

		readStore.EXPECT().
			CreatedCounts(gomock.Any(), queries.GranularityDay,
				time.Date(wantStart.Year(), wantStart.Month(), wantStart.Day(), 0, 0, 0, 0, time.UTC),
				gomock.Any()).
			Return(map[string]int64{}, nil)
		readStore.EXPECT().
			CompletedAmounts(gomock.Any(), queries.GranularityDay, gomock.Any(), gomock.Any()).
			Return(map[string]queries.BucketAmounts{}, nil)

		got, err := q.Series(context.Background(), queries.GranularityDay, nil, nil)
		require.NoError(t, err)
		assert.Len(t, got.Labels, 181)
		assert.Equal(t, "2026-08-15", got.EndDate)
	})

	t.Run("start after end", func(t *testing.T) {
		q, _ := newQueries(t)
		from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		_, err := q.Series(context.Background(), queries.GranularityDay, &from, &to)
		require.ErrorIs(t, err, queries.ErrInvalidPeriod)
	})

	t.Run("unknown granularity is rejected before hitting the store", func(t *testing.T) {
		q, _ := newQueries(t)
		_, err := q.Series(context.Background(), queries.Granularity("week"), nil, nil)
		require.ErrorIs(t, err, queries.ErrInvalidGranularity)
	})
}

func TestRevenueQueries_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockRevenueReadStore(ctrl)
	q := queries.NewRevenueQueries(readStore, clock.NewRealClock())

	t.Run("passes the parsed window through", func(t *testing.T) {
		want := &queries.RevenueSummary{
			StartDate:    "2026-07-01",
			EndDate:      "2026-07-31",
			Bookings:     2,
			TotalRevenue: "500.00",
			PlatformFees: "50.00",
			OwnerPayouts: "450.00",
		}
		start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
		readStore.EXPECT().
			SummaryByPeriod(gomock.Any(), &start, &end).
			Return(want, nil)

		got, err := q.Summary(context.Background(), "2026-07-01", "2026-07-31")
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no dates means an unbounded window", func(t *testing.T) {
		want := &queries.RevenueSummary{Bookings: 9}
		readStore.EXPECT().
			SummaryByPeriod(gomock.Any(), (*time.Time)(nil), (*time.Time)(nil)).
			Return(want, nil)

		got, err := q.Summary(context.Background(), "", "")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("a single bound is forwarded on its own", func(t *testing.T) {
		start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		readStore.EXPECT().
			SummaryByPeriod(gomock.Any(), &start, (*time.Time)(nil)).
			Return(&queries.RevenueSummary{}, nil)

		_, err := q.Summary(context.Background(), "2026-07-01", "")
		require.NoError(t, err)
	})

	t.Run("malformed dates", func(t *testing.T) {
		_, err := q.Summary(context.Background(), "07/01/2026", "2026-07-31")
		require.ErrorIs(t, err, queries.ErrInvalidPeriod)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := q.Summary(context.Background(), "2026-07-31", "2026-07-01")
		require.ErrorIs(t, err, queries.ErrInvalidPeriod)
	})
}

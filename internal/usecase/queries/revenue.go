package queries

import (
	"context"
	"time"

	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/pkg/money"
)

var (
	ErrInvalidGranularity = errs.New("granularity must be day or month")
	ErrInvalidPeriod      = errs.New("invalid report period")
)

// Granularity is whitelisted here because the read store interpolates it
// into date_trunc.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// defaultSeriesWindow is the trailing window used when no range is given.
const defaultSeriesWindow = 180 * 24 * time.Hour

func NewGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityMonth:
		return Granularity(s), nil
	case "":
		return GranularityMonth, nil
	}
	return "", ErrInvalidGranularity
}

// BucketAmounts carries the per-bucket sums over completed bookings,
// in cents, keyed by bucket label in the read store.
type BucketAmounts struct {
	TotalCents  int64
	FeeCents    int64
	PayoutCents int64
}

// RevenueSeries is the bucketed report: parallel arrays indexed by Labels.
// Bookings counts every booking created in the bucket regardless of status;
// the money columns sum only bookings completed in the bucket.
type RevenueSeries struct {
	Granularity  string        `json:"granularity"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Labels       []string      `json:"labels"`
	Bookings     []int64       `json:"bookings"`
	TotalRevenue []string      `json:"total_revenue"`
	PlatformFees []string      `json:"platform_fees"`
	OwnerPayouts []string      `json:"owner_payouts"`
	Totals       RevenueTotals `json:"totals"`
}

type RevenueTotals struct {
	Bookings     int64  `json:"bookings"`
	TotalRevenue string `json:"total_revenue"`
	PlatformFees string `json:"platform_fees"`
	OwnerPayouts string `json:"owner_payouts"`
}

// RevenueSummary aggregates completed bookings whose rental dates fall in
// the requested window.
type RevenueSummary struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Bookings     int64  `json:"bookings"`
	TotalRevenue string `json:"total_revenue"`
	PlatformFees string `json:"platform_fees"`
	OwnerPayouts string `json:"owner_payouts"`
}

type RevenueQueries interface {
	Series(ctx context.Context, granularity Granularity, from, to *time.Time) (*RevenueSeries, error)
	Summary(ctx context.Context, startDate, endDate string) (*RevenueSummary, error)
}

type RevenueReadStore interface {
	CreatedCounts(ctx context.Context, granularity Granularity, from, to time.Time) (map[string]int64, error)
	CompletedAmounts(ctx context.Context, granularity Granularity, from, to time.Time) (map[string]BucketAmounts, error)
	SummaryByPeriod(ctx context.Context, start, end *time.Time) (*RevenueSummary, error)
}

type revenueQueriesImpl struct {
	readStore RevenueReadStore
	clock     clock.Clock
}

func NewRevenueQueries(readStore RevenueReadStore, clk clock.Clock) RevenueQueries {
	return &revenueQueriesImpl{readStore: readStore, clock: clk}
}

func (q *revenueQueriesImpl) Series(ctx context.Context, granularity Granularity, from, to *time.Time) (*RevenueSeries, error) {
	g, err := NewGranularity(string(granularity))
	if err != nil {
		return nil, err
	}

	end := q.clock.Now().UTC()
	if to != nil {
		end = to.UTC()
	}
	start := end.Add(-defaultSeriesWindow)
	if from != nil {
		start = from.UTC()
	}
	if start.After(end) {
		return nil, ErrInvalidPeriod
	}
	start = truncateToBucket(start, g)
	end = truncateToBucket(end, g)

	counts, err := q.readStore.CreatedCounts(ctx, g, start, nextBucket(end, g))
	if err != nil {
		return nil, err
	}
	amounts, err := q.readStore.CompletedAmounts(ctx, g, start, nextBucket(end, g))
	if err != nil {
		return nil, err
	}

	series := &RevenueSeries{
		Granularity:  string(g),
		StartDate:    formatBucketLabel(start, g),
		EndDate:      formatBucketLabel(end, g),
		Labels:       []string{},
		Bookings:     []int64{},
		TotalRevenue: []string{},
		PlatformFees: []string{},
		OwnerPayouts: []string{},
	}

	var totalCents, feeCents, payoutCents int64
	for t := start; !t.After(end); t = nextBucket(t, g) {
		label := formatBucketLabel(t, g)
		bucket := amounts[label]

		series.Labels = append(series.Labels, label)
		series.Bookings = append(series.Bookings, counts[label])
		series.TotalRevenue = append(series.TotalRevenue, money.FromCents(bucket.TotalCents).String())
		series.PlatformFees = append(series.PlatformFees, money.FromCents(bucket.FeeCents).String())
		series.OwnerPayouts = append(series.OwnerPayouts, money.FromCents(bucket.PayoutCents).String())

		series.Totals.Bookings += counts[label]
		totalCents += bucket.TotalCents
		feeCents += bucket.FeeCents
		payoutCents += bucket.PayoutCents
	}
	series.Totals.TotalRevenue = money.FromCents(totalCents).String()
	series.Totals.PlatformFees = money.FromCents(feeCents).String()
	series.Totals.OwnerPayouts = money.FromCents(payoutCents).String()
	return series, nil
}

func truncateToBucket(t time.Time, g Granularity) time.Time {
	if g == GranularityMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextBucket(t time.Time, g Granularity) time.Time {
	if g == GranularityMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func formatBucketLabel(t time.Time, g Granularity) string {
	if g == GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// Summary treats both dates as optional filters: an empty value leaves the
// corresponding side of the window unbounded.
func (q *revenueQueriesImpl) Summary(ctx context.Context, startDate, endDate string) (*RevenueSummary, error) {
	start, err := parseOptionalDate(startDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}
	end, err := parseOptionalDate(endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, ErrInvalidPeriod
	}
	return q.readStore.SummaryByPeriod(ctx, start, end)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

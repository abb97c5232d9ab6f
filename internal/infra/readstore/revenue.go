package readstore

import (
	"context"
	"time"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/queries"
)

type RevenueReadStore struct {
	db infra.DBTX
}

func NewRevenueReadStore(db infra.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: db}
}

// CreatedCounts buckets every booking by creation time, regardless of
// status. The granularity is validated upstream before it reaches
// date_trunc.
func (r *RevenueReadStore) CreatedCounts(ctx context.Context, granularity queries.Granularity, from, to time.Time) (map[string]int64, error) {
	query := `
		SELECT date_trunc('` + string(granularity) + `', b.created_at AT TIME ZONE 'UTC') AS bucket,
			COUNT(*)
		FROM bookings b
		WHERE b.created_at >= $1 AND b.created_at < $2
		GROUP BY bucket`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by bucket", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			bucket time.Time
			count  int64
		)
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count bucket", err)
		}
		counts[formatBucket(bucket, granularity)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking count buckets", err)
	}
	return counts, nil
}

// CompletedAmounts buckets completed bookings by completion time and sums
// their money columns.
func (r *RevenueReadStore) CompletedAmounts(ctx context.Context, granularity queries.Granularity, from, to time.Time) (map[string]queries.BucketAmounts, error) {
	query := `
		SELECT date_trunc('` + string(granularity) + `', b.updated_at AT TIME ZONE 'UTC') AS bucket,
			COALESCE(SUM(b.total_cost_cents), 0),
			COALESCE(SUM(b.platform_fee_cents), 0),
			COALESCE(SUM(b.owner_payout_cents), 0)
		FROM bookings b
		WHERE b.status = 'completed'
		  AND b.updated_at >= $1 AND b.updated_at < $2
		GROUP BY bucket`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue buckets", err)
	}
	defer rows.Close()

	amounts := make(map[string]queries.BucketAmounts)
	for rows.Next() {
		var (
			bucket                            time.Time
			totalCents, feeCents, payoutCents int64
		)
		if err := rows.Scan(&bucket, &totalCents, &feeCents, &payoutCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue bucket", err)
		}
		amounts[formatBucket(bucket, granularity)] = queries.BucketAmounts{
			TotalCents:  totalCents,
			FeeCents:    feeCents,
			PayoutCents: payoutCents,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue buckets", err)
	}
	return amounts, nil
}

func formatBucket(t time.Time, granularity queries.Granularity) string {
	t = t.UTC()
	if granularity == queries.GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// SummaryByPeriod totals completed bookings whose rental window overlaps
// the requested dates. A nil bound leaves that side of the window open.
func (r *RevenueReadStore) SummaryByPeriod(ctx context.Context, start, end *time.Time) (*queries.RevenueSummary, error) {
	const query = `
		SELECT COUNT(*),
			COALESCE(SUM(b.total_cost_cents), 0),
			COALESCE(SUM(b.platform_fee_cents), 0),
			COALESCE(SUM(b.owner_payout_cents), 0)
		FROM bookings b
		WHERE b.status = 'completed'
		  AND ($1::date IS NULL OR b.end_date >= $1)
		  AND ($2::date IS NULL OR b.start_date <= $2)`

	var (
		count                             int64
		totalCents, feeCents, payoutCents int64
	)
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&count, &totalCents, &feeCents, &payoutCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue summary", err)
	}
	return &queries.RevenueSummary{
		StartDate:    formatOptionalDate(start),
		EndDate:      formatOptionalDate(end),
		Bookings:     count,
		TotalRevenue: money.FromCents(totalCents).String(),
		PlatformFees: money.FromCents(feeCents).String(),
		OwnerPayouts: money.FromCents(payoutCents).String(),
	}, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

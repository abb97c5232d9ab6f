package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct {
	db infra.DBTX
}

func NewDashboardReadStore(db infra.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) AdminCounts(ctx context.Context) (*queries.AdminDashboard, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM cars),
			(SELECT COUNT(*) FROM cars WHERE status = 'pending_approval'),
			(SELECT COUNT(*) FROM bookings WHERE status IN ('pending', 'approved')),
			(SELECT COUNT(*) FROM bookings WHERE status = 'completed'),
			(SELECT COUNT(*) FROM reports WHERE status = 'pending'),
			(SELECT COUNT(*) FROM tickets WHERE status IN ('open', 'in_progress'))`

	d := &queries.AdminDashboard{}
	err := r.db.QueryRow(ctx, query).Scan(
		&d.TotalUsers, &d.TotalCars, &d.PendingCars, &d.ActiveBookings,
		&d.CompletedBookings, &d.PendingReports, &d.OpenTickets,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load admin dashboard", err)
	}
	return d, nil
}

func (r *DashboardReadStore) OwnerCounts(ctx context.Context, ownerID uuid.UUID) (*queries.OwnerDashboard, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM cars WHERE owner_id = $1),
			(SELECT COUNT(*) FROM bookings b JOIN cars c ON c.id = b.car_id
				WHERE c.owner_id = $1 AND b.status = 'pending'),
			(SELECT COUNT(*) FROM bookings b JOIN cars c ON c.id = b.car_id
				WHERE c.owner_id = $1 AND b.status = 'approved' AND b.start_date >= CURRENT_DATE),
			(SELECT COALESCE(SUM(b.owner_payout_cents), 0) FROM bookings b JOIN cars c ON c.id = b.car_id
				WHERE c.owner_id = $1 AND b.status = 'completed')`

	var (
		d             queries.OwnerDashboard
		earningsCents int64
	)
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&d.Cars, &d.PendingRequests, &d.UpcomingBookings, &earningsCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load owner dashboard", err)
	}
	d.TotalEarnings = money.FromCents(earningsCents).String()
	return &d, nil
}

package readstore

import (
	"context"
	"time"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewQuery = `
	SELECT b.id, b.user_id, ru.username, b.car_id, c.make, c.model, c.owner_id,
		b.start_date, b.end_date, b.total_cost_cents, b.platform_fee_cents,
		b.owner_payout_cents, b.status, b.points_awarded_at, b.created_at, b.updated_at
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	JOIN users ru ON ru.id = b.user_id`

const dateLayout = "2006-01-02"

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	defer rows.Close()

	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *BookingReadStore) FindByCarOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewQuery+` WHERE c.owner_id = $1 ORDER BY b.created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner bookings", err)
	}
	defer rows.Close()

	return scanBookingViews(rows)
}

func (r *BookingReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.car_id, c.make, c.model, b.start_date, b.end_date,
			b.total_cost_cents, b.status, b.created_at
		FROM bookings b
		JOIN cars c ON c.id = b.car_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, renterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list renter bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item       queries.BookingListItem
			start, end time.Time
			totalCents int64
		)
		if err := rows.Scan(&item.ID, &item.CarID, &item.CarMake, &item.CarModel,
			&start, &end, &totalCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.StartDate = start.Format(dateLayout)
		item.EndDate = end.Format(dateLayout)
		item.TotalCost = money.FromCents(totalCents).String()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

type bookingRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookingViews(rows bookingRows) ([]*queries.BookingView, error) {
	var result []*queries.BookingView
	for rows.Next() {
		var (
			view                              queries.BookingView
			start, end                        time.Time
			totalCents, feeCents, payoutCents int64
		)
		if err := rows.Scan(&view.ID, &view.UserID, &view.RenterUsername, &view.CarID,
			&view.CarMake, &view.CarModel, &view.OwnerID, &start, &end,
			&totalCents, &feeCents, &payoutCents, &view.Status,
			&view.PointsAwardedAt, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		view.StartDate = start.Format(dateLayout)
		view.EndDate = end.Format(dateLayout)
		view.TotalCost = money.FromCents(totalCents).String()
		view.PlatformFee = money.FromCents(feeCents).String()
		view.OwnerPayout = money.FromCents(payoutCents).String()
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return result, nil
}

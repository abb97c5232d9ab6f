package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, user_id, car_id, start_date, end_date,
			total_cost_cents, platform_fee_cents, owner_payout_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.CarID(), b.Dates().Start(), b.Dates().End(),
		b.Quote().TotalCost.Cents(), b.Quote().PlatformFee.Cents(), b.Quote().OwnerPayout.Cents(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, car_id, start_date, end_date,
			total_cost_cents, platform_fee_cents, owner_payout_cents,
			status, points_awarded_at, created_at, updated_at
		FROM bookings WHERE id = $1`

	var (
		bookingID, userID, carID          uuid.UUID
		startDate, endDate                time.Time
		totalCents, feeCents, payoutCents int64
		status                            string
		pointsAwardedAt                   *time.Time
		createdAt, updatedAt              time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &userID, &carID, &startDate, &endDate,
		&totalCents, &feeCents, &payoutCents, &status, &pointsAwardedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	dates, err := booking.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking dates in database", err)
	}
	st := booking.Status(status)
	if !st.IsValid() {
		return nil, infra.WrapRepoErr("invalid booking status in database", nil)
	}
	return booking.Reconstruct(
		bookingID, userID, carID, dates,
		money.FromCents(totalCents), money.FromCents(feeCents), money.FromCents(payoutCents),
		st, pointsAwardedAt, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, points_awarded_at = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, b.ID(), b.Status().String(), b.PointsAwardedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// HasActiveOverlap runs the inclusive interval test against pending and
// approved bookings. Callers lock the car row first so two requests cannot
// both see a clear calendar.
func (r *BookingRepository) HasActiveOverlap(ctx context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, carID, dates.Start(), dates.End()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

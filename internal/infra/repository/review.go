package repository

import (
	"context"

	"driveshare/internal/domain/review"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db infra.DBTX
}

func NewReviewRepository(db infra.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, booking_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		rv.ID(), rv.BookingID(), rv.Rating().Int(), rv.Comment(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

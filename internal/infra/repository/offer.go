package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/offer"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type OfferRepository struct {
	db infra.DBTX
}

func NewOfferRepository(db infra.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error) {
	const query = `
		INSERT INTO offers (id, title, description, points_required, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		o.ID(), o.Title(), o.Description(), o.PointsRequired(), o.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	const query = `
		SELECT id, title, description, points_required, is_active, created_at, updated_at
		FROM offers WHERE id = $1`

	var (
		offerID              uuid.UUID
		title, description   string
		pointsRequired       int
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offerID, &title, &description, &pointsRequired, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	return offer.Reconstruct(offerID, title, description, pointsRequired, isActive, createdAt, updatedAt), nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	const query = `
		UPDATE offers
		SET title = $2, description = $3, points_required = $4, is_active = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		o.ID(), o.Title(), o.Description(), o.PointsRequired(), o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

type RedemptionRepository struct {
	db infra.DBTX
}

func NewRedemptionRepository(db infra.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

func (r *RedemptionRepository) Create(ctx context.Context, userID, offerID uuid.UUID, pointsSpent int) (uuid.UUID, error) {
	const query = `
		INSERT INTO redemptions (user_id, offer_id, points_spent)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, userID, offerID, pointsSpent).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create redemption", err)
	}
	return id, nil
}

package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferReadStore struct {
	db infra.DBTX
}

func NewOfferReadStore(db infra.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	const query = `
		SELECT id, title, description, points_required, is_active, created_at
		FROM offers WHERE id = $1`

	view := &queries.OfferView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Title, &view.Description, &view.PointsRequired,
		&view.IsActive, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	return view, nil
}

func (r *OfferReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.OfferView, error) {
	const query = `
		SELECT id, title, description, points_required, is_active, created_at
		FROM offers
		WHERE NOT $1 OR is_active
		ORDER BY points_required ASC, created_at DESC`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var result []*queries.OfferView
	for rows.Next() {
		item := &queries.OfferView{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.PointsRequired, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return result, nil
}

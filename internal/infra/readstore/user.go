package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, username, email, role, is_suspended
		FROM users WHERE id = $1`

	view := &queries.AuthorizedUserView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Username, &view.Email, &view.Role, &view.IsSuspended,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, username, email, role, is_suspended, password_hash
		FROM users WHERE email = $1`

	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Username, &view.Email, &view.Role, &view.IsSuspended, &passwordHash,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	const query = `
		SELECT id, username, email, role, first_name, last_name, phone_number,
			address, is_verified, is_suspended, points, created_at
		FROM users WHERE id = $1`

	view := &queries.UserProfileView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Username, &view.Email, &view.Role, &view.FirstName, &view.LastName,
		&view.PhoneNumber, &view.Address, &view.IsVerified, &view.IsSuspended,
		&view.Points, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return view, nil
}

func (r *UserReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.UserListItem, error) {
	const query = `
		SELECT id, username, email, role, is_verified, is_suspended, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserListItem
	for rows.Next() {
		item := &queries.UserListItem{}
		if err := rows.Scan(&item.ID, &item.Username, &item.Email, &item.Role,
			&item.IsVerified, &item.IsSuspended, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

func (r *UserReadStore) ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RedemptionView, error) {
	const query = `
		SELECT r.id, r.offer_id, o.title, r.points_spent, r.created_at
		FROM redemptions r
		JOIN offers o ON o.id = r.offer_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	var result []*queries.RedemptionView
	for rows.Next() {
		item := &queries.RedemptionView{}
		if err := rows.Scan(&item.ID, &item.OfferID, &item.OfferTitle,
			&item.PointsSpent, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemption rows", err)
	}
	return result, nil
}

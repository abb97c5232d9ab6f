package queries

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errs.New("user not found")
	ErrUserSuspended = errs.New("user suspended")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
	ListUsers(ctx context.Context, limit, offset int32) ([]*UserListItem, error)
	ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	List(ctx context.Context, limit, offset int32) ([]*UserListItem, error)
	ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if u.IsSuspended {
		return nil, ErrUserSuspended
	}
	return u, nil
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	profile, err := q.readStore.FindProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, limit, offset int32) ([]*UserListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.readStore.List(ctx, limit, offset)
}

func (q *userQueriesImpl) ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error) {
	return q.readStore.ListRedemptionsByUser(ctx, userID)
}

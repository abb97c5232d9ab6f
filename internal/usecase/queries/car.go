package queries

import (
	"context"

	"driveshare/internal/domain/user"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/authz"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound = errs.New("car not found")
	ErrCarAccess   = errs.New("car access denied")
)

// CarSearchFilter narrows the public marketplace listing. Only available
// cars are searched.
type CarSearchFilter struct {
	Location  *string
	Make      *string
	MaxRate   *int64 // cents
	MinSeats  *int
	StartDate *string // YYYY-MM-DD, both dates or neither
	EndDate   *string
	Limit     int32
	Offset    int32
}

type CarQueries interface {
	Search(ctx context.Context, filter CarSearchFilter) ([]*CarListItem, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*CarView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarListItem, error)
	ListPendingApproval(ctx context.Context) ([]*CarListItem, error)
	ListReviews(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error)
}

type CarReadStore interface {
	Search(ctx context.Context, filter CarSearchFilter) ([]*CarListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarListItem, error)
	FindByStatus(ctx context.Context, status string) ([]*CarListItem, error)
	FindReviewsByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{readStore: readStore}
}

func (q *carQueriesImpl) Search(ctx context.Context, filter CarSearchFilter) ([]*CarListItem, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return q.readStore.Search(ctx, filter)
}

// GetByID hides listings that are not on the marketplace from everyone but
// the owner and staff.
func (q *carQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*CarView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	if view.Status != "available" && view.OwnerID != actorID && !authz.IsStaff(actorRole) {
		return nil, ErrCarNotFound
	}
	return view, nil
}

func (q *carQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CarListItem, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}

func (q *carQueriesImpl) ListPendingApproval(ctx context.Context) ([]*CarListItem, error) {
	return q.readStore.FindByStatus(ctx, "pending_approval")
}

func (q *carQueriesImpl) ListReviews(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error) {
	return q.readStore.FindReviewsByCar(ctx, carID)
}

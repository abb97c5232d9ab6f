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
	ErrTicketNotFound = errs.New("ticket not found")
	ErrTicketAccess   = errs.New("ticket access denied")
)

type TicketQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*TicketView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error)
	ListAll(ctx context.Context, status *string) ([]*TicketListItem, error)
}

type TicketReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error)
	FindAll(ctx context.Context, status *string) ([]*TicketListItem, error)
}

type ticketQueriesImpl struct {
	readStore TicketReadStore
}

func NewTicketQueries(readStore TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{readStore: readStore}
}

// GetByID is visible to the requester and support staff.
func (q *ticketQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*TicketView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if view.UserID != actorID && !authz.Allow(actorRole, authz.ActionHandleTickets) {
		return nil, ErrTicketAccess
	}
	return view, nil
}

func (q *ticketQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error) {
	return q.readStore.FindByUser(ctx, userID)
}

func (q *ticketQueriesImpl) ListAll(ctx context.Context, status *string) ([]*TicketListItem, error) {
	return q.readStore.FindAll(ctx, status)
}

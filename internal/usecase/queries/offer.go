package queries

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferNotFound = errs.New("offer not found")

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListActive(ctx context.Context) ([]*OfferView, error)
	ListAll(ctx context.Context) ([]*OfferView, error)
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
}

func NewOfferQueries(readStore OfferReadStore) OfferQueries {
	return &offerQueriesImpl{readStore: readStore}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *offerQueriesImpl) ListActive(ctx context.Context) ([]*OfferView, error) {
	return q.readStore.FindAll(ctx, true)
}

func (q *offerQueriesImpl) ListAll(ctx context.Context) ([]*OfferView, error) {
	return q.readStore.FindAll(ctx, false)
}

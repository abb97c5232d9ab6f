package queries

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReportNotFound = errs.New("report not found")

type ReportQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReportView, error)
	List(ctx context.Context, status *string) ([]*ReportView, error)
}

type ReportReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReportView, error)
	FindAll(ctx context.Context, status *string) ([]*ReportView, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReportView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reportQueriesImpl) List(ctx context.Context, status *string) ([]*ReportView, error) {
	return q.readStore.FindAll(ctx, status)
}

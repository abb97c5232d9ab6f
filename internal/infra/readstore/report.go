package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReportReadStore struct {
	db infra.DBTX
}

func NewReportReadStore(db infra.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

const reportViewColumns = `r.id, r.reporter_id, u.username, r.report_type, r.reason,
	r.reported_user_id, r.reported_car_id, r.status, r.admin_notes, r.resolved_by, r.resolved_at, r.created_at`

func (r *ReportReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReportView, error) {
	const query = `
		SELECT ` + reportViewColumns + `
		FROM reports r
		JOIN users u ON u.id = r.reporter_id
		WHERE r.id = $1`

	view := &queries.ReportView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ReporterID, &view.ReporterUsername, &view.ReportType, &view.Reason,
		&view.ReportedUserID, &view.ReportedCarID, &view.Status, &view.AdminNotes,
		&view.ResolvedBy, &view.ResolvedAt, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find report", err)
	}
	return view, nil
}

func (r *ReportReadStore) FindAll(ctx context.Context, status *string) ([]*queries.ReportView, error) {
	const query = `
		SELECT ` + reportViewColumns + `
		FROM reports r
		JOIN users u ON u.id = r.reporter_id
		WHERE $1::text IS NULL OR r.status = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reports", err)
	}
	defer rows.Close()

	var result []*queries.ReportView
	for rows.Next() {
		view := &queries.ReportView{}
		if err := rows.Scan(&view.ID, &view.ReporterID, &view.ReporterUsername,
			&view.ReportType, &view.Reason, &view.ReportedUserID, &view.ReportedCarID,
			&view.Status, &view.AdminNotes, &view.ResolvedBy, &view.ResolvedAt, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report rows", err)
	}
	return result, nil
}

package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/report"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type ReportRepository struct {
	db infra.DBTX
}

func NewReportRepository(db infra.DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *report.Report) (uuid.UUID, error) {
	const query = `
		INSERT INTO reports (id, reporter_id, report_type, reason, reported_user_id, reported_car_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		rep.ID(), rep.ReporterID(), rep.TargetType().String(), rep.Reason(),
		rep.TargetUserID(), rep.TargetCarID(), rep.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create report", err)
	}
	return id, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	const query = `
		SELECT id, reporter_id, report_type, reason, reported_user_id, reported_car_id,
			status, admin_notes, resolved_by, resolved_at, created_at
		FROM reports WHERE id = $1`

	var (
		reportID, reporterID       uuid.UUID
		targetType, reason, status string
		targetUserID, targetCarID  *uuid.UUID
		adminNotes                 *string
		resolvedBy                 *uuid.UUID
		resolvedAt                 *time.Time
		createdAt                  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reportID, &reporterID, &targetType, &reason, &targetUserID, &targetCarID,
		&status, &adminNotes, &resolvedBy, &resolvedAt, &createdAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find report", err)
	}

	tt, err := report.NewTargetType(targetType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid report type in database", err)
	}
	st, err := report.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid report status in database", err)
	}
	return report.Reconstruct(reportID, reporterID, tt, targetUserID, targetCarID,
		reason, st, adminNotes, resolvedBy, resolvedAt, createdAt), nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *report.Report) error {
	const query = `
		UPDATE reports
		SET status = $2, admin_notes = $3, resolved_by = $4, resolved_at = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		rep.ID(), rep.Status().String(), rep.AdminNotes(), rep.ResolvedBy(), rep.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update report", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("report not found", nil, infra.KindNotFound)
	}
	return nil
}

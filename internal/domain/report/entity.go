package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyReason = errors.New("report reason must not be empty")

type Report struct {
	id           uuid.UUID
	reporterID   uuid.UUID
	targetType   TargetType
	targetUserID *uuid.UUID
	targetCarID  *uuid.UUID
	reason       string
	status       Status
	adminNotes   *string
	resolvedBy   *uuid.UUID
	resolvedAt   *time.Time
	createdAt    time.Time
}

// NewUserReport files a report against a user account.
func NewUserReport(reporterID, targetUserID uuid.UUID, reason string) (*Report, error) {
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &Report{
		id:           uuid.New(),
		reporterID:   reporterID,
		targetType:   TargetUser,
		targetUserID: &targetUserID,
		reason:       reason,
		status:       StatusPending,
	}, nil
}

// NewCarReport files a report against a listing.
func NewCarReport(reporterID, targetCarID uuid.UUID, reason string) (*Report, error) {
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &Report{
		id:          uuid.New(),
		reporterID:  reporterID,
		targetType:  TargetCar,
		targetCarID: &targetCarID,
		reason:      reason,
		status:      StatusPending,
	}, nil
}

func Reconstruct(
	id, reporterID uuid.UUID,
	targetType TargetType,
	targetUserID, targetCarID *uuid.UUID,
	reason string,
	status Status,
	adminNotes *string,
	resolvedBy *uuid.UUID,
	resolvedAt *time.Time,
	createdAt time.Time,
) *Report {
	return &Report{
		id:           id,
		reporterID:   reporterID,
		targetType:   targetType,
		targetUserID: targetUserID,
		targetCarID:  targetCarID,
		reason:       reason,
		status:       status,
		adminNotes:   adminNotes,
		resolvedBy:   resolvedBy,
		resolvedAt:   resolvedAt,
		createdAt:    createdAt,
	}
}

// Resolve closes the report with an action taken. Only a pending report
// can be reviewed.
func (r *Report) Resolve(adminID uuid.UUID, notes string, now time.Time) error {
	return r.review(StatusResolved, adminID, notes, now)
}

// Dismiss closes the report without action.
func (r *Report) Dismiss(adminID uuid.UUID, notes string, now time.Time) error {
	return r.review(StatusDismissed, adminID, notes, now)
}

func (r *Report) review(to Status, adminID uuid.UUID, notes string, now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyReviewed
	}
	r.status = to
	if notes != "" {
		r.adminNotes = &notes
	}
	r.resolvedBy = &adminID
	r.resolvedAt = &now
	return nil
}

// Target returns the reported user or car id depending on the target type.
func (r *Report) Target() (uuid.UUID, error) {
	switch r.targetType {
	case TargetUser:
		if r.targetUserID == nil {
			return uuid.Nil, ErrTargetMismatch
		}
		return *r.targetUserID, nil
	case TargetCar:
		if r.targetCarID == nil {
			return uuid.Nil, ErrTargetMismatch
		}
		return *r.targetCarID, nil
	}
	return uuid.Nil, ErrInvalidTargetType
}

func (r *Report) ID() uuid.UUID            { return r.id }
func (r *Report) ReporterID() uuid.UUID    { return r.reporterID }
func (r *Report) TargetType() TargetType   { return r.targetType }
func (r *Report) TargetUserID() *uuid.UUID { return r.targetUserID }
func (r *Report) TargetCarID() *uuid.UUID  { return r.targetCarID }
func (r *Report) Reason() string           { return r.reason }
func (r *Report) Status() Status           { return r.status }
func (r *Report) AdminNotes() *string      { return r.adminNotes }
func (r *Report) ResolvedBy() *uuid.UUID   { return r.resolvedBy }
func (r *Report) ResolvedAt() *time.Time   { return r.resolvedAt }
func (r *Report) CreatedAt() time.Time     { return r.createdAt }

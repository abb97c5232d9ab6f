package repository

import (
	"context"
	"time"

	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db infra.DBTX
}

func NewNotificationRepository(db infra.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateJob enqueues an outbox row in the caller's transaction, so the
// notification exists iff the business write committed.
func (r *NotificationRepository) CreateJob(ctx context.Context, recipientID uuid.UUID, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notifications (recipient_id, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, recipientID, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

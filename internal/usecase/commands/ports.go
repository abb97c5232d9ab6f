package commands

import (
	"context"
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// TokenStore denylists JWT IDs until their natural expiry so a logout takes
// effect before the access token runs out.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TicketEventPublisher fans a persisted reply out to live subscribers.
// Publishing happens after commit; a failed broadcast never rolls back the
// reply.
type TicketEventPublisher interface {
	PublishReply(ticketID uuid.UUID, reply *queries.TicketReplyView)
	PublishStatus(ticketID uuid.UUID, status string)
}

// Notification topics written to the outbox. The dispatcher matches on these
// verbatim.
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingRequested = "booking.requested"
	TopicBookingApproved  = "booking.approved"
	TopicBookingRejected  = "booking.rejected"
	TopicBookingCancelled = "booking.cancelled"
	TopicBookingCompleted = "booking.completed"
	TopicCarApproved      = "car.approved"
	TopicCarRejected      = "car.rejected"
	TopicCarRemoved       = "car.removed"
	TopicAccountSuspended = "account.suspended"
	TopicReportFiled      = "report.filed"
	TopicOfferRedeemed    = "offer.redeemed"
)

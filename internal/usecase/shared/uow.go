package shared

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/car"
	"driveshare/internal/domain/offer"
	"driveshare/internal/domain/report"
	"driveshare/internal/domain/review"
	"driveshare/internal/domain/ticket"
	"driveshare/internal/domain/user"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Cars() CarRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Reports() ReportRepository
	Tickets() TicketRepository
	Offers() OfferRepository
	Redemptions() RedemptionRepository
	Notifications() NotificationRepository
	DB() infra.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	// ListIDsByRole backs notification fan-out to a whole role.
	ListIDsByRole(ctx context.Context, role user.Role) ([]uuid.UUID, error)
	AddPoints(ctx context.Context, id uuid.UUID, amount int) error
	// DeductPoints fails with KindConflict when the balance is short; the
	// balance check and the debit are one conditional UPDATE.
	DeductPoints(ctx context.Context, id uuid.UUID, amount int) error
}

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	// FindByIDForUpdate locks the car row so concurrent booking attempts
	// on the same car serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error)
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	DelistByOwner(ctx context.Context, ownerID uuid.UUID) error
	ReplaceImages(ctx context.Context, carID uuid.UUID, images []CarImage) error
	ReplaceFeatures(ctx context.Context, carID uuid.UUID, features []string) error
	ReplaceAvailability(ctx context.Context, carID uuid.UUID, windows []AvailabilityWindow) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	HasActiveOverlap(ctx context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *review.Review) (uuid.UUID, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type ReportRepository interface {
	Create(ctx context.Context, r *report.Report) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*report.Report, error)
	Update(ctx context.Context, r *report.Report) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Update(ctx context.Context, t *ticket.Ticket) error
	AddReply(ctx context.Context, r *ticket.Reply) (uuid.UUID, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Update(ctx context.Context, o *offer.Offer) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, userID, offerID uuid.UUID, pointsSpent int) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, recipientID uuid.UUID, topic string, payload []byte, runAt time.Time) error
}

package booking

import (
	"errors"
	"time"

	"driveshare/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrAlreadyTerminal      = errors.New("booking is already in a terminal state")
	ErrPointsAlreadyAwarded = errors.New("loyalty points already awarded for this booking")
)

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	carID           uuid.UUID
	dates           DateRange
	quote           Quote
	status          Status
	pointsAwardedAt *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a booking request. Auto-approve skips owner confirmation.
func NewBooking(userID, carID uuid.UUID, dates DateRange, quote Quote, autoApprove bool) *Booking {
	status := StatusPending
	if autoApprove {
		status = StatusApproved
	}
	return &Booking{
		id:     uuid.New(),
		userID: userID,
		carID:  carID,
		dates:  dates,
		quote:  quote,
		status: status,
	}
}

func Reconstruct(
	id, userID, carID uuid.UUID,
	dates DateRange,
	totalCost, platformFee, ownerPayout money.Money,
	status Status,
	pointsAwardedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:     id,
		userID: userID,
		carID:  carID,
		dates:  dates,
		quote: Quote{
			Days:        dates.Days(),
			TotalCost:   totalCost,
			PlatformFee: platformFee,
			OwnerPayout: ownerPayout,
		},
		status:          status,
		pointsAwardedAt: pointsAwardedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		if b.status.IsTerminal() {
			return ErrAlreadyTerminal
		}
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) Approve() error {
	return b.transition(StatusApproved)
}

func (b *Booking) Reject() error {
	return b.transition(StatusRejected)
}

func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled)
}

func (b *Booking) Complete() error {
	return b.transition(StatusCompleted)
}

// MarkPointsAwarded records the loyalty credit; awarding twice for one
// booking is a replay and is refused.
func (b *Booking) MarkPointsAwarded(now time.Time) error {
	if b.pointsAwardedAt != nil {
		return ErrPointsAlreadyAwarded
	}
	b.pointsAwardedAt = &now
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) CarID() uuid.UUID            { return b.carID }
func (b *Booking) Dates() DateRange            { return b.dates }
func (b *Booking) Quote() Quote                { return b.quote }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) PointsAwardedAt() *time.Time { return b.pointsAwardedAt }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

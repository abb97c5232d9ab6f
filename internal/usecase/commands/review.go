package commands

import (
	"context"
	"errors"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/review"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotEligible = errs.New("only completed bookings can be reviewed")
	ErrDuplicateReview    = errs.New("booking already has a review")
)

type ReviewCommands interface {
	Create(ctx context.Context, renterID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReviewCommands(uow shared.UnitOfWork) ReviewCommands {
	return &reviewCommandsImpl{uow: uow}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, renterID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingEntity, err := tx.Bookings().FindByID(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if bookingEntity.UserID() != renterID {
			return ErrNotBookingRenter
		}
		if bookingEntity.Status() != booking.StatusCompleted {
			return ErrBookingNotEligible
		}

		exists, err := tx.Reviews().ExistsForBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateReview
		}

		entity, err := review.NewReview(req.BookingID, req.Rating, req.Comment)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		createdID, err := tx.Reviews().Create(ctx, entity)
		if err != nil {
			return err
		}
		id = createdID
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Concurrent submit lost the race on the unique booking_id.
			return uuid.Nil, ErrDuplicateReview
		case errors.Is(err, ErrNotBookingRenter),
			errors.Is(err, ErrBookingNotEligible),
			errors.Is(err, ErrDuplicateReview),
			errors.Is(err, ErrDomainValidation):
			return uuid.Nil, err
		default:
			return uuid.Nil, errs.Mark(err, ErrDatabaseFailed)
		}
	}
	return id, nil
}

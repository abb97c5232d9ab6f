package commands

import (
	"context"
	"encoding/json"
	"errors"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/user"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrCarUnavailable     = errs.New("car is not available for booking")
	ErrBookingConflict    = errs.New("car is already booked for these dates")
	ErrOwnCarBooking      = errs.New("cannot book your own car")
	ErrNotBookingOwner    = errs.New("not the owner of the booked car")
	ErrNotBookingRenter   = errs.New("not the renter of this booking")
	ErrInvalidBookingDate = errs.New("invalid booking dates")
)

type BookingCommands interface {
	Create(ctx context.Context, renterID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Approve(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
	Reject(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
	Cancel(ctx context.Context, renterID uuid.UUID, bookingID uuid.UUID) error
	Complete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow              shared.UnitOfWork
	bookingQueries   queries.BookingQueries
	pricer           booking.Pricer
	clock            clock.Clock
	completionPoints int
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	pricer booking.Pricer,
	clock clock.Clock,
	completionPoints int,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:              uow,
		bookingQueries:   bookingQueries,
		pricer:           pricer,
		clock:            clock,
		completionPoints: completionPoints,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, renterID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	dates, err := req.ToDates()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingDate)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock serializes concurrent requests for the same car; the
		// overlap check below is then race free.
		carEntity, err := tx.Cars().FindByIDForUpdate(ctx, req.CarID)
		if err != nil {
			return err
		}
		if !carEntity.IsAvailable() {
			return ErrCarUnavailable
		}
		if carEntity.OwnerID() == renterID {
			return ErrOwnCarBooking
		}

		taken, err := tx.Bookings().HasActiveOverlap(ctx, req.CarID, dates)
		if err != nil {
			return err
		}
		if taken {
			return ErrBookingConflict
		}

		quote := c.pricer.Quote(carEntity.DailyRate(), dates)
		entity := booking.NewBooking(renterID, req.CarID, dates, quote, carEntity.AutoApproveBookings())

		createdID, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			return err
		}
		bookingID = createdID

		payload, err := json.Marshal(map[string]string{"booking_id": createdID.String()})
		if err != nil {
			return err
		}

		// The renter always hears back; the owner only has something to
		// act on while the request is pending.
		renterTopic := TopicBookingCreated
		if entity.Status() == booking.StatusApproved {
			renterTopic = TopicBookingApproved
		}
		if err := tx.Notifications().CreateJob(ctx, renterID, renterTopic, payload, c.clock.Now()); err != nil {
			return err
		}
		if entity.Status() == booking.StatusPending {
			return tx.Notifications().CreateJob(ctx, carEntity.OwnerID(), TopicBookingRequested, payload, c.clock.Now())
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCarNotFound
		case errors.Is(err, ErrCarUnavailable),
			errors.Is(err, ErrOwnCarBooking),
			errors.Is(err, ErrBookingConflict):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseFailed)
		}
	}

	// Read-after-write so the caller gets the joined view.
	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error {
	return c.decide(ctx, actorID, actorRole, bookingID, true)
}

func (c *bookingCommandsImpl) Reject(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error {
	return c.decide(ctx, actorID, actorRole, bookingID, false)
}

func (c *bookingCommandsImpl) decide(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID, approve bool) error {
	topic := TopicBookingApproved
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}

		carEntity, err := tx.Cars().FindByID(ctx, entity.CarID())
		if err != nil {
			return err
		}
		if carEntity.OwnerID() != actorID && actorRole != user.RoleAdmin {
			return ErrNotBookingOwner
		}

		if approve {
			err = entity.Approve()
		} else {
			err = entity.Reject()
			topic = TopicBookingRejected
		}
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]string{"booking_id": bookingID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, entity.UserID(), topic, payload, c.clock.Now())
	})
	return c.mapBookingErr(err)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, renterID uuid.UUID, bookingID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if entity.UserID() != renterID {
			return ErrNotBookingRenter
		}
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return err
		}

		carEntity, err := tx.Cars().FindByID(ctx, entity.CarID())
		if err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{"booking_id": bookingID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, carEntity.OwnerID(), TopicBookingCancelled, payload, c.clock.Now())
	})
	return c.mapBookingErr(err)
}

// Complete closes out a rental. Regular-role renters are credited loyalty
// points exactly once per booking.
func (c *bookingCommandsImpl) Complete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		carEntity, err := tx.Cars().FindByID(ctx, entity.CarID())
		if err != nil {
			return err
		}
		if carEntity.OwnerID() != actorID && actorRole != user.RoleAdmin {
			return ErrNotBookingOwner
		}

		if err := entity.Complete(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		renter, err := tx.Users().FindByID(ctx, entity.UserID())
		if err != nil {
			return err
		}
		awarded := 0
		if renter.Role() == user.RoleRegular && entity.PointsAwardedAt() == nil {
			if err := entity.MarkPointsAwarded(c.clock.Now()); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Users().AddPoints(ctx, entity.UserID(), c.completionPoints); err != nil {
				return err
			}
			awarded = c.completionPoints
		}
		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"booking_id":     bookingID.String(),
			"points_awarded": awarded,
		})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, entity.UserID(), TopicBookingCompleted, payload, c.clock.Now())
	})
	return c.mapBookingErr(err)
}

func (c *bookingCommandsImpl) mapBookingErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case errors.Is(err, ErrNotBookingOwner),
		errors.Is(err, ErrNotBookingRenter),
		errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

package commands

import (
	"context"
	"encoding/json"
	"errors"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/car"
	"driveshare/internal/domain/user"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/authz"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound = errs.New("car not found")
	ErrNotCarOwner = errs.New("not the car owner")
)

type CarCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, actorRole user.Role, req reqdto.CreateCarRequest) (uuid.UUID, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole user.Role, carID uuid.UUID, req reqdto.UpdateCarRequest) error
	Delete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, carID uuid.UUID) error
	Approve(ctx context.Context, actorRole user.Role, carID uuid.UUID) error
	Reject(ctx context.Context, actorRole user.Role, carID uuid.UUID) error
	Remove(ctx context.Context, actorRole user.Role, carID uuid.UUID) error
	SetMaintenance(ctx context.Context, actorID uuid.UUID, carID uuid.UUID, on bool) error
}

type carCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCarCommands(uow shared.UnitOfWork, clock clock.Clock) CarCommands {
	return &carCommandsImpl{uow: uow, clock: clock}
}

func (c *carCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, actorRole user.Role, req reqdto.CreateCarRequest) (uuid.UUID, error) {
	if actorRole != user.RoleOwner && actorRole != user.RoleAdmin {
		return uuid.Nil, ErrPermissionDenied
	}

	spec, err := req.ToSpec()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := car.NewCar(ownerID, spec)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Cars().Create(ctx, entity)
		if createErr != nil {
			return createErr
		}
		if err := tx.Cars().ReplaceImages(ctx, createdID, req.ImageList()); err != nil {
			return err
		}
		if err := tx.Cars().ReplaceFeatures(ctx, createdID, req.Features); err != nil {
			return err
		}
		windows, err := toAvailabilityWindows(req.Availability)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Cars().ReplaceAvailability(ctx, createdID, windows); err != nil {
			return err
		}
		id = createdID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDomainValidation) {
			return uuid.Nil, err
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDomainValidation)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseFailed)
	}
	return id, nil
}

func (c *carCommandsImpl) Update(ctx context.Context, actorID uuid.UUID, actorRole user.Role, carID uuid.UUID, req reqdto.UpdateCarRequest) error {
	spec, err := req.ToSpec()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Cars().FindByID(ctx, carID)
		if err != nil {
			return err
		}
		if entity.OwnerID() != actorID && actorRole != user.RoleAdmin {
			return ErrNotCarOwner
		}
		if err := entity.UpdateSpec(spec); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Cars().Update(ctx, entity); err != nil {
			return err
		}
		if err := tx.Cars().ReplaceImages(ctx, carID, req.ImageList()); err != nil {
			return err
		}
		if err := tx.Cars().ReplaceFeatures(ctx, carID, req.Features); err != nil {
			return err
		}
		windows, err := toAvailabilityWindows(req.Availability)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Cars().ReplaceAvailability(ctx, carID, windows)
	})
	return c.mapCarErr(err)
}

func (c *carCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, actorRole user.Role, carID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Cars().FindByID(ctx, carID)
		if err != nil {
			return err
		}
		if entity.OwnerID() != actorID && actorRole != user.RoleAdmin {
			return ErrNotCarOwner
		}
		return tx.Cars().Delete(ctx, carID)
	})
	return c.mapCarErr(err)
}

func (c *carCommandsImpl) Approve(ctx context.Context, actorRole user.Role, carID uuid.UUID) error {
	return c.reviewListing(ctx, actorRole, carID, true)
}

func (c *carCommandsImpl) Reject(ctx context.Context, actorRole user.Role, carID uuid.UUID) error {
	return c.reviewListing(ctx, actorRole, carID, false)
}

// Remove delists a live car as a moderation action and notifies the owner.
func (c *carCommandsImpl) Remove(ctx context.Context, actorRole user.Role, carID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionApproveCar) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Cars().FindByID(ctx, carID)
		if err != nil {
			return err
		}
		entity.Delist()
		if err := tx.Cars().Update(ctx, entity); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{"car_id": carID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, entity.OwnerID(), TopicCarRemoved, payload, c.clock.Now())
	})
	return c.mapCarErr(err)
}

func (c *carCommandsImpl) SetMaintenance(ctx context.Context, actorID uuid.UUID, carID uuid.UUID, on bool) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Cars().FindByID(ctx, carID)
		if err != nil {
			return err
		}
		if entity.OwnerID() != actorID {
			return ErrNotCarOwner
		}
		if on {
			err = entity.StartMaintenance()
		} else {
			err = entity.EndMaintenance()
		}
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Cars().Update(ctx, entity)
	})
	return c.mapCarErr(err)
}

func (c *carCommandsImpl) reviewListing(ctx context.Context, actorRole user.Role, carID uuid.UUID, approve bool) error {
	if !authz.Allow(actorRole, authz.ActionApproveCar) {
		return ErrPermissionDenied
	}

	topic := TopicCarApproved
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Cars().FindByID(ctx, carID)
		if err != nil {
			return err
		}
		if approve {
			err = entity.Approve()
		} else {
			err = entity.Reject()
			topic = TopicCarRejected
		}
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Cars().Update(ctx, entity); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{"car_id": carID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, entity.OwnerID(), topic, payload, c.clock.Now())
	})
	return c.mapCarErr(err)
}

func (c *carCommandsImpl) mapCarErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCarNotFound
	case errors.Is(err, ErrNotCarOwner), errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

func toAvailabilityWindows(reqs []reqdto.AvailabilityWindowRequest) ([]shared.AvailabilityWindow, error) {
	windows := make([]shared.AvailabilityWindow, 0, len(reqs))
	for _, w := range reqs {
		dates, err := booking.ParseDateRange(w.StartDate, w.EndDate)
		if err != nil {
			return nil, err
		}
		windows = append(windows, shared.AvailabilityWindow{Start: dates.Start(), End: dates.End()})
	}
	return windows, nil
}

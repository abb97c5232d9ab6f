package commands

import (
	"context"
	"encoding/json"
	"errors"

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
	ErrPermissionDenied = errs.New("permission denied")
	ErrDomainValidation = errs.New("domain validation error")
	ErrDatabaseFailed   = errs.New("database operation failed")
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
	BecomeOwner(ctx context.Context, userID uuid.UUID) error
	SuspendUser(ctx context.Context, actorRole user.Role, targetID uuid.UUID) error
	UnsuspendUser(ctx context.Context, actorRole user.Role, targetID uuid.UUID) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clock}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		u.UpdateProfile(req.FirstName, req.LastName, req.PhoneNumber, req.Address)
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseFailed)
	}
	return nil
}

func (c *userCommandsImpl) BecomeOwner(ctx context.Context, userID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := u.BecomeOwner(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, ErrDomainValidation) {
			return err
		}
		return errs.Mark(err, ErrDatabaseFailed)
	}
	return nil
}

func (c *userCommandsImpl) SuspendUser(ctx context.Context, actorRole user.Role, targetID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionManageUsers) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if err := u.Suspend(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}

		// A suspended owner's listings must not stay bookable.
		if u.Role() == user.RoleOwner {
			if err := tx.Cars().DelistByOwner(ctx, targetID); err != nil {
				return err
			}
		}

		payload, err := json.Marshal(map[string]string{"user_id": targetID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, targetID, TopicAccountSuspended, payload, c.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, ErrDomainValidation) {
			return err
		}
		return errs.Mark(err, ErrDatabaseFailed)
	}
	return nil
}

func (c *userCommandsImpl) UnsuspendUser(ctx context.Context, actorRole user.Role, targetID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionManageUsers) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if err := u.Unsuspend(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, ErrDomainValidation) {
			return err
		}
		return errs.Mark(err, ErrDatabaseFailed)
	}
	return nil
}

package commands

import (
	"context"
	"encoding/json"
	"errors"

	"driveshare/internal/domain/report"
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
	ErrReportNotFound       = errs.New("report not found")
	ErrReportTargetNotFound = errs.New("report target not found")
	ErrReportActionMismatch = errs.New("action does not match the report target")
)

type ReportCommands interface {
	Create(ctx context.Context, reporterID uuid.UUID, req reqdto.CreateReportRequest) (uuid.UUID, error)
	Resolve(ctx context.Context, adminID uuid.UUID, actorRole user.Role, reportID uuid.UUID, req reqdto.ResolveReportRequest) error
	Dismiss(ctx context.Context, adminID uuid.UUID, actorRole user.Role, reportID uuid.UUID) error
}

type reportCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReportCommands(uow shared.UnitOfWork, clock clock.Clock) ReportCommands {
	return &reportCommandsImpl{uow: uow, clock: clock}
}

func (c *reportCommandsImpl) Create(ctx context.Context, reporterID uuid.UUID, req reqdto.CreateReportRequest) (uuid.UUID, error) {
	targetType, err := report.NewTargetType(req.TargetType)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var entity *report.Report
		var err error
		switch targetType {
		case report.TargetUser:
			if _, err = tx.Users().FindByID(ctx, req.TargetID); err != nil {
				return err
			}
			entity, err = report.NewUserReport(reporterID, req.TargetID, req.Reason)
		case report.TargetCar:
			if _, err = tx.Cars().FindByID(ctx, req.TargetID); err != nil {
				return err
			}
			entity, err = report.NewCarReport(reporterID, req.TargetID, req.Reason)
		}
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		createdID, err := tx.Reports().Create(ctx, entity)
		if err != nil {
			return err
		}
		id = createdID

		// Every admin gets a job so the moderation queue is never silent.
		adminIDs, err := tx.Users().ListIDsByRole(ctx, user.RoleAdmin)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{
			"report_id":   createdID.String(),
			"target_type": targetType.String(),
			"target_id":   req.TargetID.String(),
		})
		if err != nil {
			return err
		}
		for _, adminID := range adminIDs {
			if err := tx.Notifications().CreateJob(ctx, adminID, TopicReportFiled, payload, c.clock.Now()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, ErrReportTargetNotFound
		case errors.Is(err, ErrDomainValidation):
			return uuid.Nil, err
		default:
			return uuid.Nil, errs.Mark(err, ErrDatabaseFailed)
		}
	}
	return id, nil
}

// Resolve marks a report reviewed and applies the chosen moderation action
// in the same transaction.
func (c *reportCommandsImpl) Resolve(ctx context.Context, adminID uuid.UUID, actorRole user.Role, reportID uuid.UUID, req reqdto.ResolveReportRequest) error {
	if !authz.Allow(actorRole, authz.ActionResolveReport) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reports().FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		if err := entity.Resolve(adminID, req.Notes, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reports().Update(ctx, entity); err != nil {
			return err
		}
		return c.applyAction(ctx, tx, entity, req.Action)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReportNotFound
	case errors.Is(err, ErrReportActionMismatch), errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

func (c *reportCommandsImpl) Dismiss(ctx context.Context, adminID uuid.UUID, actorRole user.Role, reportID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionResolveReport) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reports().FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		if err := entity.Dismiss(adminID, "", c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Reports().Update(ctx, entity)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReportNotFound
	case errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

func (c *reportCommandsImpl) applyAction(ctx context.Context, tx shared.Tx, entity *report.Report, action string) error {
	switch action {
	case "none":
		return nil

	case "suspend_user":
		if entity.TargetType() != report.TargetUser {
			return ErrReportActionMismatch
		}
		targetID, err := entity.Target()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		target, err := tx.Users().FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if err := target.Suspend(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Users().Update(ctx, target); err != nil {
			return err
		}
		if target.Role() == user.RoleOwner {
			if err := tx.Cars().DelistByOwner(ctx, targetID); err != nil {
				return err
			}
		}
		payload, err := json.Marshal(map[string]string{"user_id": targetID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, targetID, TopicAccountSuspended, payload, c.clock.Now())

	case "remove_car":
		if entity.TargetType() != report.TargetCar {
			return ErrReportActionMismatch
		}
		targetID, err := entity.Target()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		carEntity, err := tx.Cars().FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		carEntity.Delist()
		if err := tx.Cars().Update(ctx, carEntity); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]string{"car_id": targetID.String()})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, carEntity.OwnerID(), TopicCarRemoved, payload, c.clock.Now())

	// delete_car removes the row outright; dependent rows cascade.
	case "delete_car":
		if entity.TargetType() != report.TargetCar {
			return ErrReportActionMismatch
		}
		targetID, err := entity.Target()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if _, err := tx.Cars().FindByID(ctx, targetID); err != nil {
			return err
		}
		return tx.Cars().Delete(ctx, targetID)

	default:
		return ErrReportActionMismatch
	}
}

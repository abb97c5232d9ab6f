package commands

import (
	"context"
	"encoding/json"
	"errors"

	"driveshare/internal/domain/offer"
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
	ErrOfferNotFound       = errs.New("offer not found")
	ErrOfferNotRedeemable  = errs.New("offer cannot be redeemed")
	ErrInsufficientBalance = errs.New("not enough loyalty points")
)

type OfferCommands interface {
	Create(ctx context.Context, actorRole user.Role, req reqdto.CreateOfferRequest) (uuid.UUID, error)
	Update(ctx context.Context, actorRole user.Role, offerID uuid.UUID, req reqdto.UpdateOfferRequest) error
	Redeem(ctx context.Context, userID uuid.UUID, offerID uuid.UUID) (uuid.UUID, error)
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clock clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clock}
}

func (c *offerCommandsImpl) Create(ctx context.Context, actorRole user.Role, req reqdto.CreateOfferRequest) (uuid.UUID, error) {
	if !authz.Allow(actorRole, authz.ActionManageOffers) {
		return uuid.Nil, ErrPermissionDenied
	}

	entity, err := offer.NewOffer(req.Title, req.Description, req.PointsRequired)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Offers().Create(ctx, entity)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseFailed)
	}
	return id, nil
}

func (c *offerCommandsImpl) Update(ctx context.Context, actorRole user.Role, offerID uuid.UUID, req reqdto.UpdateOfferRequest) error {
	if !authz.Allow(actorRole, authz.ActionManageOffers) {
		return ErrPermissionDenied
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return err
		}
		if err := entity.Update(req.Title, req.Description, req.PointsRequired); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if req.IsActive != nil {
			if *req.IsActive {
				entity.Activate()
			} else {
				entity.Deactivate()
			}
		}
		return tx.Offers().Update(ctx, entity)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrOfferNotFound
	case errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

// Redeem spends loyalty points on an offer. The balance check and the debit
// are a single conditional update, so two concurrent redemptions cannot both
// succeed on an insufficient balance.
func (c *offerCommandsImpl) Redeem(ctx context.Context, userID uuid.UUID, offerID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return err
		}

		redeemer, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := entity.CanRedeem(redeemer.Points()); err != nil {
			if errors.Is(err, offer.ErrInsufficientPoints) {
				return errs.Mark(err, ErrInsufficientBalance)
			}
			return errs.Mark(err, ErrOfferNotRedeemable)
		}

		if err := tx.Users().DeductPoints(ctx, userID, entity.PointsRequired()); err != nil {
			return err
		}

		createdID, err := tx.Redemptions().Create(ctx, userID, offerID, entity.PointsRequired())
		if err != nil {
			return err
		}
		id = createdID

		payload, err := json.Marshal(map[string]any{
			"offer_id":     offerID.String(),
			"points_spent": entity.PointsRequired(),
		})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, userID, TopicOfferRedeemed, payload, c.clock.Now())
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, ErrOfferNotFound
		case infra.IsKind(err, infra.KindConflict):
			return uuid.Nil, ErrInsufficientBalance
		case errors.Is(err, ErrInsufficientBalance), errors.Is(err, ErrOfferNotRedeemable):
			return uuid.Nil, err
		default:
			return uuid.Nil, errs.Mark(err, ErrDatabaseFailed)
		}
	}
	return id, nil
}

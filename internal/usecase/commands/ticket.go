package commands

import (
	"context"
	"errors"

	"driveshare/internal/domain/ticket"
	"driveshare/internal/domain/user"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/authz"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound = errs.New("ticket not found")
	ErrTicketAccess   = errs.New("no access to this ticket")
)

type TicketCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateTicketRequest) (uuid.UUID, error)
	Reply(ctx context.Context, actorID uuid.UUID, actorRole user.Role, ticketID uuid.UUID, req reqdto.ReplyTicketRequest) (*queries.TicketReplyView, error)
	Assign(ctx context.Context, actorRole user.Role, ticketID uuid.UUID, assigneeID uuid.UUID) error
	Resolve(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error
	Close(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error
	Reopen(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error
}

type ticketCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher TicketEventPublisher
}

func NewTicketCommands(uow shared.UnitOfWork, publisher TicketEventPublisher) TicketCommands {
	return &ticketCommandsImpl{uow: uow, publisher: publisher}
}

func (c *ticketCommandsImpl) Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateTicketRequest) (uuid.UUID, error) {
	entity, err := ticket.NewTicket(userID, req.Subject, req.Body)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Tickets().Create(ctx, entity)
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

func (c *ticketCommandsImpl) Reply(ctx context.Context, actorID uuid.UUID, actorRole user.Role, ticketID uuid.UUID, req reqdto.ReplyTicketRequest) (*queries.TicketReplyView, error) {
	var view *queries.TicketReplyView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Tickets().FindByID(ctx, ticketID)
		if err != nil {
			return err
		}
		if entity.UserID() != actorID && !authz.Allow(actorRole, authz.ActionHandleTickets) {
			return ErrTicketAccess
		}

		reply, err := ticket.NewReply(entity, actorID, req.Message)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		replyID, err := tx.Tickets().AddReply(ctx, reply)
		if err != nil {
			return err
		}

		author, err := tx.Users().FindByID(ctx, actorID)
		if err != nil {
			return err
		}

		view = &queries.TicketReplyView{
			ID:             replyID,
			TicketID:       ticketID,
			SenderID:       actorID,
			SenderUsername: author.Username().String(),
			Message:        reply.Message(),
			CreatedAt:      reply.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrTicketNotFound
		case errors.Is(err, ErrTicketAccess), errors.Is(err, ErrDomainValidation):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseFailed)
		}
	}

	// Broadcast only after the reply is durable.
	c.publisher.PublishReply(ticketID, view)
	return view, nil
}

func (c *ticketCommandsImpl) Assign(ctx context.Context, actorRole user.Role, ticketID uuid.UUID, assigneeID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionHandleTickets) {
		return ErrPermissionDenied
	}
	return c.mutate(ctx, ticketID, func(t *ticket.Ticket) error {
		return t.Assign(assigneeID)
	})
}

func (c *ticketCommandsImpl) Resolve(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionHandleTickets) {
		return ErrPermissionDenied
	}
	return c.mutate(ctx, ticketID, func(t *ticket.Ticket) error {
		return t.Resolve()
	})
}

// Close and Reopen are status changes, and status is controlled by staff.
// Requesters signal they are done by replying, not by closing.
func (c *ticketCommandsImpl) Close(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionHandleTickets) {
		return ErrPermissionDenied
	}
	return c.mutate(ctx, ticketID, func(t *ticket.Ticket) error {
		return t.Close()
	})
}

func (c *ticketCommandsImpl) Reopen(ctx context.Context, actorRole user.Role, ticketID uuid.UUID) error {
	if !authz.Allow(actorRole, authz.ActionHandleTickets) {
		return ErrPermissionDenied
	}
	return c.mutate(ctx, ticketID, func(t *ticket.Ticket) error {
		return t.Reopen()
	})
}

func (c *ticketCommandsImpl) mutate(ctx context.Context, ticketID uuid.UUID, fn func(*ticket.Ticket) error) error {
	var status string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Tickets().FindByID(ctx, ticketID)
		if err != nil {
			return err
		}
		if err := fn(entity); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Tickets().Update(ctx, entity); err != nil {
			return err
		}
		status = entity.Status().String()
		return nil
	})
	if err != nil {
		return c.mapTicketErr(err)
	}

	c.publisher.PublishStatus(ticketID, status)
	return nil
}

func (c *ticketCommandsImpl) mapTicketErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrTicketNotFound
	case errors.Is(err, ErrTicketAccess), errors.Is(err, ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, ErrDatabaseFailed)
	}
}

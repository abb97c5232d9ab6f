package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/ticket"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type TicketRepository struct {
	db infra.DBTX
}

func NewTicketRepository(db infra.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error) {
	const query = `
		INSERT INTO tickets (id, user_id, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		t.ID(), t.UserID(), t.Subject(), t.Body(), t.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err)
	}
	return id, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	const query = `
		SELECT id, user_id, subject, message, status, assignee_id, created_at, updated_at
		FROM tickets WHERE id = $1`

	var (
		ticketID, userID      uuid.UUID
		subject, body, status string
		assigneeID            *uuid.UUID
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticketID, &userID, &subject, &body, &status, &assigneeID, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}

	st, err := ticket.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid ticket status in database", err)
	}
	return ticket.Reconstruct(ticketID, userID, subject, body, st, assigneeID, createdAt, updatedAt), nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	const query = `
		UPDATE tickets
		SET status = $2, assignee_id = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, t.ID(), t.Status().String(), t.AssigneeID())
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) AddReply(ctx context.Context, reply *ticket.Reply) (uuid.UUID, error) {
	const query = `
		INSERT INTO ticket_replies (id, ticket_id, sender_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		reply.ID(), reply.TicketID(), reply.AuthorID(), reply.Message(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket reply", err)
	}
	return id, nil
}

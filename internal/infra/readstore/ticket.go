package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadStore struct {
	db infra.DBTX
}

func NewTicketReadStore(db infra.DBTX) *TicketReadStore {
	return &TicketReadStore{db: db}
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	const query = `
		SELECT t.id, t.user_id, u.username, t.subject, t.message, t.status,
			t.assignee_id, t.created_at, t.updated_at
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = $1`

	view := &queries.TicketView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.Username, &view.Subject, &view.Message,
		&view.Status, &view.AssigneeID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}

	if view.Replies, err = r.FindReplies(ctx, id); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *TicketReadStore) FindReplies(ctx context.Context, ticketID uuid.UUID) ([]queries.TicketReplyView, error) {
	const query = `
		SELECT tr.id, tr.ticket_id, tr.sender_id, u.username, tr.message, tr.created_at
		FROM ticket_replies tr
		JOIN users u ON u.id = tr.sender_id
		WHERE tr.ticket_id = $1
		ORDER BY tr.created_at ASC`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket replies", err)
	}
	defer rows.Close()

	replies := []queries.TicketReplyView{}
	for rows.Next() {
		var reply queries.TicketReplyView
		if err := rows.Scan(&reply.ID, &reply.TicketID, &reply.SenderID,
			&reply.SenderUsername, &reply.Message, &reply.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket reply row", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket reply rows", err)
	}
	return replies, nil
}

func (r *TicketReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TicketListItem, error) {
	const query = `
		SELECT t.id, u.username, t.subject, t.status, t.created_at, t.updated_at
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		WHERE t.user_id = $1
		ORDER BY t.updated_at DESC`
	return r.queryList(ctx, query, userID)
}

func (r *TicketReadStore) FindAll(ctx context.Context, status *string) ([]*queries.TicketListItem, error) {
	const query = `
		SELECT t.id, u.username, t.subject, t.status, t.created_at, t.updated_at
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		WHERE $1::text IS NULL OR t.status = $1
		ORDER BY t.updated_at DESC`
	return r.queryList(ctx, query, status)
}

func (r *TicketReadStore) queryList(ctx context.Context, query string, args ...any) ([]*queries.TicketListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	defer rows.Close()

	var result []*queries.TicketListItem
	for rows.Next() {
		item := &queries.TicketListItem{}
		if err := rows.Scan(&item.ID, &item.Username, &item.Subject, &item.Status,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket rows", err)
	}
	return result, nil
}

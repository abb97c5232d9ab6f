package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySubject  = errors.New("ticket subject must not be empty")
	ErrEmptyBody     = errors.New("ticket body must not be empty")
	ErrEmptyReply    = errors.New("reply message must not be empty")
	ErrAlreadyClosed = errors.New("ticket is already closed")
)

type Ticket struct {
	id         uuid.UUID
	userID     uuid.UUID
	subject    string
	body       string
	status     Status
	assigneeID *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTicket(userID uuid.UUID, subject, body string) (*Ticket, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}
	if body == "" {
		return nil, ErrEmptyBody
	}
	return &Ticket{
		id:      uuid.New(),
		userID:  userID,
		subject: subject,
		body:    body,
		status:  StatusOpen,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	subject, body string,
	status Status,
	assigneeID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:         id,
		userID:     userID,
		subject:    subject,
		body:       body,
		status:     status,
		assigneeID: assigneeID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Assign puts the ticket in progress under the given support agent.
func (t *Ticket) Assign(agentID uuid.UUID) error {
	if t.status == StatusClosed {
		return ErrAlreadyClosed
	}
	t.assigneeID = &agentID
	t.status = StatusInProgress
	return nil
}

func (t *Ticket) Resolve() error {
	if t.status == StatusClosed {
		return ErrAlreadyClosed
	}
	t.status = StatusResolved
	return nil
}

func (t *Ticket) Close() error {
	if t.status == StatusClosed {
		return ErrAlreadyClosed
	}
	t.status = StatusClosed
	return nil
}

// Reopen moves a resolved ticket back to open, e.g. when the requester
// replies after resolution.
func (t *Ticket) Reopen() error {
	if t.status == StatusClosed {
		return ErrAlreadyClosed
	}
	t.status = StatusOpen
	return nil
}

func (t *Ticket) ID() uuid.UUID          { return t.id }
func (t *Ticket) UserID() uuid.UUID      { return t.userID }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Body() string           { return t.body }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) AssigneeID() *uuid.UUID { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }

type Reply struct {
	id        uuid.UUID
	ticketID  uuid.UUID
	authorID  uuid.UUID
	message   string
	createdAt time.Time
}

// NewReply validates and attaches a reply to the ticket. Replies stay open
// in every status; a requester can follow up on a resolved or closed ticket
// and staff reopen it if needed.
func NewReply(t *Ticket, authorID uuid.UUID, message string) (*Reply, error) {
	if message == "" {
		return nil, ErrEmptyReply
	}
	return &Reply{
		id:       uuid.New(),
		ticketID: t.ID(),
		authorID: authorID,
		message:  message,
	}, nil
}

func ReconstructReply(id, ticketID, authorID uuid.UUID, message string, createdAt time.Time) *Reply {
	return &Reply{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: createdAt,
	}
}

func (r *Reply) ID() uuid.UUID        { return r.id }
func (r *Reply) TicketID() uuid.UUID  { return r.ticketID }
func (r *Reply) AuthorID() uuid.UUID  { return r.authorID }
func (r *Reply) Message() string      { return r.message }
func (r *Reply) CreatedAt() time.Time { return r.createdAt }

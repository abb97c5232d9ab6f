package response

import (
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID         uuid.UUID             `json:"id"`
	UserID     uuid.UUID             `json:"user_id"`
	Username   string                `json:"username"`
	Subject    string                `json:"subject"`
	Message    string                `json:"message"`
	Status     string                `json:"status"`
	AssigneeID *uuid.UUID            `json:"assignee_id,omitempty"`
	Replies    []TicketReplyResponse `json:"replies"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

type TicketReplyResponse struct {
	ID             uuid.UUID `json:"id"`
	TicketID       uuid.UUID `json:"ticket_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromTicketView(view *queries.TicketView) (*TicketResponse, error) {
	resp := &TicketResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	if resp.Replies == nil {
		resp.Replies = []TicketReplyResponse{}
	}
	return resp, nil
}

func FromTicketReplyView(view *queries.TicketReplyView) (*TicketReplyResponse, error) {
	resp := &TicketReplyResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}

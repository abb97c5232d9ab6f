package request

import (
	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=5000"`
}

type ReplyTicketRequest struct {
	Message string `json:"message" binding:"required,max=5000"`
}

type AssignTicketRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" binding:"required"`
}

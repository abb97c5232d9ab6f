package request

import (
	"github.com/google/uuid"
)

type CreateReportRequest struct {
	TargetType string    `json:"target_type" binding:"required,oneof=user car"`
	TargetID   uuid.UUID `json:"target_id" binding:"required"`
	Reason     string    `json:"reason" binding:"required,max=2000"`
}

// Action "remove_car" delists the reported car; "delete_car" removes the
// row entirely. They are separate actions on purpose.
type ResolveReportRequest struct {
	Action string `json:"action" binding:"required,oneof=suspend_user remove_car delete_car none"`
	Notes  string `json:"notes" binding:"max=2000"`
}

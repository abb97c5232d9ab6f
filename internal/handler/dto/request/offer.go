package request

type CreateOfferRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description" binding:"max=2000"`
	PointsRequired int    `json:"points_required" binding:"min=0"`
}

type UpdateOfferRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description" binding:"max=2000"`
	PointsRequired int    `json:"points_required" binding:"min=0"`
	IsActive       *bool  `json:"is_active"`
}

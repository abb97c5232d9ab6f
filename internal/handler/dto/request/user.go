package request

type UpdateProfileRequest struct {
	FirstName   string  `json:"first_name" binding:"max=100"`
	LastName    string  `json:"last_name" binding:"max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=30"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
}

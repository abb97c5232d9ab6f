package request

import (
	"driveshare/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

func (r *CreateBookingRequest) ToDates() (booking.DateRange, error) {
	return booking.ParseDateRange(r.StartDate, r.EndDate)
}

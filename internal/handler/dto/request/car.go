package request

import (
	"driveshare/internal/domain/car"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/shared"
)

type CarImageRequest struct {
	URL       string `json:"url" binding:"required,url"`
	IsPrimary bool   `json:"is_primary"`
}

type AvailabilityWindowRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CreateCarRequest struct {
	Make                string                      `json:"make" binding:"required,max=50"`
	Model               string                      `json:"model" binding:"required,max=50"`
	Year                int                         `json:"year" binding:"required,min=1950"`
	Color               string                      `json:"color" binding:"max=30"`
	LicensePlate        string                      `json:"license_plate" binding:"required,max=20"`
	Description         string                      `json:"description" binding:"max=2000"`
	DailyRate           string                      `json:"daily_rate" binding:"required"`
	Location            string                      `json:"location" binding:"required,max=255"`
	Latitude            *float64                    `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude           *float64                    `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Seats               int                         `json:"seats" binding:"required,min=1,max=12"`
	Transmission        string                      `json:"transmission" binding:"required,oneof=manual automatic"`
	FuelType            string                      `json:"fuel_type" binding:"required,oneof=petrol diesel hybrid electric"`
	AutoApproveBookings bool                        `json:"auto_approve_bookings"`
	Images              []CarImageRequest           `json:"images" binding:"max=10,dive"`
	Features            []string                    `json:"features" binding:"max=20,dive,max=50"`
	Availability        []AvailabilityWindowRequest `json:"availability" binding:"max=20,dive"`
}

func (r *CreateCarRequest) ToSpec() (car.Spec, error) {
	rate, err := money.Parse(r.DailyRate)
	if err != nil {
		return car.Spec{}, err
	}
	return car.Spec{
		Make:                r.Make,
		Model:               r.Model,
		Year:                r.Year,
		Color:               r.Color,
		LicensePlate:        r.LicensePlate,
		Description:         r.Description,
		DailyRate:           rate,
		Location:            r.Location,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		Seats:               r.Seats,
		Transmission:        r.Transmission,
		FuelType:            r.FuelType,
		AutoApproveBookings: r.AutoApproveBookings,
	}, nil
}

func (r *CreateCarRequest) ImageList() []shared.CarImage {
	images := make([]shared.CarImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, shared.CarImage{URL: img.URL, IsPrimary: img.IsPrimary})
	}
	return images
}

// UpdateCarRequest replaces the whole listing spec; partial edits are not
// supported on purpose so the admin re-review always sees the full picture.
type UpdateCarRequest struct {
	CreateCarRequest
}

//go:build unit || e2e

package builder

import (
	"driveshare/internal/domain/car"
	"driveshare/internal/pkg/money"

	"github.com/google/uuid"
)

type CarBuilder struct {
	OwnerID             uuid.UUID
	Make                string
	Model               string
	Year                int
	Color               string
	LicensePlate        string
	Description         string
	DailyRate           string
	Location            string
	Seats               int
	Transmission        string
	FuelType            string
	AutoApproveBookings bool
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		OwnerID:      uuid.New(),
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		Color:        "blue",
		LicensePlate: "ABC-1234",
		Description:  "Reliable compact sedan",
		DailyRate:    "100.00",
		Location:     "Austin, TX",
		Seats:        5,
		Transmission: "automatic",
		FuelType:     "petrol",
	}
}

func (c *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(c)
	return c
}

func (c *CarBuilder) BuildDomain() (*car.Car, error) {
	rate, err := money.Parse(c.DailyRate)
	if err != nil {
		return nil, err
	}

	return car.NewCar(c.OwnerID, car.Spec{
		Make:                c.Make,
		Model:               c.Model,
		Year:                c.Year,
		Color:               c.Color,
		LicensePlate:        c.LicensePlate,
		Description:         c.Description,
		DailyRate:           rate,
		Location:            c.Location,
		Seats:               c.Seats,
		Transmission:        c.Transmission,
		FuelType:            c.FuelType,
		AutoApproveBookings: c.AutoApproveBookings,
	})
}

func (c *CarBuilder) WithOwnerID(ownerID uuid.UUID) *CarBuilder {
	c.OwnerID = ownerID
	return c
}

func (c *CarBuilder) WithDailyRate(rate string) *CarBuilder {
	c.DailyRate = rate
	return c
}

func (c *CarBuilder) WithAutoApprove() *CarBuilder {
	c.AutoApproveBookings = true
	return c
}

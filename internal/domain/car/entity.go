package car

import (
	"errors"
	"time"

	"driveshare/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid car status")
	ErrInvalidDailyRate = errors.New("daily rate must be positive")
	ErrNotPendingReview = errors.New("car is not awaiting approval")
	ErrNotAvailable     = errors.New("car is not available")
	ErrNotInMaintenance = errors.New("car is not in maintenance")
)

type Car struct {
	id                  uuid.UUID
	ownerID             uuid.UUID
	make_               string
	model               string
	year                int
	color               string
	licensePlate        string
	description         string
	dailyRate           money.Money
	location            string
	latitude            *float64
	longitude           *float64
	seats               int
	transmission        string
	fuelType            string
	status              Status
	autoApproveBookings bool
	createdAt           time.Time
	updatedAt           time.Time
}

type Spec struct {
	Make                string
	Model               string
	Year                int
	Color               string
	LicensePlate        string
	Description         string
	DailyRate           money.Money
	Location            string
	Latitude            *float64
	Longitude           *float64
	Seats               int
	Transmission        string
	FuelType            string
	AutoApproveBookings bool
}

// NewCar builds a fresh listing in pending_approval; only an admin review
// can move it to available.
func NewCar(ownerID uuid.UUID, spec Spec) (*Car, error) {
	if !spec.DailyRate.IsPositive() {
		return nil, ErrInvalidDailyRate
	}
	return &Car{
		id:                  uuid.New(),
		ownerID:             ownerID,
		make_:               spec.Make,
		model:               spec.Model,
		year:                spec.Year,
		color:               spec.Color,
		licensePlate:        spec.LicensePlate,
		description:         spec.Description,
		dailyRate:           spec.DailyRate,
		location:            spec.Location,
		latitude:            spec.Latitude,
		longitude:           spec.Longitude,
		seats:               spec.Seats,
		transmission:        spec.Transmission,
		fuelType:            spec.FuelType,
		status:              StatusPendingApproval,
		autoApproveBookings: spec.AutoApproveBookings,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	spec Spec,
	status Status,
	createdAt, updatedAt time.Time,
) *Car {
	c := &Car{
		id:                  id,
		ownerID:             ownerID,
		make_:               spec.Make,
		model:               spec.Model,
		year:                spec.Year,
		color:               spec.Color,
		licensePlate:        spec.LicensePlate,
		description:         spec.Description,
		dailyRate:           spec.DailyRate,
		location:            spec.Location,
		latitude:            spec.Latitude,
		longitude:           spec.Longitude,
		seats:               spec.Seats,
		transmission:        spec.Transmission,
		fuelType:            spec.FuelType,
		status:              status,
		autoApproveBookings: spec.AutoApproveBookings,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
	return c
}

// Approve moves a listing out of admin review onto the marketplace.
func (c *Car) Approve() error {
	if c.status != StatusPendingApproval {
		return ErrNotPendingReview
	}
	c.status = StatusAvailable
	return nil
}

func (c *Car) Reject() error {
	if c.status != StatusPendingApproval {
		return ErrNotPendingReview
	}
	c.status = StatusRejected
	return nil
}

// Delist pulls a listing from the marketplace, e.g. after a resolved report.
func (c *Car) Delist() {
	c.status = StatusRejected
}

// UpdateSpec replaces the listing details. Status is unaffected.
func (c *Car) UpdateSpec(spec Spec) error {
	if !spec.DailyRate.IsPositive() {
		return ErrInvalidDailyRate
	}
	c.make_ = spec.Make
	c.model = spec.Model
	c.year = spec.Year
	c.color = spec.Color
	c.licensePlate = spec.LicensePlate
	c.description = spec.Description
	c.dailyRate = spec.DailyRate
	c.location = spec.Location
	c.latitude = spec.Latitude
	c.longitude = spec.Longitude
	c.seats = spec.Seats
	c.transmission = spec.Transmission
	c.fuelType = spec.FuelType
	c.autoApproveBookings = spec.AutoApproveBookings
	return nil
}

func (c *Car) StartMaintenance() error {
	if c.status != StatusAvailable {
		return ErrNotAvailable
	}
	c.status = StatusMaintenance
	return nil
}

func (c *Car) EndMaintenance() error {
	if c.status != StatusMaintenance {
		return ErrNotInMaintenance
	}
	c.status = StatusAvailable
	return nil
}

func (c *Car) IsAvailable() bool {
	return c.status == StatusAvailable
}

// Spec flattens the listing details, mainly for persistence.
func (c *Car) Spec() Spec {
	return Spec{
		Make:                c.make_,
		Model:               c.model,
		Year:                c.year,
		Color:               c.color,
		LicensePlate:        c.licensePlate,
		Description:         c.description,
		DailyRate:           c.dailyRate,
		Location:            c.location,
		Latitude:            c.latitude,
		Longitude:           c.longitude,
		Seats:               c.seats,
		Transmission:        c.transmission,
		FuelType:            c.fuelType,
		AutoApproveBookings: c.autoApproveBookings,
	}
}

func (c *Car) ID() uuid.UUID             { return c.id }
func (c *Car) OwnerID() uuid.UUID        { return c.ownerID }
func (c *Car) Make() string              { return c.make_ }
func (c *Car) Model() string             { return c.model }
func (c *Car) Year() int                 { return c.year }
func (c *Car) Color() string             { return c.color }
func (c *Car) LicensePlate() string      { return c.licensePlate }
func (c *Car) Description() string       { return c.description }
func (c *Car) DailyRate() money.Money    { return c.dailyRate }
func (c *Car) Location() string          { return c.location }
func (c *Car) Latitude() *float64        { return c.latitude }
func (c *Car) Longitude() *float64       { return c.longitude }
func (c *Car) Seats() int                { return c.seats }
func (c *Car) Transmission() string      { return c.transmission }
func (c *Car) FuelType() string          { return c.fuelType }
func (c *Car) Status() Status            { return c.status }
func (c *Car) AutoApproveBookings() bool { return c.autoApproveBookings }
func (c *Car) CreatedAt() time.Time      { return c.createdAt }
func (c *Car) UpdatedAt() time.Time      { return c.updatedAt }

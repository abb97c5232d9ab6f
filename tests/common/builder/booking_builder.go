//go:build unit || e2e

package builder

import (
	"driveshare/internal/domain/booking"
	"driveshare/internal/pkg/money"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID      uuid.UUID
	CarID       uuid.UUID
	StartDate   string
	EndDate     string
	DailyRate   string
	FeePercent  int
	AutoApprove bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:     uuid.New(),
		CarID:      uuid.New(),
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-03",
		DailyRate:  "100.00",
		FeePercent: 10,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dates, err := booking.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}

	rate, err := money.Parse(b.DailyRate)
	if err != nil {
		return nil, err
	}

	quote := booking.NewFeePricer(b.FeePercent).Quote(rate, dates)
	return booking.NewBooking(b.UserID, b.CarID, dates, quote, b.AutoApprove), nil
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithDailyRate(rate string) *BookingBuilder {
	b.DailyRate = rate
	return b
}

func (b *BookingBuilder) WithAutoApprove() *BookingBuilder {
	b.AutoApprove = true
	return b
}

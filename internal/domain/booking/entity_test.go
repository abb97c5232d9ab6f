//go:build unit

package booking_test

import (
	"testing"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/pkg/money"
	"driveshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePricer_Quote(t *testing.T) {
	cases := []struct {
		name       string
		rate       string
		start      string
		end        string
		feePercent int
		total      string
		fee        string
		payout     string
	}{
		{
			name: "three day rental at 100.00",
			rate: "100.00", start: "2026-07-01", end: "2026-07-03", feePercent: 10,
			total: "300.00", fee: "30.00", payout: "270.00",
		},
		{
			name: "single day rental",
			rate: "49.99", start: "2026-07-01", end: "2026-07-01", feePercent: 10,
			total: "49.99", fee: "5.00", payout: "44.99",
		},
		{
			name: "fee rounds half up on the cent",
			rate: "10.05", start: "2026-07-01", end: "2026-07-01", feePercent: 10,
			total: "10.05", fee: "1.01", payout: "9.04",
		},
		{
			name: "zero fee percent",
			rate: "80.00", start: "2026-07-01", end: "2026-07-02", feePercent: 0,
			total: "160.00", fee: "0.00", payout: "160.00",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rate, err := money.Parse(c.rate)
			require.NoError(t, err)
			dates, err := booking.ParseDateRange(c.start, c.end)
			require.NoError(t, err)

			quote := booking.NewFeePricer(c.feePercent).Quote(rate, dates)

			assert.Equal(t, c.total, quote.TotalCost.String())
			assert.Equal(t, c.fee, quote.PlatformFee.String())
			assert.Equal(t, c.payout, quote.OwnerPayout.String())
			assert.Equal(t, quote.TotalCost, quote.PlatformFee.Add(quote.OwnerPayout))
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending without auto approve", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, 3, actual.Quote().Days)
		assert.Equal(t, "300.00", actual.Quote().TotalCost.String())
		assert.Equal(t, "30.00", actual.Quote().PlatformFee.String())
		assert.Equal(t, "270.00", actual.Quote().OwnerPayout.String())
		assert.Nil(t, actual.PointsAwardedAt())
	})

	t.Run("starts approved with auto approve", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithAutoApprove().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusApproved, actual.Status())
	})
}

func TestBooking_Transitions(t *testing.T) {
	type step struct {
		apply func(*booking.Booking) error
		errIs error
	}
	approve := func(b *booking.Booking) error { return b.Approve() }
	reject := func(b *booking.Booking) error { return b.Reject() }
	cancel := func(b *booking.Booking) error { return b.Cancel() }
	complete := func(b *booking.Booking) error { return b.Complete() }

	cases := []struct {
		name  string
		steps []step
		final booking.Status
	}{
		{
			name:  "pending to approved to completed",
			steps: []step{{apply: approve}, {apply: complete}},
			final: booking.StatusCompleted,
		},
		{
			name:  "pending to rejected",
			steps: []step{{apply: reject}},
			final: booking.StatusRejected,
		},
		{
			name:  "pending to cancelled",
			steps: []step{{apply: cancel}},
			final: booking.StatusCancelled,
		},
		{
			name:  "approved to cancelled",
			steps: []step{{apply: approve}, {apply: cancel}},
			final: booking.StatusCancelled,
		},
		{
			name:  "pending cannot complete",
			steps: []step{{apply: complete, errIs: booking.ErrInvalidTransition}},
			final: booking.StatusPending,
		},
		{
			name:  "approved cannot be rejected",
			steps: []step{{apply: approve}, {apply: reject, errIs: booking.ErrInvalidTransition}},
			final: booking.StatusApproved,
		},
		{
			name:  "completed is terminal",
			steps: []step{{apply: approve}, {apply: complete}, {apply: cancel, errIs: booking.ErrAlreadyTerminal}},
			final: booking.StatusCompleted,
		},
		{
			name:  "cancelled is terminal",
			steps: []step{{apply: cancel}, {apply: approve, errIs: booking.ErrAlreadyTerminal}},
			final: booking.StatusCancelled,
		},
		{
			name:  "rejected is terminal",
			steps: []step{{apply: reject}, {apply: approve, errIs: booking.ErrAlreadyTerminal}},
			final: booking.StatusRejected,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			for _, s := range c.steps {
				err := s.apply(b)
				if s.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, s.errIs)
				}
			}
			assert.Equal(t, c.final, b.Status())
		})
	}
}

func TestBooking_MarkPointsAwarded(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithAutoApprove().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, b.Complete())

	now := time.Now()
	require.NoError(t, b.MarkPointsAwarded(now))
	require.NotNil(t, b.PointsAwardedAt())
	assert.Equal(t, now, *b.PointsAwardedAt())

	require.ErrorIs(t, b.MarkPointsAwarded(now.Add(time.Hour)), booking.ErrPointsAlreadyAwarded)
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusApproved.IsActive())
	assert.False(t, booking.StatusRejected.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
	assert.False(t, booking.StatusCompleted.IsActive())
}

//go:build unit

package booking_test

import (
	"testing"

	"driveshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange_Parse(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		errIs error
	}{
		{name: "valid range", start: "2026-07-01", end: "2026-07-03"},
		{name: "single day", start: "2026-07-01", end: "2026-07-01"},
		{name: "start after end", start: "2026-07-03", end: "2026-07-01", errIs: booking.ErrInvalidDateRange},
		{name: "malformed start", start: "07/01/2026", end: "2026-07-03", errIs: booking.ErrInvalidDate},
		{name: "malformed end", start: "2026-07-01", end: "not-a-date", errIs: booking.ErrInvalidDate},
		{name: "empty start", start: "", end: "2026-07-03", errIs: booking.ErrInvalidDate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.ParseDateRange(c.start, c.end)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		days  int
	}{
		{name: "both endpoints count", start: "2026-07-01", end: "2026-07-03", days: 3},
		{name: "single day rental", start: "2026-07-01", end: "2026-07-01", days: 1},
		{name: "full week", start: "2026-07-01", end: "2026-07-07", days: 7},
		{name: "across month boundary", start: "2026-07-30", end: "2026-08-02", days: 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := booking.ParseDateRange(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.days, r.Days())
		})
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	base, err := booking.ParseDateRange("2026-07-10", "2026-07-15")
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    string
		end      string
		overlaps bool
	}{
		{name: "fully inside", start: "2026-07-11", end: "2026-07-14", overlaps: true},
		{name: "fully covering", start: "2026-07-01", end: "2026-07-31", overlaps: true},
		{name: "overlapping the start", start: "2026-07-08", end: "2026-07-10", overlaps: true},
		{name: "overlapping the end", start: "2026-07-15", end: "2026-07-20", overlaps: true},
		{name: "shared endpoint counts", start: "2026-07-15", end: "2026-07-15", overlaps: true},
		{name: "day before", start: "2026-07-01", end: "2026-07-09", overlaps: false},
		{name: "day after", start: "2026-07-16", end: "2026-07-20", overlaps: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other, err := booking.ParseDateRange(c.start, c.end)
			require.NoError(t, err)

			assert.Equal(t, c.overlaps, base.Overlaps(other))
			assert.Equal(t, c.overlaps, other.Overlaps(base))
		})
	}
}

//go:build unit

package review_test

import (
	"testing"

	"driveshare/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	bookingID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := review.NewReview(bookingID, 5, "Great car, spotless and on time")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, bookingID, actual.BookingID())
		assert.Equal(t, 5, actual.Rating().Int())
	})

	t.Run("rating validation", func(t *testing.T) {
		cases := []struct {
			name   string
			rating int
			errIs  error
		}{
			{name: "minimum valid rating", rating: 1},
			{name: "maximum valid rating", rating: 5},
			{name: "zero rating", rating: 0, errIs: review.ErrInvalidRating},
			{name: "above maximum", rating: 6, errIs: review.ErrInvalidRating},
			{name: "negative rating", rating: -1, errIs: review.ErrInvalidRating},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := review.NewReview(bookingID, c.rating, "ok")
				if c.errIs == nil {
					require.NotNil(t, actual)
					require.NoError(t, err)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("empty comment", func(t *testing.T) {
		actual, err := review.NewReview(bookingID, 4, "")
		require.Nil(t, actual)
		require.ErrorIs(t, err, review.ErrEmptyComment)
	})
}

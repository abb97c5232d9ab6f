//go:build unit

package car_test

import (
	"testing"

	"driveshare/internal/domain/car"
	"driveshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, car.StatusPendingApproval, actual.Status())
		assert.Equal(t, "100.00", actual.DailyRate().String())
		assert.False(t, actual.IsAvailable())
		assert.False(t, actual.AutoApproveBookings())
	})

	t.Run("daily rate validation", func(t *testing.T) {
		cases := []struct {
			name  string
			rate  string
			errIs error
		}{
			{name: "positive rate", rate: "0.01"},
			{name: "zero rate", rate: "0.00", errIs: car.ErrInvalidDailyRate},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewCarBuilder().WithDailyRate(c.rate).BuildDomain()

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
}

func TestCar_Review(t *testing.T) {
	t.Run("approve pending listing", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Approve())
		assert.Equal(t, car.StatusAvailable, c.Status())
		assert.True(t, c.IsAvailable())
	})

	t.Run("reject pending listing", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Reject())
		assert.Equal(t, car.StatusRejected, c.Status())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Approve())
		require.ErrorIs(t, c.Approve(), car.ErrNotPendingReview)
	})

	t.Run("cannot reject an approved listing", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Approve())
		require.ErrorIs(t, c.Reject(), car.ErrNotPendingReview)
	})
}

func TestCar_Maintenance(t *testing.T) {
	c, err := builder.NewCarBuilder().BuildDomain()
	require.NoError(t, err)

	require.ErrorIs(t, c.StartMaintenance(), car.ErrNotAvailable)

	require.NoError(t, c.Approve())
	require.NoError(t, c.StartMaintenance())
	assert.Equal(t, car.StatusMaintenance, c.Status())
	assert.False(t, c.IsAvailable())

	require.NoError(t, c.EndMaintenance())
	assert.True(t, c.IsAvailable())

	require.ErrorIs(t, c.EndMaintenance(), car.ErrNotInMaintenance)
}

func TestCar_UpdateSpec(t *testing.T) {
	c, err := builder.NewCarBuilder().BuildDomain()
	require.NoError(t, err)

	spec := c.Spec()
	spec.Description = "Now with roof rack"
	spec.AutoApproveBookings = true
	require.NoError(t, c.UpdateSpec(spec))

	assert.Equal(t, "Now with roof rack", c.Description())
	assert.True(t, c.AutoApproveBookings())
	assert.Equal(t, car.StatusPendingApproval, c.Status())

	spec.DailyRate = spec.DailyRate.Sub(spec.DailyRate)
	require.ErrorIs(t, c.UpdateSpec(spec), car.ErrInvalidDailyRate)
}

func TestCar_Delist(t *testing.T) {
	c, err := builder.NewCarBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, c.Approve())
	c.Delist()
	assert.Equal(t, car.StatusRejected, c.Status())
	assert.False(t, c.IsAvailable())
}

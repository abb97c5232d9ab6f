//go:build unit

package offer_test

import (
	"testing"

	"driveshare/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := offer.NewOffer("Free weekend day", "One rental day on us", 200)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, 200, actual.PointsRequired())
	})

	t.Run("free offer is allowed", func(t *testing.T) {
		actual, err := offer.NewOffer("Welcome gift", "No points needed", 0)
		require.NoError(t, err)
		assert.Zero(t, actual.PointsRequired())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := offer.NewOffer("", "desc", 100)
		require.ErrorIs(t, err, offer.ErrEmptyTitle)
	})

	t.Run("negative points", func(t *testing.T) {
		_, err := offer.NewOffer("title", "desc", -1)
		require.ErrorIs(t, err, offer.ErrNegativePoints)
	})
}

func TestOffer_CanRedeem(t *testing.T) {
	o, err := offer.NewOffer("Free weekend day", "One rental day on us", 200)
	require.NoError(t, err)

	t.Run("enough points", func(t *testing.T) {
		require.NoError(t, o.CanRedeem(200))
		require.NoError(t, o.CanRedeem(500))
	})

	t.Run("not enough points", func(t *testing.T) {
		require.ErrorIs(t, o.CanRedeem(199), offer.ErrInsufficientPoints)
	})

	t.Run("inactive offer", func(t *testing.T) {
		o.Deactivate()
		require.ErrorIs(t, o.CanRedeem(500), offer.ErrOfferInactive)

		o.Activate()
		require.NoError(t, o.CanRedeem(500))
	})
}

func TestOffer_Update(t *testing.T) {
	o, err := offer.NewOffer("Free weekend day", "One rental day on us", 200)
	require.NoError(t, err)

	require.NoError(t, o.Update("Free week day", "Midweek only", 150))
	assert.Equal(t, "Free week day", o.Title())
	assert.Equal(t, 150, o.PointsRequired())

	require.ErrorIs(t, o.Update("", "x", 100), offer.ErrEmptyTitle)
	require.ErrorIs(t, o.Update("x", "x", -5), offer.ErrNegativePoints)
}

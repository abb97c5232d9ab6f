//go:build unit

package report_test

import (
	"testing"
	"time"

	"driveshare/internal/domain/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	reporterID := uuid.New()

	t.Run("user report carries the user target", func(t *testing.T) {
		targetID := uuid.New()
		r, err := report.NewUserReport(reporterID, targetID, "harassment in messages")
		require.NoError(t, err)

		assert.Equal(t, report.TargetUser, r.TargetType())
		assert.Equal(t, report.StatusPending, r.Status())

		got, err := r.Target()
		require.NoError(t, err)
		assert.Equal(t, targetID, got)
		assert.Nil(t, r.TargetCarID())
	})

	t.Run("car report carries the car target", func(t *testing.T) {
		targetID := uuid.New()
		r, err := report.NewCarReport(reporterID, targetID, "listing photos are fake")
		require.NoError(t, err)

		assert.Equal(t, report.TargetCar, r.TargetType())

		got, err := r.Target()
		require.NoError(t, err)
		assert.Equal(t, targetID, got)
		assert.Nil(t, r.TargetUserID())
	})

	t.Run("empty reason refused", func(t *testing.T) {
		_, err := report.NewUserReport(reporterID, uuid.New(), "")
		require.ErrorIs(t, err, report.ErrEmptyReason)
	})
}

func TestReport_Review(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()

	t.Run("resolve pending report", func(t *testing.T) {
		r, err := report.NewUserReport(uuid.New(), uuid.New(), "spam account")
		require.NoError(t, err)

		require.NoError(t, r.Resolve(adminID, "account suspended", now))
		assert.Equal(t, report.StatusResolved, r.Status())
		require.NotNil(t, r.ResolvedBy())
		assert.Equal(t, adminID, *r.ResolvedBy())
		require.NotNil(t, r.ResolvedAt())
		require.NotNil(t, r.AdminNotes())
		assert.Equal(t, "account suspended", *r.AdminNotes())
	})

	t.Run("dismiss pending report", func(t *testing.T) {
		r, err := report.NewCarReport(uuid.New(), uuid.New(), "wrong mileage")
		require.NoError(t, err)

		require.NoError(t, r.Dismiss(adminID, "", now))
		assert.Equal(t, report.StatusDismissed, r.Status())
		assert.Nil(t, r.AdminNotes())
	})

	t.Run("cannot review twice", func(t *testing.T) {
		r, err := report.NewUserReport(uuid.New(), uuid.New(), "spam account")
		require.NoError(t, err)

		require.NoError(t, r.Resolve(adminID, "", now))
		require.ErrorIs(t, r.Dismiss(adminID, "", now), report.ErrAlreadyReviewed)
		require.ErrorIs(t, r.Resolve(adminID, "", now), report.ErrAlreadyReviewed)
	})
}

//go:build unit

package authz_test

import (
	"testing"

	"driveshare/internal/domain/user"
	"driveshare/internal/pkg/authz"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	adminOnly := []authz.Action{
		authz.ActionApproveCar,
		authz.ActionManageUsers,
		authz.ActionResolveReport,
		authz.ActionViewRevenue,
		authz.ActionManageOffers,
	}

	for _, action := range adminOnly {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, authz.Allow(user.RoleAdmin, action))
			assert.False(t, authz.Allow(user.RoleSupport, action))
			assert.False(t, authz.Allow(user.RoleOwner, action))
			assert.False(t, authz.Allow(user.RoleRegular, action))
		})
	}

	t.Run("support handles tickets", func(t *testing.T) {
		assert.True(t, authz.Allow(user.RoleSupport, authz.ActionHandleTickets))
		assert.True(t, authz.Allow(user.RoleAdmin, authz.ActionHandleTickets))
		assert.False(t, authz.Allow(user.RoleRegular, authz.ActionHandleTickets))
	})

	t.Run("unknown action denied", func(t *testing.T) {
		assert.False(t, authz.Allow(user.RoleAdmin, authz.Action("car:steal")))
	})
}

func TestIsStaff(t *testing.T) {
	assert.True(t, authz.IsStaff(user.RoleAdmin))
	assert.True(t, authz.IsStaff(user.RoleSupport))
	assert.False(t, authz.IsStaff(user.RoleOwner))
	assert.False(t, authz.IsStaff(user.RoleRegular))
}

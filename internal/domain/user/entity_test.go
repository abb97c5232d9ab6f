//go:build unit

package user_test

import (
	"testing"

	"driveshare/internal/domain/user"
	"driveshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "testuser", actual.Username().String())
		assert.Equal(t, "test@example.com", actual.Email().String())
		assert.Equal(t, user.RoleRegular, actual.Role())
		assert.False(t, actual.IsSuspended())
		assert.False(t, actual.IsVerified())
		assert.Zero(t, actual.Points())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "email is lowercased",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Mixed@Example.COM") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("user@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("abc") },
			},
			{
				name:   "too short username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name: "too long username",
				mutate: func(b *builder.UserBuilder) {
					long := make([]byte, 151)
					for i := range long {
						long[i] = 'a'
					}
					b.WithUsername(string(long))
				},
				errIs: user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "regular role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("regular") },
			},
			{
				name:   "owner role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "support role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("support") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestUser_BecomeOwner(t *testing.T) {
	t.Run("regular user becomes owner", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.BecomeOwner())
		assert.Equal(t, user.RoleOwner, u.Role())
	})

	t.Run("owner cannot upgrade twice", func(t *testing.T) {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.WithRole("owner") }).BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, u.BecomeOwner(), user.ErrAlreadyOwner)
	})

	t.Run("staff roles cannot upgrade", func(t *testing.T) {
		for _, role := range []string{"admin", "support"} {
			u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.WithRole(role) }).BuildDomain()
			require.NoError(t, err)

			assert.ErrorIs(t, u.BecomeOwner(), user.ErrRoleNotUpgradable)
		}
	})
}

func TestUser_Suspension(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, u.Suspend())
	assert.True(t, u.IsSuspended())

	require.ErrorIs(t, u.Suspend(), user.ErrAlreadySuspended)

	require.NoError(t, u.Unsuspend())
	assert.False(t, u.IsSuspended())

	require.ErrorIs(t, u.Unsuspend(), user.ErrNotSuspended)
}

func TestUser_Points(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, u.AwardPoints(50))
	assert.Equal(t, 50, u.Points())

	require.ErrorIs(t, u.AwardPoints(0), user.ErrNegativePoints)
	require.ErrorIs(t, u.AwardPoints(-10), user.ErrNegativePoints)

	require.ErrorIs(t, u.RedeemPoints(100), user.ErrNotEnoughPoints)

	require.NoError(t, u.RedeemPoints(50))
	assert.Zero(t, u.Points())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

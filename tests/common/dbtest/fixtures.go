//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Static bcrypt hash for fixture rows. Flows that need to log in register
// through the API instead of relying on this value.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLO3Wr0Nz1O7XhPQhKXGWOXBwPlHK"

func CreateTestUser(t *testing.T, db DBLike, username, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, username, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCar(t *testing.T, db DBLike, ownerID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO cars (id, owner_id, make, model, year, color, license_plate, daily_rate_cents, location, seats, transmission, fuel_type, status)
		VALUES ($1, $2, 'Toyota', 'Corolla', 2021, 'blue', $3, 10000, 'Austin, TX', 5, 'automatic', 'petrol', $4)`,
		carID, ownerID, "TEST-"+carID.String()[:8], status)
	require.NoError(t, err)

	return carID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, carID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, car_id, start_date, end_date, total_cost_cents, platform_fee_cents, owner_payout_cents, status)
		VALUES ($1, $2, $3, $4, $5, 30000, 3000, 27000, $6)`,
		bookingID, userID, carID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

// SetUserRole promotes an account that registered through the API. The role
// lands in the JWT on the next login.
func SetUserRole(t *testing.T, db DBLike, userID uuid.UUID, role string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET role = $1 WHERE id = $2", role, userID)
	require.NoError(t, err)
}

func CreateTestOffer(t *testing.T, db DBLike, title string, pointsRequired int, active bool) uuid.UUID {
	t.Helper()

	offerID := uuid.New()

	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (id, title, description, points_required, is_active)
		VALUES ($1, $2, 'fixture offer', $3, $4)`,
		offerID, title, pointsRequired, active)
	require.NoError(t, err)

	return offerID
}

func AddUserPoints(t *testing.T, db DBLike, userID uuid.UUID, points int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET points = points + $1 WHERE id = $2", points, userID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

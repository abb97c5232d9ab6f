package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/car"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarRepository struct {
	db infra.DBTX
}

func NewCarRepository(db infra.DBTX) *CarRepository {
	return &CarRepository{db: db}
}

const carColumns = `id, owner_id, make, model, year, color, license_plate, description,
	daily_rate_cents, location, latitude, longitude, seats, transmission, fuel_type,
	status, auto_approve_bookings, created_at, updated_at`

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (uuid.UUID, error) {
	const query = `
		INSERT INTO cars (id, owner_id, make, model, year, color, license_plate, description,
			daily_rate_cents, location, latitude, longitude, seats, transmission, fuel_type,
			status, auto_approve_bookings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		c.ID(), c.OwnerID(), c.Make(), c.Model(), c.Year(), c.Color(), c.LicensePlate(),
		c.Description(), c.DailyRate().Cents(), c.Location(), c.Latitude(), c.Longitude(),
		c.Seats(), c.Transmission(), c.FuelType(), c.Status().String(), c.AutoApproveBookings(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}
	return id, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	return r.scanCar(ctx, query, id)
}

func (r *CarRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE id = $1 FOR UPDATE`
	return r.scanCar(ctx, query, id)
}

func (r *CarRepository) scanCar(ctx context.Context, query string, id uuid.UUID) (*car.Car, error) {
	var (
		carID, ownerID                 uuid.UUID
		mk, model, color, licensePlate string
		description, location          string
		transmission, fuelType, status string
		year, seats                    int
		dailyRateCents                 int64
		latitude, longitude            *float64
		autoApprove                    bool
		createdAt, updatedAt           time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&carID, &ownerID, &mk, &model, &year, &color, &licensePlate, &description,
		&dailyRateCents, &location, &latitude, &longitude, &seats, &transmission, &fuelType,
		&status, &autoApprove, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}

	st, err := car.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid car status in database", err)
	}
	spec := car.Spec{
		Make:                mk,
		Model:               model,
		Year:                year,
		Color:               color,
		LicensePlate:        licensePlate,
		Description:         description,
		DailyRate:           money.FromCents(dailyRateCents),
		Location:            location,
		Latitude:            latitude,
		Longitude:           longitude,
		Seats:               seats,
		Transmission:        transmission,
		FuelType:            fuelType,
		AutoApproveBookings: autoApprove,
	}
	return car.Reconstruct(carID, ownerID, spec, st, createdAt, updatedAt), nil
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	const query = `
		UPDATE cars
		SET make = $2, model = $3, year = $4, color = $5, license_plate = $6,
			description = $7, daily_rate_cents = $8, location = $9, latitude = $10,
			longitude = $11, seats = $12, transmission = $13, fuel_type = $14,
			status = $15, auto_approve_bookings = $16, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID(), c.Make(), c.Model(), c.Year(), c.Color(), c.LicensePlate(),
		c.Description(), c.DailyRate().Cents(), c.Location(), c.Latitude(), c.Longitude(),
		c.Seats(), c.Transmission(), c.FuelType(), c.Status().String(), c.AutoApproveBookings(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

// DelistByOwner pulls every listing of a suspended owner off the marketplace.
func (r *CarRepository) DelistByOwner(ctx context.Context, ownerID uuid.UUID) error {
	const query = `
		UPDATE cars SET status = 'rejected', updated_at = now()
		WHERE owner_id = $1 AND status IN ('pending_approval', 'available')`

	if _, err := r.db.Exec(ctx, query, ownerID); err != nil {
		return infra.WrapRepoErr("failed to delist owner cars", err)
	}
	return nil
}

func (r *CarRepository) ReplaceImages(ctx context.Context, carID uuid.UUID, images []shared.CarImage) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM car_images WHERE car_id = $1`, carID); err != nil {
		return infra.WrapRepoErr("failed to clear car images", err)
	}
	for _, img := range images {
		_, err := r.db.Exec(ctx,
			`INSERT INTO car_images (car_id, url, is_primary) VALUES ($1, $2, $3)`,
			carID, img.URL, img.IsPrimary,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert car image", err)
		}
	}
	return nil
}

func (r *CarRepository) ReplaceFeatures(ctx context.Context, carID uuid.UUID, features []string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM car_features WHERE car_id = $1`, carID); err != nil {
		return infra.WrapRepoErr("failed to clear car features", err)
	}
	for _, name := range features {
		_, err := r.db.Exec(ctx,
			`INSERT INTO car_features (car_id, name) VALUES ($1, $2)`,
			carID, name,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert car feature", err)
		}
	}
	return nil
}

func (r *CarRepository) ReplaceAvailability(ctx context.Context, carID uuid.UUID, windows []shared.AvailabilityWindow) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM car_availability WHERE car_id = $1`, carID); err != nil {
		return infra.WrapRepoErr("failed to clear car availability", err)
	}
	for _, w := range windows {
		_, err := r.db.Exec(ctx,
			`INSERT INTO car_availability (car_id, start_date, end_date) VALUES ($1, $2, $3)`,
			carID, w.Start, w.End,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert car availability", err)
		}
	}
	return nil
}

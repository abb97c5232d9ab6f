package readstore

import (
	"context"
	"fmt"
	"strings"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadStore struct {
	db infra.DBTX
}

func NewCarReadStore(db infra.DBTX) *CarReadStore {
	return &CarReadStore{db: db}
}

const carListColumns = `c.id, c.make, c.model, c.year, c.daily_rate_cents, c.location, c.seats,
	c.status, c.created_at,
	(SELECT url FROM car_images i WHERE i.car_id = c.id AND i.is_primary) AS primary_image,
	(SELECT AVG(rv.rating)::float8 FROM reviews rv
		JOIN bookings b ON b.id = rv.booking_id WHERE b.car_id = c.id) AS average_rating`

// Search filters available listings. Date filters exclude cars with an
// active booking overlapping the requested range.
func (r *CarReadStore) Search(ctx context.Context, filter queries.CarSearchFilter) ([]*queries.CarListItem, error) {
	var (
		conds = []string{"c.status = 'available'"}
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Location != nil {
		conds = append(conds, "c.location ILIKE '%' || "+arg(*filter.Location)+" || '%'")
	}
	if filter.Make != nil {
		conds = append(conds, "c.make ILIKE "+arg(*filter.Make))
	}
	if filter.MaxRate != nil {
		conds = append(conds, "c.daily_rate_cents <= "+arg(*filter.MaxRate))
	}
	if filter.MinSeats != nil {
		conds = append(conds, "c.seats >= "+arg(*filter.MinSeats))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		conds = append(conds, `NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.car_id = c.id
			  AND b.status IN ('pending', 'approved')
			  AND b.start_date <= `+arg(*filter.EndDate)+`::date
			  AND b.end_date >= `+arg(*filter.StartDate)+`::date
		)`)
	}

	query := `SELECT ` + carListColumns + `
		FROM cars c
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY c.created_at DESC
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	return r.queryList(ctx, query, args...)
}

func (r *CarReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.CarListItem, error) {
	query := `SELECT ` + carListColumns + `
		FROM cars c WHERE c.owner_id = $1
		ORDER BY c.created_at DESC`
	return r.queryList(ctx, query, ownerID)
}

func (r *CarReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.CarListItem, error) {
	query := `SELECT ` + carListColumns + `
		FROM cars c WHERE c.status = $1
		ORDER BY c.created_at ASC`
	return r.queryList(ctx, query, status)
}

func (r *CarReadStore) queryList(ctx context.Context, query string, args ...any) ([]*queries.CarListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	var result []*queries.CarListItem
	for rows.Next() {
		var (
			item      queries.CarListItem
			rateCents int64
		)
		if err := rows.Scan(&item.ID, &item.Make, &item.Model, &item.Year, &rateCents,
			&item.Location, &item.Seats, &item.Status, &item.CreatedAt,
			&item.PrimaryImage, &item.AverageRating); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		item.DailyRate = money.FromCents(rateCents).String()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car rows", err)
	}
	return result, nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	const query = `
		SELECT c.id, c.owner_id, u.username, c.make, c.model, c.year, c.color,
			c.license_plate, c.description, c.daily_rate_cents, c.location,
			c.latitude, c.longitude, c.seats, c.transmission, c.fuel_type,
			c.status, c.auto_approve_bookings, c.created_at, c.updated_at,
			(SELECT AVG(rv.rating)::float8 FROM reviews rv
				JOIN bookings b ON b.id = rv.booking_id WHERE b.car_id = c.id),
			(SELECT COUNT(*) FROM reviews rv
				JOIN bookings b ON b.id = rv.booking_id WHERE b.car_id = c.id)
		FROM cars c
		JOIN users u ON u.id = c.owner_id
		WHERE c.id = $1`

	var (
		view      queries.CarView
		rateCents int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.OwnerID, &view.OwnerUsername, &view.Make, &view.Model, &view.Year,
		&view.Color, &view.LicensePlate, &view.Description, &rateCents, &view.Location,
		&view.Latitude, &view.Longitude, &view.Seats, &view.Transmission, &view.FuelType,
		&view.Status, &view.AutoApproveBookings, &view.CreatedAt, &view.UpdatedAt,
		&view.AverageRating, &view.ReviewCount,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}
	view.DailyRate = money.FromCents(rateCents).String()

	if view.Images, err = r.findImages(ctx, id); err != nil {
		return nil, err
	}
	if view.Features, err = r.findFeatures(ctx, id); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *CarReadStore) findImages(ctx context.Context, carID uuid.UUID) ([]queries.CarImageView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, url, is_primary FROM car_images WHERE car_id = $1 ORDER BY is_primary DESC, id`,
		carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car images", err)
	}
	defer rows.Close()

	images := []queries.CarImageView{}
	for rows.Next() {
		var img queries.CarImageView
		if err := rows.Scan(&img.ID, &img.URL, &img.IsPrimary); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car image row", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car image rows", err)
	}
	return images, nil
}

func (r *CarReadStore) findFeatures(ctx context.Context, carID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name FROM car_features WHERE car_id = $1 ORDER BY name`, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car features", err)
	}
	defer rows.Close()

	features := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car feature row", err)
		}
		features = append(features, name)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car feature rows", err)
	}
	return features, nil
}

func (r *CarReadStore) FindReviewsByCar(ctx context.Context, carID uuid.UUID) ([]*queries.ReviewView, error) {
	const query = `
		SELECT rv.id, rv.booking_id, u.username, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN bookings b ON b.id = rv.booking_id
		JOIN users u ON u.id = b.user_id
		WHERE b.car_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		item := &queries.ReviewView{}
		if err := rows.Scan(&item.ID, &item.BookingID, &item.ReviewerUsername,
			&item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

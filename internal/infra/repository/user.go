package repository

import (
	"context"
	"time"

	"driveshare/internal/domain/user"
	"driveshare/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, role, first_name, last_name,
	phone_number, address, is_verified, is_suspended, points, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		u.ID(), u.Username().String(), u.Email().String(), u.PasswordHash(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(ctx, query, email)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id                            uuid.UUID
		username, email, passwordHash string
		role, firstName, lastName     string
		phoneNumber, address          *string
		isVerified, isSuspended       bool
		points                        int
		createdAt, updatedAt          time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &username, &email, &passwordHash, &role, &firstName, &lastName,
		&phoneNumber, &address, &isVerified, &isSuspended, &points, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return reconstructUser(id, username, email, passwordHash, role, firstName, lastName,
		phoneNumber, address, isVerified, isSuspended, points, createdAt, updatedAt)
}

func (r *UserRepository) ListIDsByRole(ctx context.Context, role user.Role) ([]uuid.UUID, error) {
	const query = `SELECT id FROM users WHERE role = $1 AND NOT is_suspended`

	rows, err := r.db.Query(ctx, query, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users by role", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list users by role", err)
	}
	return ids, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET role = $2, first_name = $3, last_name = $4, phone_number = $5,
			address = $6, is_verified = $7, is_suspended = $8, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		u.ID(), u.Role().String(), u.FirstName(), u.LastName(),
		u.PhoneNumber(), u.Address(), u.IsVerified(), u.IsSuspended(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) AddPoints(ctx context.Context, id uuid.UUID, amount int) error {
	const query = `UPDATE users SET points = points + $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to add points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) DeductPoints(ctx context.Context, id uuid.UUID, amount int) error {
	const query = `
		UPDATE users SET points = points - $2, updated_at = now()
		WHERE id = $1 AND points >= $2`

	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to deduct points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient points balance", nil, infra.KindConflict)
	}
	return nil
}

func reconstructUser(
	id uuid.UUID,
	username, email, passwordHash, role, firstName, lastName string,
	phoneNumber, address *string,
	isVerified, isSuspended bool,
	points int,
	createdAt, updatedAt time.Time,
) (*user.User, error) {
	un, err := user.NewUsername(username)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid username in database", err)
	}
	em, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid email in database", err)
	}
	ro, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in database", err)
	}
	return user.Reconstruct(id, un, em, passwordHash, ro, firstName, lastName,
		phoneNumber, address, isVerified, isSuspended, points, createdAt, updatedAt), nil
}

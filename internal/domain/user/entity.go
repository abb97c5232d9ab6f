package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyOwner      = errors.New("user is already a car owner")
	ErrRoleNotUpgradable = errors.New("only regular users can become owners")
	ErrAlreadySuspended  = errors.New("user is already suspended")
	ErrNotSuspended      = errors.New("user is not suspended")
	ErrNegativePoints    = errors.New("points amount must be positive")
	ErrNotEnoughPoints   = errors.New("not enough points")
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	role         Role
	firstName    string
	lastName     string
	phoneNumber  *string
	address      *string
	isVerified   bool
	isSuspended  bool
	points       int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func Reconstruct(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	role Role,
	firstName, lastName string,
	phoneNumber, address *string,
	isVerified, isSuspended bool,
	points int,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phoneNumber,
		address:      address,
		isVerified:   isVerified,
		isSuspended:  isSuspended,
		points:       points,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// BecomeOwner upgrades a regular user to a car owner. The upgrade is one-way.
func (u *User) BecomeOwner() error {
	switch u.role {
	case RoleOwner:
		return ErrAlreadyOwner
	case RoleRegular:
		u.role = RoleOwner
		return nil
	default:
		return ErrRoleNotUpgradable
	}
}

func (u *User) UpdateProfile(firstName, lastName string, phoneNumber, address *string) {
	u.firstName = firstName
	u.lastName = lastName
	u.phoneNumber = phoneNumber
	u.address = address
}

func (u *User) Verify() { u.isVerified = true }

func (u *User) Suspend() error {
	if u.isSuspended {
		return ErrAlreadySuspended
	}
	u.isSuspended = true
	return nil
}

func (u *User) Unsuspend() error {
	if !u.isSuspended {
		return ErrNotSuspended
	}
	u.isSuspended = false
	return nil
}

func (u *User) AwardPoints(amount int) error {
	if amount <= 0 {
		return ErrNegativePoints
	}
	u.points += amount
	return nil
}

func (u *User) RedeemPoints(amount int) error {
	if amount <= 0 {
		return ErrNegativePoints
	}
	if u.points < amount {
		return ErrNotEnoughPoints
	}
	u.points -= amount
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) PhoneNumber() *string { return u.phoneNumber }
func (u *User) Address() *string     { return u.address }
func (u *User) IsVerified() bool     { return u.isVerified }
func (u *User) IsSuspended() bool    { return u.isSuspended }
func (u *User) Points() int          { return u.points }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

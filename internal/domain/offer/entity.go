package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("offer title must not be empty")
	ErrNegativePoints     = errors.New("points required must not be negative")
	ErrOfferInactive      = errors.New("offer is not active")
	ErrInsufficientPoints = errors.New("not enough points for this offer")
)

type Offer struct {
	id             uuid.UUID
	title          string
	description    string
	pointsRequired int
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOffer(title, description string, pointsRequired int) (*Offer, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pointsRequired < 0 {
		return nil, ErrNegativePoints
	}
	return &Offer{
		id:             uuid.New(),
		title:          title,
		description:    description,
		pointsRequired: pointsRequired,
		isActive:       true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	title, description string,
	pointsRequired int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:             id,
		title:          title,
		description:    description,
		pointsRequired: pointsRequired,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (o *Offer) Update(title, description string, pointsRequired int) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if pointsRequired < 0 {
		return ErrNegativePoints
	}
	o.title = title
	o.description = description
	o.pointsRequired = pointsRequired
	return nil
}

func (o *Offer) Activate()   { o.isActive = true }
func (o *Offer) Deactivate() { o.isActive = false }

// CanRedeem checks both the offer state and the member's balance.
func (o *Offer) CanRedeem(points int) error {
	if !o.isActive {
		return ErrOfferInactive
	}
	if points < o.pointsRequired {
		return ErrInsufficientPoints
	}
	return nil
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) Title() string        { return o.title }
func (o *Offer) Description() string  { return o.description }
func (o *Offer) PointsRequired() int  { return o.pointsRequired }
func (o *Offer) IsActive() bool       { return o.isActive }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }

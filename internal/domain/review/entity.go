package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrEmptyComment        = errors.New("comment must not be empty")
	ErrBookingNotEligible  = errors.New("booking is not eligible for review")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
)

type Rating int

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return 0, ErrInvalidRating
	}
	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}

type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   string
	createdAt time.Time
}

// NewReview is only valid for a completed booking; the command layer checks
// the booking state and ownership before calling it.
func NewReview(bookingID uuid.UUID, ratingValue int, comment string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	if comment == "" {
		return nil, ErrEmptyComment
	}
	return &Review{
		id:        uuid.New(),
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
	}, nil
}

func Reconstruct(id, bookingID uuid.UUID, rating Rating, comment string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

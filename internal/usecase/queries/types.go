package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsSuspended bool      `json:"is_suspended"`
}

type UserProfileView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Address     *string   `json:"address,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsSuspended bool      `json:"is_suspended"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserListItem struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	IsSuspended bool      `json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
}

type CarImageView struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
}

type CarView struct {
	ID                  uuid.UUID      `json:"id"`
	OwnerID             uuid.UUID      `json:"owner_id"`
	OwnerUsername       string         `json:"owner_username"`
	Make                string         `json:"make"`
	Model               string         `json:"model"`
	Year                int            `json:"year"`
	Color               string         `json:"color"`
	LicensePlate        string         `json:"license_plate"`
	Description         string         `json:"description"`
	DailyRate           string         `json:"daily_rate"`
	Location            string         `json:"location"`
	Latitude            *float64       `json:"latitude,omitempty"`
	Longitude           *float64       `json:"longitude,omitempty"`
	Seats               int            `json:"seats"`
	Transmission        string         `json:"transmission"`
	FuelType            string         `json:"fuel_type"`
	Status              string         `json:"status"`
	AutoApproveBookings bool           `json:"auto_approve_bookings"`
	Images              []CarImageView `json:"images"`
	Features            []string       `json:"features"`
	AverageRating       *float64       `json:"average_rating,omitempty"`
	ReviewCount         int64          `json:"review_count"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type CarListItem struct {
	ID            uuid.UUID `json:"id"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	DailyRate     string    `json:"daily_rate"`
	Location      string    `json:"location"`
	Seats         int       `json:"seats"`
	Status        string    `json:"status"`
	PrimaryImage  *string   `json:"primary_image,omitempty"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	RenterUsername  string     `json:"renter_username"`
	CarID           uuid.UUID  `json:"car_id"`
	CarMake         string     `json:"car_make"`
	CarModel        string     `json:"car_model"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalCost       string     `json:"total_cost"`
	PlatformFee     string     `json:"platform_fee"`
	OwnerPayout     string     `json:"owner_payout"`
	Status          string     `json:"status"`
	PointsAwardedAt *time.Time `json:"points_awarded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	CarMake   string    `json:"car_make"`
	CarModel  string    `json:"car_model"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	TotalCost string    `json:"total_cost"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewView struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"booking_id"`
	ReviewerUsername string    `json:"reviewer_username"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReportView struct {
	ID               uuid.UUID  `json:"id"`
	ReporterID       uuid.UUID  `json:"reporter_id"`
	ReporterUsername string     `json:"reporter_username"`
	ReportType       string     `json:"report_type"`
	Reason           string     `json:"reason"`
	ReportedUserID   *uuid.UUID `json:"reported_user_id,omitempty"`
	ReportedCarID    *uuid.UUID `json:"reported_car_id,omitempty"`
	Status           string     `json:"status"`
	AdminNotes       *string    `json:"admin_notes,omitempty"`
	ResolvedBy       *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type TicketView struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Username   string            `json:"username"`
	Subject    string            `json:"subject"`
	Message    string            `json:"message"`
	Status     string            `json:"status"`
	AssigneeID *uuid.UUID        `json:"assignee_id,omitempty"`
	Replies    []TicketReplyView `json:"replies"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type TicketListItem struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketReplyView struct {
	ID             uuid.UUID `json:"id"`
	TicketID       uuid.UUID `json:"ticket_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

type OfferView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type RedemptionView struct {
	ID          uuid.UUID `json:"id"`
	OfferID     uuid.UUID `json:"offer_id"`
	OfferTitle  string    `json:"offer_title"`
	PointsSpent int       `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type AdminDashboard struct {
	TotalUsers        int64 `json:"total_users"`
	TotalCars         int64 `json:"total_cars"`
	PendingCars       int64 `json:"pending_cars"`
	ActiveBookings    int64 `json:"active_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	PendingReports    int64 `json:"pending_reports"`
	OpenTickets       int64 `json:"open_tickets"`
}

type OwnerDashboard struct {
	Cars             int64  `json:"cars"`
	PendingRequests  int64  `json:"pending_requests"`
	UpcomingBookings int64  `json:"upcoming_bookings"`
	TotalEarnings    string `json:"total_earnings"`
}

type DashboardQueries interface {
	Admin(ctx context.Context) (*AdminDashboard, error)
	Owner(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error)
}

type DashboardReadStore interface {
	AdminCounts(ctx context.Context) (*AdminDashboard, error)
	OwnerCounts(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) Admin(ctx context.Context) (*AdminDashboard, error) {
	return q.readStore.AdminCounts(ctx)
}

func (q *dashboardQueriesImpl) Owner(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error) {
	return q.readStore.OwnerCounts(ctx, ownerID)
}

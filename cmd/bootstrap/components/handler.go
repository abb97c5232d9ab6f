package components

import (
	"driveshare/internal/handler"
	"driveshare/internal/handler/api"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/handler/ws"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"go.uber.org/fx"
)

// queryDeps bundles the read-side dependencies of the admin surface so the
// provider signatures stay manageable.
type queryDeps struct {
	fx.In

	User      queries.UserQueries
	Car       queries.CarQueries
	Report    queries.ReportQueries
	Ticket    queries.TicketQueries
	Offer     queries.OfferQueries
	Revenue   queries.RevenueQueries
	Dashboard queries.DashboardQueries
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		ws.NewHub,
		func(hub *ws.Hub) commands.TicketEventPublisher { return hub },
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewCarHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewReportHandler,
		api.NewTicketHandler,
		api.NewOfferHandler,
		api.NewAdminHandler,
		NewAdminHandlerDeps,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminHandlerDeps(
	userCommands commands.UserCommands,
	carCommands commands.CarCommands,
	bookingCommands commands.BookingCommands,
	reportCommands commands.ReportCommands,
	ticketCommands commands.TicketCommands,
	offerCommands commands.OfferCommands,
	deps queryDeps,
) api.AdminHandlerDeps {
	return api.AdminHandlerDeps{
		UserCommands:     userCommands,
		CarCommands:      carCommands,
		BookingCommands:  bookingCommands,
		ReportCommands:   reportCommands,
		TicketCommands:   ticketCommands,
		OfferCommands:    offerCommands,
		UserQueries:      deps.User,
		CarQueries:       deps.Car,
		ReportQueries:    deps.Report,
		TicketQueries:    deps.Ticket,
		OfferQueries:     deps.Offer,
		RevenueQueries:   deps.Revenue,
		DashboardQueries: deps.Dashboard,
	}
}

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	car *api.CarHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	report *api.ReportHandler,
	ticket *api.TicketHandler,
	offer *api.OfferHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		User:    user,
		Car:     car,
		Booking: booking,
		Review:  review,
		Report:  report,
		Ticket:  ticket,
		Offer:   offer,
		Admin:   admin,
	}
}

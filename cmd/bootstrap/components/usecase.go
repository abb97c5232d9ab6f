package components

import (
	"driveshare/internal/domain/booking"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/config"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.Pricer {
		return booking.NewFeePricer(cfg.Pricing.PlatformFeePercent)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCarQueries,
		queries.NewBookingQueries,
		queries.NewTicketQueries,
		queries.NewOfferQueries,
		queries.NewReportQueries,
		queries.NewRevenueQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewCarCommands,
		commands.NewReviewCommands,
		commands.NewReportCommands,
		commands.NewTicketCommands,
		commands.NewOfferCommands,
		func(
			uow shared.UnitOfWork,
			bookingQueries queries.BookingQueries,
			pricer booking.Pricer,
			clk clock.Clock,
			cfg config.Config,
		) commands.BookingCommands {
			return commands.NewBookingCommands(uow, bookingQueries, pricer, clk, cfg.Loyalty.CompletionPoints)
		},
	),
)

package components

import (
	"driveshare/internal/infra"
	"driveshare/internal/infra/readstore"
	"driveshare/internal/infra/tokencache"
	"driveshare/internal/infra/uow"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Options(
	ReadStoreModule,
	TokenStoreModule,
)

// ReadStoreModule wires everything backed by the database pool. Tests reuse
// it with an in-memory token store instead of Redis.
var ReadStoreModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

var TokenStoreModule = fx.Module("persistence/tokens",
	fx.Provide(
		fx.Annotate(
			tokencache.NewRedisTokenStore,
			fx.As(new(commands.TokenStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

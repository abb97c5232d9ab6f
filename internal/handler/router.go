package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"driveshare/internal/handler/api"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	User    *api.UserHandler
	Car     *api.CarHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Report  *api.ReportHandler
	Ticket  *api.TicketHandler
	Offer   *api.OfferHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me/profile", Handler: h.User.GetProfile},
				{Method: http.MethodPut, Path: "/me/profile", Handler: h.User.UpdateProfile},
				{Method: http.MethodPost, Path: "/me/become-owner", Handler: h.User.BecomeOwner},
				{Method: http.MethodGet, Path: "/me/redemptions", Handler: h.User.ListRedemptions},
			})
		}

		cars := apiGroup.Group("/cars")
		{
			// Listing detail stays readable without a session; owners see
			// their hidden listings through the optional token.
			public := cars.Group("")
			public.Use(authMiddleware.OptionalAuth())
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Car.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.GetByID},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Car.ListReviews},
			})

			owned := cars.Group("")
			owned.Use(authMiddleware.RequireAuth())
			addRoutes(owned, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Car.ListMine},
				{Method: http.MethodPost, Path: "", Handler: h.Car.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Car.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Car.Delete},
				{Method: http.MethodPost, Path: "/:id/maintenance", Handler: h.Car.SetMaintenance},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/requests", Handler: h.Booking.ListRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetByID},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.Reject},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Report.Create},
			})
		}

		tickets := apiGroup.Group("/tickets")
		tickets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Ticket.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Ticket.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.GetByID},
				{Method: http.MethodPost, Path: "/:id/replies", Handler: h.Ticket.Reply},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Ticket.Close},
				{Method: http.MethodPost, Path: "/:id/reopen", Handler: h.Ticket.Reopen},
				{Method: http.MethodGet, Path: "/:id/stream", Handler: h.Ticket.Stream},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.GetByID},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: h.Offer.Redeem},
			})
		}

		owners := apiGroup.Group("/owners")
		owners.Use(authMiddleware.RequireAuth())
		{
			addRoutes(owners, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.OwnerDashboard},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			// Support agents handle the ticket queue; everything else is admin only.
			staff := admin.Group("/tickets")
			staff.Use(authMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Admin.ListTickets},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: h.Admin.AssignTicket},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.Admin.ResolveTicket},
			})

			adminOnly := admin.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPost, Path: "/users/:id/suspend", Handler: h.Admin.SuspendUser},
				{Method: http.MethodPost, Path: "/users/:id/unsuspend", Handler: h.Admin.UnsuspendUser},
				{Method: http.MethodGet, Path: "/cars/pending", Handler: h.Admin.ListPendingCars},
				{Method: http.MethodPost, Path: "/cars/:id/approve", Handler: h.Admin.ApproveCar},
				{Method: http.MethodPost, Path: "/cars/:id/reject", Handler: h.Admin.RejectCar},
				{Method: http.MethodPost, Path: "/cars/:id/remove", Handler: h.Admin.RemoveCar},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Admin.CompleteBooking},
				{Method: http.MethodGet, Path: "/reports", Handler: h.Admin.ListReports},
				{Method: http.MethodGet, Path: "/reports/:id", Handler: h.Admin.GetReport},
				{Method: http.MethodPost, Path: "/reports/:id/resolve", Handler: h.Admin.ResolveReport},
				{Method: http.MethodPost, Path: "/reports/:id/dismiss", Handler: h.Admin.DismissReport},
				{Method: http.MethodGet, Path: "/offers", Handler: h.Admin.ListAllOffers},
				{Method: http.MethodPost, Path: "/offers", Handler: h.Admin.CreateOffer},
				{Method: http.MethodPut, Path: "/offers/:id", Handler: h.Admin.UpdateOffer},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Admin.Revenue},
				{Method: http.MethodGet, Path: "/revenue/summary", Handler: h.Admin.RevenueSummary},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

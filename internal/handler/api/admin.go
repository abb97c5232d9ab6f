package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler groups moderation, reporting and catalog management. All
// routes behind it are staff only; fine-grained role checks stay in the
// usecase layer.
type AdminHandler struct {
	userCommands     commands.UserCommands
	carCommands      commands.CarCommands
	bookingCommands  commands.BookingCommands
	reportCommands   commands.ReportCommands
	ticketCommands   commands.TicketCommands
	offerCommands    commands.OfferCommands
	userQueries      queries.UserQueries
	carQueries       queries.CarQueries
	reportQueries    queries.ReportQueries
	ticketQueries    queries.TicketQueries
	offerQueries     queries.OfferQueries
	revenueQueries   queries.RevenueQueries
	dashboardQueries queries.DashboardQueries
}

type AdminHandlerDeps struct {
	UserCommands     commands.UserCommands
	CarCommands      commands.CarCommands
	BookingCommands  commands.BookingCommands
	ReportCommands   commands.ReportCommands
	TicketCommands   commands.TicketCommands
	OfferCommands    commands.OfferCommands
	UserQueries      queries.UserQueries
	CarQueries       queries.CarQueries
	ReportQueries    queries.ReportQueries
	TicketQueries    queries.TicketQueries
	OfferQueries     queries.OfferQueries
	RevenueQueries   queries.RevenueQueries
	DashboardQueries queries.DashboardQueries
}

func NewAdminHandler(deps AdminHandlerDeps) *AdminHandler {
	return &AdminHandler{
		userCommands:     deps.UserCommands,
		carCommands:      deps.CarCommands,
		bookingCommands:  deps.BookingCommands,
		reportCommands:   deps.ReportCommands,
		ticketCommands:   deps.TicketCommands,
		offerCommands:    deps.OfferCommands,
		userQueries:      deps.UserQueries,
		carQueries:       deps.CarQueries,
		reportQueries:    deps.ReportQueries,
		ticketQueries:    deps.TicketQueries,
		offerQueries:     deps.OfferQueries,
		revenueQueries:   deps.RevenueQueries,
		dashboardQueries: deps.DashboardQueries,
	}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.UserListItem
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 32)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 32)

	items, err := h.userQueries.ListUsers(c.Request.Context(), int32(limit), int32(offset))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.UserListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Suspend a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id}/suspend [post]
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	h.moderateUser(c, true)
}

// @Summary Lift a user suspension
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id}/unsuspend [post]
func (h *AdminHandler) UnsuspendUser(c *gin.Context) {
	h.moderateUser(c, false)
}

func (h *AdminHandler) moderateUser(c *gin.Context, suspend bool) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if suspend {
		err = h.userCommands.SuspendUser(c.Request.Context(), role, targetID)
	} else {
		err = h.userCommands.UnsuspendUser(c.Request.Context(), role, targetID)
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{"error": "Suspension state unchanged"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	msg := "User suspended"
	if !suspend {
		msg = "User suspension lifted"
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary List car listings awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CarListItem
// @Router /admin/cars/pending [get]
func (h *AdminHandler) ListPendingCars(c *gin.Context) {
	items, err := h.carQueries.ListPendingApproval(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.CarListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Approve a car listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/cars/{id}/approve [post]
func (h *AdminHandler) ApproveCar(c *gin.Context) {
	h.reviewCar(c, "approve")
}

// @Summary Reject a car listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/cars/{id}/reject [post]
func (h *AdminHandler) RejectCar(c *gin.Context) {
	h.reviewCar(c, "reject")
}

// @Summary Remove a live car listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/cars/{id}/remove [post]
func (h *AdminHandler) RemoveCar(c *gin.Context) {
	h.reviewCar(c, "remove")
}

func (h *AdminHandler) reviewCar(c *gin.Context, action string) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var msg string
	switch action {
	case "approve":
		err = h.carCommands.Approve(c.Request.Context(), role, carID)
		msg = "Listing approved"
	case "reject":
		err = h.carCommands.Reject(c.Request.Context(), role, carID)
		msg = "Listing rejected"
	case "remove":
		err = h.carCommands.Remove(c.Request.Context(), role, carID)
		msg = "Listing removed"
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{"error": "Listing is not in a reviewable state"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Mark a booking as completed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.bookingCommands.Complete(c.Request.Context(), adminID, role, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking cannot be completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking completed"})
}

// @Summary List reports
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} queries.ReportView
// @Router /admin/reports [get]
func (h *AdminHandler) ListReports(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, err := h.reportQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.ReportView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} queries.ReportView
// @Failure 404 {object} map[string]string
// @Router /admin/reports/{id} [get]
func (h *AdminHandler) GetReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	view, err := h.reportQueries.GetByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, queries.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Resolve a report with a moderation action
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reqdto.ResolveReportRequest true "Moderation action"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} map[string]string
// @Router /admin/reports/{id}/resolve [post]
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.reportCommands.Resolve(c.Request.Context(), adminID, role, reportID, req); err != nil {
		h.writeReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Report resolved"})
}

// @Summary Dismiss a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} map[string]string
// @Router /admin/reports/{id}/dismiss [post]
func (h *AdminHandler) DismissReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.reportCommands.Dismiss(c.Request.Context(), adminID, role, reportID); err != nil {
		h.writeReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Report dismissed"})
}

func (h *AdminHandler) writeReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, commands.ErrReportActionMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action does not match the report target"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusConflict, gin.H{"error": "Report was already reviewed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary List all tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} queries.TicketListItem
// @Router /admin/tickets [get]
func (h *AdminHandler) ListTickets(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, err := h.ticketQueries.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.TicketListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Assign a ticket to an agent
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.AssignTicketRequest true "Assignee"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/tickets/{id}/assign [post]
func (h *AdminHandler) AssignTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.ticketCommands.Assign(c.Request.Context(), role, ticketID, req.AssigneeID); err != nil {
		h.writeTicketAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Ticket assigned"})
}

// @Summary Resolve a ticket
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/tickets/{id}/resolve [post]
func (h *AdminHandler) ResolveTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.ticketCommands.Resolve(c.Request.Context(), role, ticketID); err != nil {
		h.writeTicketAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Ticket resolved"})
}

func (h *AdminHandler) writeTicketAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusConflict, gin.H{"error": "Ticket does not allow this action"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Create a reward offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.IDResponse
// @Router /admin/offers [post]
func (h *AdminHandler) CreateOffer(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.offerCommands.Create(c.Request.Context(), role, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid offer data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update a reward offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Offer"
// @Success 200 {object} resdto.MessageResponse
// @Router /admin/offers/{id} [put]
func (h *AdminHandler) UpdateOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.offerCommands.Update(c.Request.Context(), role, offerID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid offer data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Offer updated"})
}

// @Summary All offers including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferResponse
// @Router /admin/offers [get]
func (h *AdminHandler) ListAllOffers(c *gin.Context) {
	views, err := h.offerQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resps, err := resdto.FromOfferViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resps)
}

// @Summary Platform revenue over time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param granularity query string false "day or month"
// @Param start_date query string false "Range start (YYYY-MM-DD), defaults to 180 days back"
// @Param end_date query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} queries.RevenueSeries
// @Failure 400 {object} map[string]string
// @Router /admin/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	granularity, err := queries.NewGranularity(c.Query("granularity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Granularity must be day or month"})
		return
	}

	var from, to *time.Time
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		from = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		to = &t
	}

	series, err := h.revenueQueries.Series(c.Request.Context(), granularity, from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report period"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary Revenue summary for a date range
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} queries.RevenueSummary
// @Failure 400 {object} map[string]string
// @Router /admin/revenue/summary [get]
func (h *AdminHandler) RevenueSummary(c *gin.Context) {
	summary, err := h.revenueQueries.Summary(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report period"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AdminDashboard
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboardQueries.Admin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Owner dashboard counters
// @Tags owners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.OwnerDashboard
// @Router /owners/dashboard [get]
func (h *AdminHandler) OwnerDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	dashboard, err := h.dashboardQueries.Owner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

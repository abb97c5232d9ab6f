package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/pkg/money"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

// @Summary Search available cars
// @Tags cars
// @Produce json
// @Param location query string false "Location substring"
// @Param make query string false "Car make"
// @Param max_rate query string false "Max daily rate, e.g. 80.00"
// @Param min_seats query int false "Minimum seats"
// @Param start_date query string false "Rental start (YYYY-MM-DD)"
// @Param end_date query string false "Rental end (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.CarListItem
// @Failure 400 {object} map[string]string
// @Router /cars [get]
func (h *CarHandler) Search(c *gin.Context) {
	filter, err := h.buildSearchFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.carQueries.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.CarListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get car details
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} queries.CarView
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) GetByID(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	// Anonymous access is fine here; hidden listings stay hidden.
	actorID, _ := middleware.GetUserID(c)
	actorRole, _ := middleware.GetUserRole(c)

	view, err := h.carQueries.GetByID(c.Request.Context(), actorID, actorRole, carID)
	if err != nil {
		if errors.Is(err, queries.ErrCarNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List reviews for a car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {array} queries.ReviewView
// @Router /cars/{id}/reviews [get]
func (h *CarHandler) ListReviews(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	items, err := h.carQueries.ListReviews(c.Request.Context(), carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.ReviewView{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List own listings
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CarListItem
// @Router /cars/mine [get]
func (h *CarHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.carQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.CarListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List a car for rent
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car listing"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.carCommands.Create(c.Request.Context(), userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Owner role required"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid listing data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update a listing
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Car listing"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.carCommands.Update(c.Request.Context(), userID, role, carID, req); err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Listing updated"})
}

// @Summary Delete a listing
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.carCommands.Delete(c.Request.Context(), userID, role, carID); err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Listing deleted"})
}

// @Summary Toggle maintenance mode
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param on query bool true "Maintenance on or off"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Router /cars/{id}/maintenance [post]
func (h *CarHandler) SetMaintenance(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	on, err := strconv.ParseBool(c.DefaultQuery("on", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance flag"})
		return
	}

	if err := h.carCommands.SetMaintenance(c.Request.Context(), userID, carID, on); err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Maintenance state updated"})
}

func (h *CarHandler) writeCarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
	case errors.Is(err, commands.ErrNotCarOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the car owner"})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid listing data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *CarHandler) buildSearchFilter(c *gin.Context) (queries.CarSearchFilter, error) {
	filter := queries.CarSearchFilter{Limit: 20}

	if v := c.Query("location"); v != "" {
		filter.Location = &v
	}
	if v := c.Query("make"); v != "" {
		filter.Make = &v
	}
	if v := c.Query("max_rate"); v != "" {
		rate, err := money.Parse(v)
		if err != nil {
			return filter, errors.New("invalid max_rate")
		}
		cents := rate.Cents()
		filter.MaxRate = &cents
	}
	if v := c.Query("min_seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil || seats < 1 {
			return filter, errors.New("invalid min_seats")
		}
		filter.MinSeats = &seats
	}

	startDate, endDate := c.Query("start_date"), c.Query("end_date")
	if (startDate == "") != (endDate == "") {
		return filter, errors.New("start_date and end_date must be given together")
	}
	if startDate != "" {
		filter.StartDate = &startDate
		filter.EndDate = &endDate
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 32)
		if err != nil || limit < 1 || limit > 100 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = int32(limit)
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.ParseInt(v, 10, 32)
		if err != nil || offset < 0 {
			return filter, errors.New("invalid offset")
		}
		filter.Offset = int32(offset)
	}

	return filter, nil
}

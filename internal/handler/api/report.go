package api

import (
	"errors"
	"net/http"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportCommands commands.ReportCommands
}

func NewReportHandler(reportCommands commands.ReportCommands) *ReportHandler {
	return &ReportHandler{reportCommands: reportCommands}
}

// @Summary Report a user or a car
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReportRequest true "Report"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.reportCommands.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReportTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Report target not found"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid report data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

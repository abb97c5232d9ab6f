package api

import (
	"errors"
	"net/http"

	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
	offerQueries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		offerQueries:  offerQueries,
	}
}

// @Summary List active offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	views, err := h.offerQueries.ListActive(c.Request.Context())
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

// @Summary Get an offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) GetByID(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	view, err := h.offerQueries.GetByID(c.Request.Context(), offerID)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromOfferView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Redeem loyalty points on an offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 201 {object} resdto.IDResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id}/redeem [post]
func (h *OfferHandler) Redeem(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := h.offerCommands.Redeem(c.Request.Context(), userID, offerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		case errors.Is(err, commands.ErrOfferNotRedeemable):
			c.JSON(http.StatusConflict, gin.H{"error": "Offer cannot be redeemed"})
		case errors.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough loyalty points"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

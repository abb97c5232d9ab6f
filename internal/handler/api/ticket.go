package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"driveshare/internal/domain/user"
	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/handler/ws"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var ticketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer for the rest of the API;
	// tokens gate the stream itself.
	CheckOrigin: func(*http.Request) bool { return true },
}

type TicketHandler struct {
	ticketCommands commands.TicketCommands
	ticketQueries  queries.TicketQueries
	hub            *ws.Hub
}

func NewTicketHandler(ticketCommands commands.TicketCommands, ticketQueries queries.TicketQueries, hub *ws.Hub) *TicketHandler {
	return &TicketHandler{
		ticketCommands: ticketCommands,
		ticketQueries:  ticketQueries,
		hub:            hub,
	}
}

// @Summary Open a support ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTicketRequest true "Ticket"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.ticketCommands.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid ticket data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary List own tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TicketListItem
// @Router /tickets [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.ticketQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if items == nil {
		items = []*queries.TicketListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get a ticket with replies
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetByID(c *gin.Context) {
	view, ok := h.loadTicket(c)
	if !ok {
		return
	}

	resp, err := resdto.FromTicketView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reply on a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.ReplyTicketRequest true "Reply"
// @Success 201 {object} resdto.TicketReplyResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id}/replies [post]
func (h *TicketHandler) Reply(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.ticketCommands.Reply(c.Request.Context(), userID, role, ticketID, req)
	if err != nil {
		h.writeTicketError(c, err)
		return
	}

	resp, err := resdto.FromTicketReplyView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Close a ticket (staff only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Router /tickets/{id}/close [post]
func (h *TicketHandler) Close(c *gin.Context) {
	h.changeStatus(c, h.ticketCommands.Close, "Ticket closed")
}

// @Summary Reopen a ticket (staff only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Router /tickets/{id}/reopen [post]
func (h *TicketHandler) Reopen(c *gin.Context) {
	h.changeStatus(c, h.ticketCommands.Reopen, "Ticket reopened")
}

// @Summary Live ticket updates
// @Description Upgrades to a websocket. The server streams replies and
// @Description status changes; message frames sent by the client are stored
// @Description as replies and rebroadcast to every subscriber.
// @Tags tickets
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Router /tickets/{id}/stream [get]
func (h *TicketHandler) Stream(c *gin.Context) {
	// Access check runs before the upgrade; after it the response writer
	// is hijacked and JSON errors are no longer possible.
	view, ok := h.loadTicket(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	conn, err := ticketUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "ticket_id", view.ID, "error", err.Error())
		return
	}

	// The request context dies with the hijacked connection; persisting a
	// reply gets its own deadline. Reply broadcasts through the hub, so
	// the sender sees their own message come back like everyone else.
	h.hub.Subscribe(view.ID, conn, func(message string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		req := reqdto.ReplyTicketRequest{Message: message}
		if _, err := h.ticketCommands.Reply(ctx, userID, role, view.ID, req); err != nil {
			slog.Warn("failed to store websocket reply",
				"ticket_id", view.ID, "sender_id", userID, "error", err.Error())
		}
	})
}

func (h *TicketHandler) loadTicket(c *gin.Context) (*queries.TicketView, bool) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return nil, false
	}

	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	view, err := h.ticketQueries.GetByID(c.Request.Context(), userID, role, ticketID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTicketNotFound), errors.Is(err, queries.ErrTicketAccess):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return nil, false
	}
	return view, true
}

func (h *TicketHandler) changeStatus(c *gin.Context, fn func(context.Context, user.Role, uuid.UUID) error, msg string) {
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

	if err := fn(c.Request.Context(), role, ticketID); err != nil {
		h.writeTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

func (h *TicketHandler) writeTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, commands.ErrTicketAccess), errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "No access to this ticket"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusConflict, gin.H{"error": "Ticket does not allow this action"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Package ws streams ticket updates to subscribed clients over websockets.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBuffer     = 16
	maxInboundSize = 8192
)

type Event struct {
	Type     string                   `json:"type"`
	TicketID uuid.UUID                `json:"ticket_id"`
	Reply    *queries.TicketReplyView `json:"reply,omitempty"`
	Status   string                   `json:"status,omitempty"`
}

// inboundFrame is what clients send on the socket to post a reply.
type inboundFrame struct {
	Message string `json:"message"`
}

// InboundFunc persists a reply sent over the socket. The subscriber's
// identity is bound at subscribe time, so the hub only forwards the text.
type InboundFunc func(message string)

// Hub tracks subscribers per ticket. Broadcasts never block: a subscriber
// that cannot keep up is dropped.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uuid.UUID]map[*client]struct{})}
}

type client struct {
	hub      *Hub
	ticketID uuid.UUID
	conn     *websocket.Conn
	send     chan []byte
	inbound  InboundFunc
}

// Subscribe attaches a connection to a ticket room and blocks until the
// client disconnects. Access control happens before the upgrade. Data
// frames received from the client are handed to inbound.
func (h *Hub) Subscribe(ticketID uuid.UUID, conn *websocket.Conn, inbound InboundFunc) {
	c := &client{
		hub:      h,
		ticketID: ticketID,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		inbound:  inbound,
	}

	h.mu.Lock()
	room, ok := h.rooms[ticketID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[ticketID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	c.readPump()
}

func (h *Hub) PublishReply(ticketID uuid.UUID, reply *queries.TicketReplyView) {
	h.broadcast(ticketID, Event{Type: "reply", TicketID: ticketID, Reply: reply})
}

func (h *Hub) PublishStatus(ticketID uuid.UUID, status string) {
	h.broadcast(ticketID, Event{Type: "status", TicketID: ticketID, Status: status})
}

func (h *Hub) broadcast(ticketID uuid.UUID, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal ticket event", "ticket_id", ticketID, "error", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.rooms[ticketID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	room, ok := h.rooms[c.ticketID]
	if ok {
		if _, present := room[c]; present {
			delete(room, c)
			close(c.send)
		}
		if len(room) == 0 {
			delete(h.rooms, c.ticketID)
		}
	}
	h.mu.Unlock()
}

// readPump feeds inbound message frames to the reply path and detects
// disconnects. Frames that do not carry a message are ignored.
func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Message == "" {
			continue
		}
		if c.inbound != nil {
			c.inbound(frame.Message)
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

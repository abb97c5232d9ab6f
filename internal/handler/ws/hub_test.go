//go:build unit

package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// dialClient upgrades a connection against the hub and subscribes it to the
// ticket room, mirroring what the stream handler does after its access check.
// It returns once the hub has registered the subscriber.
func dialClient(t *testing.T, hub *Hub, ticketID uuid.UUID, inbound InboundFunc) *websocket.Conn {
	t.Helper()

	before := roomSize(hub, ticketID)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		go hub.Subscribe(ticketID, conn, inbound)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return roomSize(hub, ticketID) > before
	}, 2*time.Second, 10*time.Millisecond, "subscriber never joined the room")

	return conn
}

func roomSize(h *Hub, ticketID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[ticketID])
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHub_InboundMessageReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	ticketID := uuid.New()
	senderID := uuid.New()

	// Stands in for the reply command: store the text, then rebroadcast.
	persisted := make(chan string, 1)
	inbound := func(message string) {
		persisted <- message
		hub.PublishReply(ticketID, &queries.TicketReplyView{
			ID:       uuid.New(),
			TicketID: ticketID,
			SenderID: senderID,
			Message:  message,
		})
	}

	sender := dialClient(t, hub, ticketID, inbound)
	viewer := dialClient(t, hub, ticketID, nil)

	require.NoError(t, sender.WriteJSON(map[string]string{"message": "brakes feel soft"}))

	select {
	case msg := <-persisted:
		require.Equal(t, "brakes feel soft", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("inbound frame was never handed to the reply path")
	}

	for _, conn := range []*websocket.Conn{viewer, sender} {
		event := readEvent(t, conn)
		require.Equal(t, "reply", event.Type)
		require.Equal(t, ticketID, event.TicketID)
		require.NotNil(t, event.Reply)
		require.Equal(t, senderID, event.Reply.SenderID)
		require.Equal(t, "brakes feel soft", event.Reply.Message)
	}
}

func TestHub_IgnoresFramesWithoutMessage(t *testing.T) {
	hub := NewHub()
	ticketID := uuid.New()

	inbound := make(chan string, 4)
	sender := dialClient(t, hub, ticketID, func(message string) { inbound <- message })

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, sender.WriteJSON(map[string]string{"message": ""}))
	require.NoError(t, sender.WriteJSON(map[string]string{"message": "real one"}))

	select {
	case msg := <-inbound:
		require.Equal(t, "real one", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("valid frame was not delivered")
	}
	require.Empty(t, inbound)
}

func TestHub_StatusBroadcast(t *testing.T) {
	hub := NewHub()
	ticketID := uuid.New()

	viewer := dialClient(t, hub, ticketID, nil)
	hub.PublishStatus(ticketID, "resolved")

	event := readEvent(t, viewer)
	require.Equal(t, "status", event.Type)
	require.Equal(t, "resolved", event.Status)
}

//go:build unit

package ticket_test

import (
	"testing"

	"driveshare/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := ticket.NewTicket(userID, "Refund request", "Car was unavailable at pickup")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, ticket.StatusOpen, actual.Status())
		assert.Nil(t, actual.AssigneeID())
	})

	t.Run("empty subject", func(t *testing.T) {
		_, err := ticket.NewTicket(userID, "", "body")
		require.ErrorIs(t, err, ticket.ErrEmptySubject)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := ticket.NewTicket(userID, "subject", "")
		require.ErrorIs(t, err, ticket.ErrEmptyBody)
	})
}

func TestTicket_Lifecycle(t *testing.T) {
	newTicket := func(t *testing.T) *ticket.Ticket {
		tk, err := ticket.NewTicket(uuid.New(), "Refund request", "Car was unavailable at pickup")
		require.NoError(t, err)
		return tk
	}

	t.Run("assign puts the ticket in progress", func(t *testing.T) {
		tk := newTicket(t)
		agentID := uuid.New()

		require.NoError(t, tk.Assign(agentID))
		assert.Equal(t, ticket.StatusInProgress, tk.Status())
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, agentID, *tk.AssigneeID())
	})

	t.Run("resolve and reopen", func(t *testing.T) {
		tk := newTicket(t)

		require.NoError(t, tk.Resolve())
		assert.Equal(t, ticket.StatusResolved, tk.Status())

		require.NoError(t, tk.Reopen())
		assert.Equal(t, ticket.StatusOpen, tk.Status())
	})

	t.Run("closed is final", func(t *testing.T) {
		tk := newTicket(t)

		require.NoError(t, tk.Close())
		require.ErrorIs(t, tk.Assign(uuid.New()), ticket.ErrAlreadyClosed)
		require.ErrorIs(t, tk.Resolve(), ticket.ErrAlreadyClosed)
		require.ErrorIs(t, tk.Reopen(), ticket.ErrAlreadyClosed)
		require.ErrorIs(t, tk.Close(), ticket.ErrAlreadyClosed)
	})
}

func TestNewReply(t *testing.T) {
	tk, err := ticket.NewTicket(uuid.New(), "Refund request", "Car was unavailable at pickup")
	require.NoError(t, err)
	authorID := uuid.New()

	t.Run("reply on open ticket", func(t *testing.T) {
		reply, err := ticket.NewReply(tk, authorID, "Looking into it now")
		require.NoError(t, err)

		assert.Equal(t, tk.ID(), reply.TicketID())
		assert.Equal(t, authorID, reply.AuthorID())
		assert.Equal(t, "Looking into it now", reply.Message())
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := ticket.NewReply(tk, authorID, "")
		require.ErrorIs(t, err, ticket.ErrEmptyReply)
	})

	t.Run("reply accepted after resolution", func(t *testing.T) {
		require.NoError(t, tk.Resolve())
		reply, err := ticket.NewReply(tk, authorID, "it happened again")
		require.NoError(t, err)
		assert.Equal(t, "it happened again", reply.Message())
	})

	t.Run("reply accepted on closed ticket", func(t *testing.T) {
		require.NoError(t, tk.Close())
		_, err := ticket.NewReply(tk, authorID, "reopening this, please")
		require.NoError(t, err)
	})
}

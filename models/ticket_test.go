package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTicket(t *testing.T) {
	assert.True(t, CanTransitionTicket(TicketStatusOpen, TicketStatusPending))
	assert.True(t, CanTransitionTicket(TicketStatusOpen, TicketStatusResolved))
	assert.True(t, CanTransitionTicket(TicketStatusPending, TicketStatusResolved))
	assert.True(t, CanTransitionTicket(TicketStatusResolved, TicketStatusClosed))

	// Resolved tickets can be reopened into the queue
	assert.True(t, CanTransitionTicket(TicketStatusResolved, TicketStatusPending))
}

func TestCanTransitionTicketClosedIsTerminal(t *testing.T) {
	for _, to := range []string{
		TicketStatusOpen, TicketStatusPending, TicketStatusResolved,
	} {
		assert.False(t, CanTransitionTicket(TicketStatusClosed, to), "closed -> %s", to)
	}
}

func TestCanTransitionTicketNoBackwardsToOpen(t *testing.T) {
	assert.False(t, CanTransitionTicket(TicketStatusPending, TicketStatusOpen))
	assert.False(t, CanTransitionTicket(TicketStatusResolved, TicketStatusOpen))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, CanTransition(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, CanTransition(OrderStatusShipped, OrderStatusCompleted))
	assert.True(t, CanTransition(OrderStatusCompleted, OrderStatusRefunded))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransition(OrderStatusProcessing, OrderStatusCancelled))
	assert.True(t, CanTransition(OrderStatusShipped, OrderStatusCancelled))

	// Completed orders are refunded, not cancelled
	assert.False(t, CanTransition(OrderStatusCompleted, OrderStatusCancelled))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, to := range []string{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusRefunded,
	} {
		assert.False(t, CanTransition(OrderStatusCancelled, to), "cancelled -> %s", to)
		assert.False(t, CanTransition(OrderStatusRefunded, to), "refunded -> %s", to)
	}
}

func TestCanTransitionNoSkippingStages(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusShipped))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusCompleted))
	assert.False(t, CanTransition(OrderStatusShipped, OrderStatusProcessing))
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("bogus", OrderStatusProcessing))
	assert.False(t, CanTransition(OrderStatusPending, "bogus"))
}

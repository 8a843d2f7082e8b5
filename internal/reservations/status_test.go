package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusHold, StatusConfirmed, true},
		{StatusHold, StatusCancelled, true},
		{StatusHold, StatusExpired, true},
		{StatusConfirmed, StatusHold, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusExpired, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusHold, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusExpired, StatusHold, false},
		{StatusExpired, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusNoShow, StatusHold, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusExpired.IsTerminal())
	assert.False(t, StatusHold.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusNoShow.IsTerminal())
}

func TestStatusAllowsMutation(t *testing.T) {
	assert.True(t, StatusHold.AllowsMutation())
	assert.True(t, StatusConfirmed.AllowsMutation())
	assert.False(t, StatusCancelled.AllowsMutation())
	assert.False(t, StatusExpired.AllowsMutation())
	assert.False(t, StatusCompleted.AllowsMutation())
	assert.False(t, StatusNoShow.AllowsMutation())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusConfirmed, StatusHold, StatusCancelled, StatusExpired, StatusCompleted, StatusNoShow} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("PENDING").IsValid())
	assert.False(t, Status("").IsValid())
}

package reservations

// Status is a reservation lifecycle state.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusHold      Status = "HOLD"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusHold, StatusCancelled, StatusExpired, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusExpired
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusHold:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusExpired
	case StatusConfirmed:
		return next == StatusHold || next == StatusCancelled
	}
	return false
}

// AllowsMutation reports whether dates, spot, occupancy or notes may still
// change. Only live reservations are editable.
func (s Status) AllowsMutation() bool {
	return s == StatusHold || s == StatusConfirmed
}

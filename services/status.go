package services

import "time"

// Status is a quote lifecycle state.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusSent          Status = "sent"
	StatusViewed        Status = "viewed"
	StatusAccepted      Status = "accepted"
	StatusRejected      Status = "rejected"
	StatusExpired       Status = "expired"
)

// AllStatuses lists every lifecycle state in progression order.
var AllStatuses = []Status{
	StatusDraft,
	StatusPendingReview,
	StatusSent,
	StatusViewed,
	StatusAccepted,
	StatusRejected,
	StatusExpired,
}

// transitions maps each state to the states it may move to explicitly.
// Expiry is handled separately: any non-terminal state may become expired.
var transitions = map[Status][]Status{
	StatusDraft:         {StatusPendingReview, StatusSent},
	StatusPendingReview: {StatusSent},
	StatusSent:          {StatusViewed, StatusAccepted, StatusRejected},
	StatusViewed:        {StatusAccepted, StatusRejected},
}

// IsValidStatus reports whether s is a known lifecycle state.
func IsValidStatus(s Status) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s permits no further transitions.
func IsTerminal(s Status) bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

// CanTransition reports whether a quote in state from may move to state to.
func CanTransition(from, to Status) bool {
	if to == StatusExpired {
		return !IsTerminal(from)
	}
	for _, allowed := range transitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// Transition returns an *InvalidTransitionError when the move from -> to is
// not permitted, nil otherwise.
func Transition(from, to Status) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// EffectiveStatus resolves the state a quote is really in at the given time:
// a non-terminal quote whose validity window has closed reads as expired even
// if the stored status has not caught up yet.
func EffectiveStatus(stored Status, validUntil time.Time, now time.Time) Status {
	if IsTerminal(stored) {
		return stored
	}
	if !validUntil.IsZero() && now.After(validUntil) {
		return StatusExpired
	}
	return stored
}

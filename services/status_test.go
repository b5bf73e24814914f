package services

import (
	"errors"
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusDraft:         {StatusPendingReview, StatusSent, StatusExpired},
		StatusPendingReview: {StatusSent, StatusExpired},
		StatusSent:          {StatusViewed, StatusAccepted, StatusRejected, StatusExpired},
		StatusViewed:        {StatusAccepted, StatusRejected, StatusExpired},
		StatusAccepted:      {},
		StatusRejected:      {},
		StatusExpired:       {},
	}

	// Check the full from x to matrix against the allowed table.
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, a := range allowed[from] {
				if to == a {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTransition_InvalidReturnsTypedError(t *testing.T) {
	err := Transition(StatusDraft, StatusAccepted)
	if err == nil {
		t.Fatal("expected error for draft -> accepted")
	}

	var transitionErr *InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *InvalidTransitionError, got %T", err)
	}
	if transitionErr.From != StatusDraft || transitionErr.To != StatusAccepted {
		t.Errorf("error carries %s -> %s, want draft -> accepted", transitionErr.From, transitionErr.To)
	}
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []Status{StatusAccepted, StatusRejected, StatusExpired} {
		for _, to := range AllStatuses {
			if err := Transition(terminal, to); err == nil {
				t.Errorf("Transition(%s, %s) succeeded, terminal states must be final", terminal, to)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminals := map[Status]bool{
		StatusAccepted: true,
		StatusRejected: true,
		StatusExpired:  true,
	}
	for _, s := range AllStatuses {
		if got := IsTerminal(s); got != terminals[s] {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, got, terminals[s])
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%s) = false, want true", s)
		}
	}
	for _, s := range []Status{"", "DRAFT", "pending", "archived"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 30)

	tests := []struct {
		name       string
		stored     Status
		validUntil time.Time
		want       Status
	}{
		{"draft_within_window", StatusDraft, future, StatusDraft},
		{"draft_overdue", StatusDraft, past, StatusExpired},
		{"sent_overdue", StatusSent, past, StatusExpired},
		{"viewed_overdue", StatusViewed, past, StatusExpired},
		{"accepted_unaffected_by_overdue", StatusAccepted, past, StatusAccepted},
		{"rejected_unaffected_by_overdue", StatusRejected, past, StatusRejected},
		{"already_expired", StatusExpired, past, StatusExpired},
		{"zero_valid_until_never_expires", StatusSent, time.Time{}, StatusSent},
		{"boundary_exact_validity_not_expired", StatusSent, now, StatusSent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveStatus(tt.stored, tt.validUntil, now); got != tt.want {
				t.Errorf("EffectiveStatus(%s, %v) = %s, want %s", tt.stored, tt.validUntil, got, tt.want)
			}
		})
	}
}

// README: Booking action table tests.
package booking

import "testing"

// TestCanTransition verifies the flat action table: every recognised target
// is reachable from every status.
func TestCanTransition(t *testing.T) {
	statuses := []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted}
	targets := []Status{StatusAccepted, StatusRejected, StatusCompleted}

	for _, from := range statuses {
		for _, to := range targets {
			if !CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = false, want true", from, to)
			}
		}
	}
	// Pending is never a target; it only exists at creation.
	for _, from := range statuses {
		if CanTransition(from, StatusPending) {
			t.Errorf("CanTransition(%s, %s) = true, want false", from, StatusPending)
		}
	}
}

func TestStatusForAction(t *testing.T) {
	cases := []struct {
		action string
		want   Status
		ok     bool
	}{
		{"Accepted", StatusAccepted, true},
		{"Rejected", StatusRejected, true},
		{"Completed", StatusCompleted, true},
		{"accepted", "", false}, // labels are case sensitive
		{"Cancelled", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := StatusForAction(tc.action)
		if ok != tc.ok || got != tc.want {
			t.Errorf("StatusForAction(%q) = (%q, %v), want (%q, %v)", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}

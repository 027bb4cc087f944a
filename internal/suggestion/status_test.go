package suggestion

import "testing"

func TestNextLegalCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  Status
		event Event
		want  Status
	}{
		{"submit from idle", StatusIdle, EventSubmit, StatusSending},
		{"delivered from sending", StatusSending, EventDelivered, StatusSuccess},
		{"failed from sending", StatusSending, EventFailed, StatusError},
		{"reset from success", StatusSuccess, EventReset, StatusIdle},
		{"reset from error", StatusError, EventReset, StatusIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Next(tt.from, tt.event)
			if !ok {
				t.Fatalf("Next(%v, %v) ok = false, want true", tt.from, tt.event)
			}
			if got != tt.want {
				t.Fatalf("Next(%v, %v) = %v, want %v", tt.from, tt.event, got, tt.want)
			}
		})
	}
}

func TestNextRejectsIllegalTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  Status
		event Event
	}{
		{"submit while sending", StatusSending, EventSubmit},
		{"submit while success", StatusSuccess, EventSubmit},
		{"submit while error", StatusError, EventSubmit},
		{"reset from idle", StatusIdle, EventReset},
		{"reset from sending", StatusSending, EventReset},
		{"delivered from idle", StatusIdle, EventDelivered},
		{"failed from success", StatusSuccess, EventFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Next(tt.from, tt.event)
			if ok {
				t.Fatalf("Next(%v, %v) ok = true, want false", tt.from, tt.event)
			}
			if got != tt.from {
				t.Fatalf("Next(%v, %v) = %v, want unchanged %v", tt.from, tt.event, got, tt.from)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusSending, "sending"},
		{StatusSuccess, "success"},
		{StatusError, "error"},
		{Status(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

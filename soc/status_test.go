package soc

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{name: "waiting", status: StatusWaitingForCommand, want: "waiting-for-command"},
		{name: "calculating", status: StatusCalculating, want: "calculating"},
		{name: "done", status: StatusDone, want: "done"},
		{name: "invalid command", status: StatusInvalidCommand, want: "invalid-command"},
		{name: "out of range", status: Status(7), want: "unknown (7)"},
		{name: "application defined", status: Status(0xDEAD), want: "unknown (57005)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status(%d).String() = %q, want %q", uint32(tt.status), got, tt.want)
			}
		})
	}
}

func TestStatusKnown(t *testing.T) {
	for s := Status(0); s <= StatusInvalidCommand; s++ {
		if !s.Known() {
			t.Errorf("Status(%d).Known() = false, want true", uint32(s))
		}
	}
	if Status(4).Known() {
		t.Error("Status(4).Known() = true, want false")
	}
	if Status(0xFFFFFFFF).Known() {
		t.Error("Status(0xFFFFFFFF).Known() = true, want false")
	}
}

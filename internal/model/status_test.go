package model

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusNeutral, "NEUTRAL"},
		{StatusDissolving, "DISSOLVING"},
		{StatusAttacking, "ATTACKING"},
		{StatusStunned, "STUNNED"},
		{Status(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

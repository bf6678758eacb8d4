package domain

import "testing"

func TestSeverityLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity int
		want     string
	}{
		{1, "Low"},
		{3, "Low"},
		{4, "Medium"},
		{6, "Medium"},
		{7, "High"},
		{8, "High"},
		{9, "Critical"},
		{10, "Critical"},
	}

	for _, tt := range tests {
		if got := SeverityLabel(tt.severity); got != tt.want {
			t.Errorf("SeverityLabel(%d) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestHazardKindLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind HazardKind
		want string
	}{
		{KindOilSpill, "Oil Spill"},
		{KindDebris, "Debris"},
		{KindPollution, "Pollution"},
		{KindOther, "Other"},
		{HazardKind("unknown"), "Other"},
	}

	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

package mover

import (
	"testing"
	"time"
)

func TestFormatViewCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{112000, "112K"},
		{999999, "999K"},
		{1000000, "1M"},
		{2000000, "2M"},
		{2500000, "2M"}, // integer division, no rounding
		{1500, "1K"},
	}
	for _, tt := range tests {
		if got := FormatViewCount(tt.n); got != tt.want {
			t.Errorf("FormatViewCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestViewRangeLabel(t *testing.T) {
	vr := ViewRange{Min: 112000, Max: 2000000}
	if got := vr.Label(); got != "112K-2M" {
		t.Errorf("Label = %q, want 112K-2M", got)
	}
}

func TestFolderName(t *testing.T) {
	now := time.Date(2025, 12, 17, 10, 30, 0, 0, time.UTC)
	vr := ViewRange{Min: 112000, Max: 2000000}

	if got := FolderName(now, "%y%m%d", vr); got != "251217_112K-2M" {
		t.Errorf("FolderName = %q, want 251217_112K-2M", got)
	}
	if got := FolderName(now, "%Y-%m-%d", vr); got != "2025-12-17_112K-2M" {
		t.Errorf("FolderName = %q, want 2025-12-17_112K-2M", got)
	}
}

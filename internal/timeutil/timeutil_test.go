package timeutil

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3600, "60:00"},
		{-3, "0:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2025-03-01T18:30:00Z" {
		t.Fatalf("unexpected timestamp format: %s", got)
	}
}

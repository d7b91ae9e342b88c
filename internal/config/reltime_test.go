package config

import (
	"testing"
	"time"
)

func TestResolveRelative(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		expr string
		want time.Time
	}{
		{"+5 minutes", now.Add(5 * time.Minute)},
		{"+1 minute", now.Add(time.Minute)},
		{"+30 seconds", now.Add(30 * time.Second)},
		{"+2 hours", now.Add(2 * time.Hour)},
		{"+1 day", time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)},
		{"+2 weeks", time.Date(2024, 1, 29, 12, 0, 0, 0, time.UTC)},
		{"+1 month", time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)},
		{"+1 year", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)},
		{"1 day", time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)},
		{"10 min", now.Add(10 * time.Minute)},
		{"  +1 hour  ", now.Add(time.Hour)},
	}

	for _, tt := range tests {
		got, err := ResolveRelative(tt.expr, now)
		if err != nil {
			t.Errorf("ResolveRelative(%q): %v", tt.expr, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveRelative(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestResolveRelative_CalendarArithmetic(t *testing.T) {
	// A month is a calendar month, not 30 days.
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	got, err := ResolveRelative("+1 month", now)
	if err != nil {
		t.Fatalf("ResolveRelative: %v", err)
	}
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC) // Jan 31 + 1 month normalizes past Feb
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveRelative_Invalid(t *testing.T) {
	now := time.Now()

	for _, expr := range []string{
		"",
		"+1",
		"day",
		"+one day",
		"-1 day",
		"+1 fortnight",
		"+1 day extra",
	} {
		if _, err := ResolveRelative(expr, now); err == nil {
			t.Errorf("ResolveRelative(%q) should fail", expr)
		}
	}
}

package services

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC), "2026-03-09"},
		{"sunday maps to previous monday", time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), "2026-03-09"},
		{"wednesday maps to its monday", time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC), "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekStart(tt.in).Format(time.DateOnly)
			if got != tt.want {
				t.Errorf("weekStart(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateRangeBounds(t *testing.T) {
	from := time.Date(2026, 2, 28, 18, 30, 0, 0, time.UTC)

	start, end := dateRangeBounds(from, from)
	if !start.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected end to roll into March, got %v", end)
	}
}

func TestCurrentMonthRange(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	start, end := currentMonthRange(now)

	if !start.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected end to roll into next year, got %v", end)
	}
}

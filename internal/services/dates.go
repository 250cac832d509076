package services

import (
	"math"
	"time"
)

// currentMonthRange returns the half-open [start, end) interval of the
// calendar month containing now. Always evaluated per request; a process
// crossing a month boundary filters by the new month immediately.
func currentMonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// dateRangeBounds converts an inclusive from/to date pair into a half-open
// interval covering whole days. from == to covers exactly that day.
func dateRangeBounds(from, to time.Time) (time.Time, time.Time) {
	start := truncateDay(from)
	end := truncateDay(to).AddDate(0, 0, 1)
	return start, end
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart truncates a date to the Monday its week starts on.
func weekStart(t time.Time) time.Time {
	d := truncateDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// monthStart truncates a date to the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package service

import (
	"fmt"
	"strings"
	"time"
)

const dayFormat = "2006-01-02"

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// parseDBTime reads a timestamp column that may hold either RFC3339 (values
// written by this app) or SQLite's CURRENT_TIMESTAMP format.
func parseDBTime(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Local(), true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.UTC); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

func parseDateStart(date string) (string, error) {
	t, err := time.ParseInLocation(dayFormat, strings.TrimSpace(date), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t.Format(time.RFC3339), nil
}

func parseDateEndExclusive(date string) (string, error) {
	t, err := time.ParseInLocation(dayFormat, strings.TrimSpace(date), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t.AddDate(0, 0, 1).Format(time.RFC3339), nil
}

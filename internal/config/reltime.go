package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResolveRelative resolves a relative-time expression such as "+5 minutes",
// "+1 day" or "+2 months" against the given reference time. The leading "+"
// is optional; units may be singular or plural. Calendar units (day, week,
// month, year) follow calendar arithmetic rather than fixed durations.
func ResolveRelative(expr string, now time.Time) (time.Time, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(expr), "+"))
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("invalid relative time expression %q", expr)
	}

	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid amount in relative time expression %q", expr)
	}
	if amount < 0 {
		return time.Time{}, fmt.Errorf("negative amount in relative time expression %q", expr)
	}

	unit := strings.ToLower(strings.TrimSuffix(fields[1], "s"))
	switch unit {
	case "second", "sec":
		return now.Add(time.Duration(amount) * time.Second), nil
	case "minute", "min":
		return now.Add(time.Duration(amount) * time.Minute), nil
	case "hour":
		return now.Add(time.Duration(amount) * time.Hour), nil
	case "day":
		return now.AddDate(0, 0, amount), nil
	case "week":
		return now.AddDate(0, 0, 7*amount), nil
	case "month":
		return now.AddDate(0, amount, 0), nil
	case "year":
		return now.AddDate(amount, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown unit in relative time expression %q", expr)
	}
}

package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for all inbound dates.
const DateLayout = "02-01-2006"

// ParseDayStart parses a DD-MM-YYYY date string and normalizes it to the
// start of that calendar day in UTC. All attendance records are stored at
// day-start so the (rollNumber, date) uniqueness holds per day.
func ParseDayStart(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD-MM-YYYY: %w", value, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseDayEnd parses a DD-MM-YYYY date string and normalizes it to the end
// of that calendar day in UTC, used as the inclusive upper bound of range
// queries.
func ParseDayEnd(value string) (time.Time, error) {
	start, err := ParseDayStart(value)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(24*time.Hour - time.Millisecond), nil
}

// DayStart truncates an absolute time to the start of its UTC day.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

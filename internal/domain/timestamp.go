package domain

import (
	"fmt"
	"time"
)

// Layout is the canonical wire rendering of a timestamp:
// year-month-day hour:minute:second.microsecond, fixed width.
//
// The fractional part is always six digits so that lexicographic order of
// rendered strings matches chronological order within a single zone.
const Layout = "2006-01-02 15:04:05.000000"

// Timestamp is a wall-clock instant already shifted into the zone it will be
// rendered in. It is created per request and discarded after rendering.
type Timestamp struct {
	t time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// Time returns the underlying instant.
func (ts Timestamp) Time() time.Time { return ts.t }

// String renders the timestamp in the canonical layout.
func (ts Timestamp) String() string {
	return ts.t.Format(Layout)
}

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.t.Before(other.t)
}

// ParseTimestamp parses the canonical rendering in the given location.
func ParseTimestamp(s string, loc *time.Location) (Timestamp, error) {
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// Package timezone is the single place where an admin's display timezone and
// the canonical UTC instant meet. All contest arithmetic elsewhere in the
// core runs on UTC instants; this package converts to and from the wall-clock
// representations admins see and edit.
package timezone

import (
	"fmt"
	"time"
)

// ID is an IANA timezone identifier such as "America/New_York". Only ids in
// the supported set are accepted; anything else is rejected, never coerced.
type ID string

// UTC is the canonical storage zone.
const UTC ID = "UTC"

// Zone describes one supported timezone for presentation.
type Zone struct {
	ID    ID
	Label string
}

// supported is the finite set of zones an admin may choose as a display
// preference. Labels are for presentation only; offsets are never stored
// here because they change across DST transitions.
var supported = []Zone{
	{UTC, "Coordinated Universal Time"},
	{"America/New_York", "Eastern Time (US)"},
	{"America/Chicago", "Central Time (US)"},
	{"America/Denver", "Mountain Time (US)"},
	{"America/Phoenix", "Arizona Time (US)"},
	{"America/Los_Angeles", "Pacific Time (US)"},
	{"America/Anchorage", "Alaska Time (US)"},
	{"Pacific/Honolulu", "Hawaii Time (US)"},
	{"America/Toronto", "Eastern Time (Canada)"},
	{"America/Mexico_City", "Central Time (Mexico)"},
	{"America/Sao_Paulo", "Brasilia Time"},
	{"Europe/London", "UK Time"},
	{"Europe/Paris", "Central European Time"},
	{"Europe/Berlin", "Central European Time (Germany)"},
	{"Europe/Madrid", "Central European Time (Spain)"},
	{"Asia/Tokyo", "Japan Time"},
	{"Asia/Shanghai", "China Time"},
	{"Asia/Kolkata", "India Time"},
	{"Australia/Sydney", "Eastern Australia Time"},
}

// ZoneError reports a timezone id outside the supported set.
type ZoneError struct {
	Zone ID
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("unsupported timezone %q", string(e.Zone))
}

// Supported returns the supported zones in display order.
func Supported() []Zone {
	out := make([]Zone, len(supported))
	copy(out, supported)
	return out
}

// Lookup validates id against the supported set and resolves it to a
// location. Valid IANA ids outside the set are still rejected.
func Lookup(id ID) (*time.Location, error) {
	for _, z := range supported {
		if z.ID == id {
			loc, err := time.LoadLocation(string(id))
			if err != nil {
				return nil, fmt.Errorf("failed to load timezone %q: %w", string(id), err)
			}
			return loc, nil
		}
	}
	return nil, &ZoneError{Zone: id}
}

// CurrentOffset returns the zone's UTC offset at now, formatted like
// "-04:00". Presentation only: the value is recomputed per call and must
// never feed back into date arithmetic.
func CurrentOffset(id ID, now time.Time) (string, error) {
	loc, err := Lookup(id)
	if err != nil {
		return "", err
	}
	_, secs := now.In(loc).Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs%3600/60), nil
}

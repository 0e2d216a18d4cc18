package timezone

import (
	"fmt"
	"time"
)

// WallClockLayout is the editable-field representation of a local time. It
// carries no zone and is meaningful only paired with an ID.
const WallClockLayout = "2006-01-02T15:04"

// Style selects a human display format.
type Style int

const (
	// StyleShort renders like "Aug 20, 7:15 PM".
	StyleShort Style = iota
	// StyleLong renders like "August 20, 2025 at 7:15 PM EDT".
	StyleLong
)

var styleLayouts = map[Style]string{
	StyleShort: "Jan 2, 3:04 PM",
	StyleLong:  "January 2, 2006 at 3:04 PM MST",
}

// LocalStringError reports a malformed or zone-ambiguous timestamp.
type LocalStringError struct {
	Value  string
	Reason string
}

func (e *LocalStringError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Value, e.Reason)
}

// LocalToUTC interprets local as a wall-clock reading in zone and returns
// the equivalent UTC instant.
//
// DST transitions are resolved deterministically:
//   - a reading repeated by a fall-back transition resolves to its
//     standard-time occurrence;
//   - a reading skipped by a spring-forward transition shifts forward by
//     the width of the gap (02:30 becomes 03:30 on a one-hour gap).
func LocalToUTC(local string, zone ID) (time.Time, error) {
	loc, err := Lookup(zone)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := time.Parse(WallClockLayout, local)
	if err != nil {
		return time.Time{}, &LocalStringError{Value: local, Reason: "want wall-clock format YYYY-MM-DDTHH:mm"}
	}
	t := resolveWallClock(parsed.Year(), parsed.Month(), parsed.Day(), parsed.Hour(), parsed.Minute(), loc)
	return t.UTC(), nil
}

// resolveWallClock maps a wall-clock reading onto an instant in loc,
// applying the DST rules documented on LocalToUTC. All supported zones
// shift by whole hours, so the repeated-hour check probes one hour ahead.
func resolveWallClock(year int, month time.Month, day, hour, min int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, hour, min, 0, 0, loc)
	if t.IsDST() {
		alt := t.Add(time.Hour)
		if !alt.IsDST() && sameWallClock(alt, year, month, day, hour, min) {
			return alt
		}
	}
	return t
}

func sameWallClock(t time.Time, year int, month time.Month, day, hour, min int) bool {
	return t.Year() == year && t.Month() == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == min
}

// UTCToLocal renders an instant as the wall-clock string an admin in zone
// would edit. Left-inverse of LocalToUTC for readings outside DST gaps.
func UTCToLocal(t time.Time, zone ID) (string, error) {
	loc, err := Lookup(zone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(WallClockLayout), nil
}

// FormatForDisplay renders an instant for human display in zone. The result
// is never parsed back into computation.
func FormatForDisplay(t time.Time, zone ID, style Style) (string, error) {
	loc, err := Lookup(zone)
	if err != nil {
		return "", err
	}
	layout, ok := styleLayouts[style]
	if !ok {
		layout = styleLayouts[StyleShort]
	}
	return t.In(loc).Format(layout), nil
}

// ParseInstant parses a boundary timestamp. Only RFC 3339 values with an
// explicit zone designator are accepted, so a naive timestamp can never
// reach the converters. The result is normalized to UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &LocalStringError{Value: s, Reason: "want RFC 3339 with explicit zone, e.g. 2025-08-20T23:15:00Z"}
	}
	return t.UTC(), nil
}

// FormatInstant renders an instant in the canonical wire shape.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

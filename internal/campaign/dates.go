package campaign

import (
	"fmt"
	"time"

	"github.com/contestlet/contestlet/internal/clock"
	"github.com/contestlet/contestlet/internal/contest"
)

// DefaultDurationDays is applied when an import supplies no duration.
const DefaultDurationDays = 7

// DefaultStartHour is the local wall-clock hour used when an import carries
// no start at all: the campaign begins tomorrow at 09:00 in the admin zone.
const DefaultStartHour = 9

// DateTriple is a partially specified {start, end, duration} from an
// import. After reconciliation all three fields are present and satisfy
// end - start == duration days.
type DateTriple struct {
	Start        *time.Time
	End          *time.Time
	DurationDays *int
}

// TripleError reports a payload whose three date fields disagree. The
// conflict is surfaced with all three values; no field silently wins.
type TripleError struct {
	Start        time.Time
	End          time.Time
	DurationDays int
	ComputedDays int
}

func (e *TripleError) Error() string {
	return fmt.Sprintf("inconsistent campaign dates: %s to %s spans %d days, not the stated %d",
		e.Start.UTC().Format(time.RFC3339), e.End.UTC().Format(time.RFC3339),
		e.ComputedDays, e.DurationDays)
}

// Reconciler completes partial date triples. The clock supplies "now" for
// the no-dates default; the zone passed to Reconcile anchors that default
// to the admin's wall clock.
type Reconciler struct {
	clock       clock.Clock
	defaultDays int
}

// NewReconciler creates a reconciler with the standard default duration.
func NewReconciler(clk clock.Clock) *Reconciler {
	return NewReconcilerWithDefault(clk, DefaultDurationDays)
}

// NewReconcilerWithDefault overrides the default campaign length.
func NewReconcilerWithDefault(clk clock.Clock, days int) *Reconciler {
	return &Reconciler{clock: clk, defaultDays: days}
}

// Reconcile fills in the missing fields of in. Exactly one rule applies per
// call, in priority order:
//
//  1. all three present: validated, returned unchanged; a mismatch between
//     the stated duration and the computed span is a TripleError
//  2. start + duration: end derived
//  3. end + duration: start derived
//  4. start + end: duration derived (fractional days round up)
//  5. start only: default duration, end derived
//  6. no start: start defaults to tomorrow at 09:00 on the wall clock of
//     loc, duration defaults if absent, end derived
//
// When both bounds are given they must be strictly ordered; a reversed or
// empty window is a contest.WindowError. The result is always complete or
// an error, never partially filled.
func (r *Reconciler) Reconcile(in DateTriple, loc *time.Location) (DateTriple, error) {
	switch {
	case in.Start != nil && in.End != nil && in.DurationDays != nil:
		if err := (contest.Window{Start: *in.Start, End: *in.End}).Validate(); err != nil {
			return DateTriple{}, err
		}
		computed := daysBetween(*in.Start, *in.End)
		if computed != *in.DurationDays {
			return DateTriple{}, &TripleError{
				Start:        *in.Start,
				End:          *in.End,
				DurationDays: *in.DurationDays,
				ComputedDays: computed,
			}
		}
		return in, nil

	case in.Start != nil && in.DurationDays != nil:
		return complete(*in.Start, *in.DurationDays), nil

	case in.End != nil && in.DurationDays != nil:
		start := in.End.AddDate(0, 0, -*in.DurationDays)
		return DateTriple{Start: &start, End: in.End, DurationDays: in.DurationDays}, nil

	case in.Start != nil && in.End != nil:
		if err := (contest.Window{Start: *in.Start, End: *in.End}).Validate(); err != nil {
			return DateTriple{}, err
		}
		days := daysBetween(*in.Start, *in.End)
		return DateTriple{Start: in.Start, End: in.End, DurationDays: &days}, nil

	case in.Start != nil:
		return complete(*in.Start, r.defaultDays), nil

	case in.End != nil:
		// End alone: assume a default-length campaign ending there.
		days := r.defaultDays
		start := in.End.AddDate(0, 0, -days)
		return DateTriple{Start: &start, End: in.End, DurationDays: &days}, nil

	default:
		// Nothing, or a bare duration: start tomorrow morning local.
		days := r.defaultDays
		if in.DurationDays != nil {
			days = *in.DurationDays
		}
		return complete(r.defaultStart(loc), days), nil
	}
}

func complete(start time.Time, days int) DateTriple {
	end := start.AddDate(0, 0, days)
	return DateTriple{Start: &start, End: &end, DurationDays: &days}
}

// daysBetween returns the calendar-day span from start to end, rounding
// fractional days up.
func daysBetween(start, end time.Time) int {
	const day = 24 * time.Hour
	d := end.Sub(start)
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// defaultStart is tomorrow at 09:00 on the wall clock of loc, as a UTC
// instant. AddDate runs in loc so the hour survives a DST transition.
func (r *Reconciler) defaultStart(loc *time.Location) time.Time {
	now := r.clock.Now().In(loc)
	t := time.Date(now.Year(), now.Month(), now.Day(), DefaultStartHour, 0, 0, 0, loc)
	return t.AddDate(0, 0, 1).UTC()
}

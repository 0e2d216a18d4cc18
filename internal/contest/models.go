// Package contest holds the contest model and the lifecycle status engine.
// Status is derived, never stored: every consumer asks the engine instead of
// comparing dates itself.
package contest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status defines the lifecycle status of a contest.
type Status string

const (
	StatusUpcoming Status = "UPCOMING"
	StatusActive   Status = "ACTIVE"
	StatusEnded    Status = "ENDED"
	StatusComplete Status = "COMPLETE"
)

// Window is the [start, end) instant interval during which a contest runs.
// Both bounds are UTC instants.
type Window struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// WindowError reports a window whose start does not strictly precede its end.
type WindowError struct {
	Start time.Time
	End   time.Time
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("contest start %s must be before end %s",
		e.Start.UTC().Format(time.RFC3339), e.End.UTC().Format(time.RFC3339))
}

// Validate enforces strict ordering of the window bounds. Required before a
// final contest save; the status engine itself tolerates degenerate windows.
func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return &WindowError{Start: w.Start, End: w.End}
	}
	return nil
}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contest represents a promotional contest instance. A value type: callers
// own their copies and pass them into the pure functions here.
type Contest struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	PrizeDescription string     `json:"prize_description"`
	Window           Window     `json:"window"`
	WinnerEntryID    *uuid.UUID `json:"winner_entry_id,omitempty"`
	WinnerSelectedAt *time.Time `json:"winner_selected_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasWinner reports whether a winner has been recorded.
func (c *Contest) HasWinner() bool {
	return c.WinnerEntryID != nil
}

// StatusAt returns the contest's lifecycle status at now.
func (c *Contest) StatusAt(now time.Time) Status {
	return ComputeStatus(now, c.Window, c.HasWinner())
}

// CanSelectWinner reports whether winner selection is allowed at now: the
// contest has ended and no winner has been recorded yet.
func (c *Contest) CanSelectWinner(now time.Time) bool {
	return c.StatusAt(now) == StatusEnded
}

// RecordWinner records the winning entry, moving the contest from Ended to
// Complete. Selection outside the Ended state is rejected.
func (c *Contest) RecordWinner(entryID uuid.UUID, now time.Time) error {
	if !c.CanSelectWinner(now) {
		return fmt.Errorf("cannot select winner while contest is %s", c.StatusAt(now))
	}
	selectedAt := now
	c.WinnerEntryID = &entryID
	c.WinnerSelectedAt = &selectedAt
	c.UpdatedAt = now
	return nil
}

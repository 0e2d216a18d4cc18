package contest

import "time"

// ComputeStatus maps an instant onto the contest lifecycle. Pure and total:
// every (now, window, hasWinner) combination yields a status.
//
// Boundary instants belong to the later state: at exactly Window.Start the
// contest is Active, at exactly Window.End it is Ended (or Complete once a
// winner is recorded). A zero-length window therefore has no Active period
// and goes straight from Upcoming to Ended.
func ComputeStatus(now time.Time, w Window, hasWinner bool) Status {
	switch {
	case !now.Before(w.End):
		if hasWinner {
			return StatusComplete
		}
		return StatusEnded
	case !now.Before(w.Start):
		return StatusActive
	default:
		return StatusUpcoming
	}
}

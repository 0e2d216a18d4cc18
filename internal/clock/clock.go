// Package clock provides the time source for every temporal computation in
// the core. Packages depend on this interface instead of calling time.Now()
// directly, so tests can substitute a fake clock and advance it manually.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the narrow time surface the core needs. clockwork.Clock
// satisfies it in production, clockwork.FakeClock in tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// NewReal returns the wall-clock implementation. Use only at application
// entry points; everything below cmd/ takes the clock as a dependency.
func NewReal() Clock {
	return clockwork.NewRealClock()
}

// Package countdown implements the live timer behind contest countdown
// displays. A Countdown polls an injected clock once per second, re-derives
// the remaining-time breakdown, and raises a single edge-triggered callback
// when the target instant is crossed.
package countdown

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/contestlet/contestlet/internal/clock"
)

// TickInterval is how often a running countdown re-derives its breakdown.
const TickInterval = time.Second

// Breakdown is the display decomposition of the time remaining until a
// target instant. Derived on every tick, never persisted.
type Breakdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// ComputeBreakdown decomposes target minus now into whole days, hours,
// minutes and seconds. Each stage divides the millisecond remainder of the
// previous one; nothing is rounded. A non-positive difference yields the
// all-zero expired breakdown.
func ComputeBreakdown(now, target time.Time) Breakdown {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return Breakdown{Expired: true}
	}
	return Breakdown{
		Days:    int(diff / 86400000),
		Hours:   int(diff % 86400000 / 3600000),
		Minutes: int(diff % 3600000 / 60000),
		Seconds: int(diff % 60000 / 1000),
	}
}

// Countdown is the only stateful component in the core. It owns its polling
// loop exclusively: Start launches it, Stop tears it down, and the expiry
// callback fires at most once per (countdown, target) pair.
//
// A countdown constructed against a target already in the past starts
// expired without notifying; only a live Running to Expired transition
// fires the callback. The callback runs after the expired breakdown has
// been committed, so reading Snapshot inside it always shows Expired.
// It must not call Stop on its own countdown.
type Countdown struct {
	clock    clock.Clock
	onExpire func()

	mu        sync.Mutex
	target    time.Time
	breakdown Breakdown
	notified  bool
	running   bool
	ticks     int
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// New creates a countdown toward target. onExpire may be nil. The countdown
// does not tick until Start is called.
func New(clk clock.Clock, target time.Time, onExpire func()) *Countdown {
	c := &Countdown{
		clock:    clk,
		onExpire: onExpire,
		target:   target,
	}
	c.breakdown = ComputeBreakdown(clk.Now(), target)
	// A dead-on-arrival target must not notify retroactively.
	c.notified = c.breakdown.Expired
	return c
}

// Start launches the 1 Hz polling loop. No-op on a running countdown.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stopCh = make(chan struct{})
	c.wg.Add(1)
	go c.run(c.stopCh)
}

func (c *Countdown) run(stopCh chan struct{}) {
	defer c.wg.Done()
	ticker := c.clock.NewTicker(TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			if fire := c.tick(); fire != nil {
				// State reflecting expiry is committed before the callback
				// runs, and the callback runs outside the lock so its side
				// effects cannot corrupt the tick computation.
				fire()
			}
		case <-stopCh:
			return
		}
	}
}

// tick recomputes the breakdown and returns the callback to invoke when
// this tick is the first to observe expiry for the current target.
func (c *Countdown) tick() func() {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	c.breakdown = ComputeBreakdown(now, c.target)
	if c.breakdown.Expired && !c.notified {
		c.notified = true
		log.Debug().Time("target", c.target).Msg("countdown expired")
		return c.onExpire
	}
	return nil
}

// Snapshot returns the most recently committed breakdown.
func (c *Countdown) Snapshot() Breakdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.breakdown
}

// Target returns the current target instant.
func (c *Countdown) Target() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// SetTarget points the countdown at a new instant and re-arms expiry
// notification for it, so a countdown fires once per distinct target rather
// than once per lifetime. Retargeting follows the construction rule: a
// target already in the past flips the state to expired without notifying.
func (c *Countdown) SetTarget(target time.Time) {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if target.Equal(c.target) {
		return
	}
	c.target = target
	c.breakdown = ComputeBreakdown(now, target)
	c.notified = c.breakdown.Expired
}

// Stop halts polling. Idempotent; once it returns no further tick runs and
// no expiry callback fires.
func (c *Countdown) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopCh)
	c.mu.Unlock()
	c.wg.Wait()
}

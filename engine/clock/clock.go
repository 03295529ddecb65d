// Package clock maintains the wrapping 0–23 hour-of-day counter, advanced
// either by explicit calls (rest, travel) or by an optional background tick.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// HoursPerDay is the length of the hour ring.
const HoursPerDay = 24

// Daytime is [6:00, 18:00).
const (
	dayStart = 6
	dayEnd   = 18
)

// Clock is the hour-of-day counter. The mutex exists only because the
// optional interval tick runs on its own goroutine; all gameplay mutation
// is otherwise single-threaded.
type Clock struct {
	mu   sync.Mutex
	hour int

	ticker *time.Ticker
	done   chan struct{}
}

// New creates a clock starting at the given hour (wrapped into [0, 24)).
func New(startHour int) *Clock {
	return &Clock{hour: wrap(startHour)}
}

// Hour returns the current hour of day in [0, 24).
func (c *Clock) Hour() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hour
}

// SetHour overwrites the counter, wrapping into [0, 24). Used when adopting
// the clock state from a loaded save.
func (c *Clock) SetHour(hour int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hour = wrap(hour)
}

// Advance moves the clock forward by a non-negative number of hours and
// returns the new hour. Values of 24 or more (multi-day sleep) wrap
// correctly; negative values are ignored.
func (c *Clock) Advance(hours int) int {
	if hours < 0 {
		return c.Hour()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hour = wrap(c.hour + hours)
	return c.hour
}

// IsDaytime reports whether the current hour falls in [6, 18).
func (c *Clock) IsDaytime() bool {
	h := c.Hour()
	return h >= dayStart && h < dayEnd
}

// Formatted returns the current time as a zero-padded "HH:00" string.
func (c *Clock) Formatted() string {
	return fmt.Sprintf("%02d:00", c.Hour())
}

// Start begins advancing the clock by one hour every interval, invoking
// onTick (if non-nil) with the new hour after each advance. A running tick
// is restarted. Stop halts it.
func (c *Clock) Start(interval time.Duration, onTick func(hour int)) {
	c.Stop()

	c.mu.Lock()
	c.ticker = time.NewTicker(interval)
	c.done = make(chan struct{})
	ticker, done := c.ticker, c.done
	c.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				h := c.Advance(1)
				if onTick != nil {
					onTick(h)
				}
			case <-done:
				return
			}
		}
	}()
}

// Stop halts the background tick. Safe to call when not started; idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

func wrap(hour int) int {
	h := hour % HoursPerDay
	if h < 0 {
		h += HoursPerDay
	}
	return h
}

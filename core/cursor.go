package core

import (
	"time"

	"github.com/fweigt/tslabel/schema"
)

// WindowCursor owns the current visible time window over a series and
// advances it. It is fully deterministic: the window depends only on the
// series bounds, the fixed duration and the last accepted start.
type WindowCursor struct {
	start    time.Time
	duration time.Duration
	minTime  time.Time
	maxTime  time.Time
}

// NewWindowCursor creates a cursor positioned at the start of the series.
func NewWindowCursor(series *schema.Series, duration time.Duration) *WindowCursor {
	return &WindowCursor{
		start:    series.MinTime(),
		duration: duration,
		minTime:  series.MinTime(),
		maxTime:  series.MaxTime(),
	}
}

// shortSpan reports whether the series span is shorter than the fixed
// duration, in which case the window degrades to covering the whole span.
func (c *WindowCursor) shortSpan() bool {
	return c.maxTime.Sub(c.minTime) < c.duration
}

// Current returns the window as it stands, without moving it.
func (c *WindowCursor) Current() schema.Window {
	if c.shortSpan() {
		return schema.Window{Start: c.minTime, End: c.maxTime}
	}
	end := c.start.Add(c.duration)
	if end.After(c.maxTime) {
		end = c.maxTime
	}
	return schema.Window{Start: c.start, End: end}
}

// Advance moves the window start to the candidate instant, clamping it so the
// window always fits inside the series span. Out-of-range candidates are
// clamped rather than rejected; the host is expected to constrain input, but
// the cursor re-clamps so the window invariant can never be violated.
func (c *WindowCursor) Advance(newStart time.Time) schema.Window {
	if c.shortSpan() {
		c.start = c.minTime
		return schema.Window{Start: c.minTime, End: c.maxTime}
	}

	latest := c.maxTime.Add(-c.duration)
	switch {
	case newStart.Before(c.minTime):
		newStart = c.minTime
	case newStart.After(latest):
		newStart = latest
	}
	c.start = newStart
	return schema.Window{Start: c.start, End: c.start.Add(c.duration)}
}

package game

import (
	"time"
)

// pausedFPSLimit caps the loop while the game is paused.
const pausedFPSLimit = 30

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second. A limit of
// zero or less disables limiting.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Limit returns the frame cap in effect for the given pause state.
func (f *FPSLimiter) Limit(paused bool) int {
	if paused && (f.limit <= 0 || f.limit > pausedFPSLimit) {
		return pausedFPSLimit
	}
	return f.limit
}

// FrameTime returns the target frame duration, or zero when unlimited.
func (f *FPSLimiter) FrameTime(paused bool) time.Duration {
	limit := f.Limit(paused)
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame should be rendered based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.FrameTime(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	f.next = f.schedule(time.Now(), target)

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last stretch
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// schedule returns the deadline of the frame after the current one.
func (f *FPSLimiter) schedule(now time.Time, target time.Duration) time.Time {
	if f.next.IsZero() {
		return now.Add(target)
	}
	return f.next.Add(target)
}

// FPSCounter counts presented frames and publishes the rate once per window.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
	fps    float64
}

// NewFPSCounter creates a counter that averages over one second.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{window: time.Second, start: now}
}

// Frame records one frame at now and reports whether the rate was updated.
func (c *FPSCounter) Frame(now time.Time) bool {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the last published rate.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

package profiling

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU spans for the simulation and render tick.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(frameTotals)
}

// SumWithPrefix adds up every span whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// Entry is one named span total.
type Entry struct {
	Name     string
	Duration time.Duration
}

// Top returns the n largest spans of the current frame, longest first.
// Ties are broken by name.
func Top(n int) []Entry {
	ss := Snapshot()
	list := make([]Entry, 0, len(ss))
	for _, k := range slices.Sorted(maps.Keys(ss)) {
		list = append(list, Entry{Name: k, Duration: ss[k]})
	}
	slices.SortStableFunc(list, func(a, b Entry) int {
		return cmp.Compare(b.Duration, a.Duration)
	})
	return list[:min(n, len(list))]
}

// TopN formats the top n spans of the current frame.
// Example: "world.Draw:4.2ms, physics.Resolve:0.1ms"
func TopN(n int) string {
	top := Top(n)
	parts := make([]string, 0, len(top))
	for _, e := range top {
		parts = append(parts, e.Name+":"+formatMs(e.Duration))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
}

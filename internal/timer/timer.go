// Package timer provides a coarse clock shared by the whole process, together with the
// pre-rendered value of the Date response header.
package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which the clock is updated. 500ms are precise enough for
// setting I/O deadlines and for the Date header, which has a resolution of a second anyway.
const Resolution = 500 * time.Millisecond

// DateLayout is the IMF-fixdate format of the Date header.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

var (
	millis = new(atomic.Int64)
	date   = new(atomic.Pointer[string])
)

// Now returns the cached current time.
func Now() time.Time {
	ms := millis.Load()
	return time.Unix(ms/1000, (ms%1000)*1e6)
}

// Date returns the current time rendered as the value of the Date header.
func Date() string {
	return *date.Load()
}

// FormatDate renders the time in the Date header format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func update(now time.Time) {
	prev := millis.Swap(now.UnixMilli())
	if prev/1000 != now.Unix() || date.Load() == nil {
		rendered := FormatDate(now)
		date.Store(&rendered)
	}
}

func init() {
	// the goroutine isn't guaranteed to start immediately, so the first values must be
	// in place before anyone asks for them
	update(time.Now())

	go func() {
		for {
			time.Sleep(Resolution)
			update(time.Now())
		}
	}()
}

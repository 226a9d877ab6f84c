package timer

import (
	"sync/atomic"
	"time"
)

// DateLayout is RFC 1123 with the zone pinned to GMT, as HTTP/1.1 requires.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Resolution is the frequency at which the cached date is refreshed.
const Resolution = 100 * time.Millisecond

var date = new(atomic.Pointer[string])

// Date returns the current UTC time formatted for the Date header. The value is
// cached, so it may lag the wall clock by up to Resolution.
func Date() string {
	return *date.Load()
}

// FormatDate formats any time as a Date header value.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func tick() {
	formatted := FormatDate(time.Now())
	date.Store(&formatted)
}

func init() {
	// ticking once synchronously so no caller ever observes the zero time
	tick()

	go func() {
		for {
			time.Sleep(Resolution)
			tick()
		}
	}()
}

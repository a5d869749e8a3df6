package specreport

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// SpanBetween reports the timespan covering a build that ran from from to to.
func SpanBetween(from, to time.Time) timespan.TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// EmptySpan is the zero-length span attached to reused-specialization events.
func EmptySpan() timespan.TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now, now)
}

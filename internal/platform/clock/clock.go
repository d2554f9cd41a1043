package clock

import "time"

// Clock abstracts time to keep report output deterministic in tests.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today is the current calendar day truncated to local midnight.
func (c SystemClock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

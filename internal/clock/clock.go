package clock

import "time"

// Clock abstracts time for staleness checks and audit fields, so tests can
// pin it.
type Clock interface {
	Now() time.Time
}

// UTC is the production clock. All persisted timestamps are UTC.
type UTC struct{}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}

package aggregate

import "time"

// Granularity selects the width of a counter bucket.
type Granularity int

const (
	Hourly Granularity = iota
	Daily
)

func (g Granularity) String() string {
	if g == Daily {
		return "day"
	}
	return "hour"
}

// Bucket truncates t to the start of its bucket in the given location. The
// function is pure and idempotent: Bucket(Bucket(t)) == Bucket(t). A nil
// location means UTC.
func Bucket(t time.Time, g Granularity, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	switch g {
	case Daily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	}
}

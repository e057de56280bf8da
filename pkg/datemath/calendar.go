package datemath

import "time"

// AtClock returns the calendar day of day (read in loc) at hour:minute.
// Out-of-range day values roll over the way time.Date does.
func AtClock(day time.Time, hour, minute int, loc *time.Location) time.Time {
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}

// AddDays shifts t by n calendar days keeping the clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysUntil returns how many days ahead target is from current, in 0..6.
func DaysUntil(current, target time.Weekday) int {
	return (int(target) - int(current) + 7) % 7
}

// NextWeekday returns the next day on or after base (inclusive) that falls on target.
func NextWeekday(base time.Time, target time.Weekday) time.Time {
	return AddDays(base, DaysUntil(base.Weekday(), target))
}

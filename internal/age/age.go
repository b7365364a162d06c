// Package age computes elapsed times and calendar-day distances for display.
package age

import "time"

// AgeData returns how long before now then was, and whether then is set.
// Times in the future clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	age := now.Sub(then)
	if age < 0 {
		age = 0
	}
	return age, true
}

// CalendarDays returns the number of midnights between the day containing
// from and the day containing to, both observed in loc. It is negative when
// to is on an earlier day. Daylight-saving shifts do not affect the result.
func CalendarDays(from time.Time, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

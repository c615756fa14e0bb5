package service

import "time"

// WeekBounds returns the Monday and Sunday of the week containing now, at
// midnight UTC. Date-range parameters default to this window when omitted.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	offset := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

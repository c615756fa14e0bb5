package service

import (
	"testing"
	"time"
)

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		now   time.Time
		start string
		end   string
	}{
		// Wednesday mid-week.
		{time.Date(2026, time.June, 10, 15, 30, 0, 0, time.UTC), "2026-06-08", "2026-06-14"},
		// Monday maps to itself.
		{time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC), "2026-06-08", "2026-06-14"},
		// Sunday still belongs to the week that started the prior Monday.
		{time.Date(2026, time.June, 14, 23, 59, 0, 0, time.UTC), "2026-06-08", "2026-06-14"},
	}
	for _, c := range cases {
		start, end := WeekBounds(c.now)
		if got := start.Format("2006-01-02"); got != c.start {
			t.Fatalf("start for %s: got %s, want %s", c.now, got, c.start)
		}
		if got := end.Format("2006-01-02"); got != c.end {
			t.Fatalf("end for %s: got %s, want %s", c.now, got, c.end)
		}
	}
}

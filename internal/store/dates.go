package store

import "time"

const dateLayout = "2006-01-02"

// now is replaced in tests.
var now = time.Now

// DateOf drops the time of day, keeping t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns the current local date.
func Today() time.Time {
	return DateOf(now())
}

// WeekStartOf returns the Monday of t's week. Sunday belongs to the week
// that started six days earlier.
func WeekStartOf(t time.Time) time.Time {
	d := DateOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekRangeLabel formats the Monday to Saturday span of a week,
// for example "12 Oct – 17 Oct".
func WeekRangeLabel(weekStart time.Time) string {
	start := WeekStartOf(weekStart)
	end := start.AddDate(0, 0, 5)
	return start.Format("2 Jan") + " – " + end.Format("2 Jan")
}

// ParseDate parses a YYYY-MM-DD date in local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func formatDate(t time.Time) string {
	return DateOf(t).Format(dateLayout)
}

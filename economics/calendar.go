package economics

import "time"

// AddMonths shifts timestamp in milliseconds by the number of calendar
// months in UTC. Unlike time.AddDate it does not normalize overflowing
// days: Jan 31 plus one month is the last day of February.
func AddMonths(ts int64, months int) int64 {
	t := time.UnixMilli(ts).UTC()

	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := t.Day()
	if dim := daysIn(first.Year(), first.Month()); day > dim {
		day = dim
	}

	res := time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)

	return res.UnixMilli()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package sale

const msPerDay = 24 * 60 * 60 * 1000

// addMonths shifts timestamp (milliseconds since Unix epoch) by the number of
// calendar months keeping the time of day. Day of month is clamped to the
// length of the resulting month, so Jan 31 + 1 month is Feb 28 (29).
func addMonths(ts, months int) int {
	days := ts / msPerDay
	rest := ts % msPerDay

	y, m, d := civilFromDays(days)

	m += months - 1
	y += m / 12
	m = m%12 + 1

	if dim := daysInMonth(y, m); d > dim {
		d = dim
	}

	return daysFromCivil(y, m, d)*msPerDay + rest
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func daysInMonth(y, m int) int {
	switch m {
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// civilFromDays converts the number of days since 1970-01-01 into
// year, month (1-12) and day (1-31). Only non-negative inputs are expected.
func civilFromDays(z int) (int, int, int) {
	z += 719468
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}

	y := yoe + era*400
	if m <= 2 {
		y++
	}

	return y, m, d
}

// daysFromCivil is the inverse of civilFromDays.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}

	era := y / 400
	yoe := y - era*400

	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}

	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*146097 + doe - 719468
}

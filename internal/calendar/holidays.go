package calendar

import "time"

// NRWHolidays returns the public holidays of North Rhine-Westphalia for year.
func NRWHolidays(year int) map[Date]string {
	holidays := map[Date]string{
		{year, time.January, 1}:   "Neujahr",
		{year, time.May, 1}:       "Tag der Arbeit",
		{year, time.October, 3}:   "Tag der Deutschen Einheit",
		{year, time.November, 1}:  "Allerheiligen",
		{year, time.December, 25}: "1. Weihnachtstag",
		{year, time.December, 26}: "2. Weihnachtstag",
	}

	easter := easterSunday(year)
	holidays[easter.AddDays(-2)] = "Karfreitag"
	holidays[easter.AddDays(1)] = "Ostermontag"
	holidays[easter.AddDays(39)] = "Christi Himmelfahrt"
	holidays[easter.AddDays(50)] = "Pfingstmontag"
	holidays[easter.AddDays(60)] = "Fronleichnam"

	return holidays
}

// NRWHoliday is a Config.Holiday lookup backed by NRWHolidays.
func NRWHoliday(d Date) (string, bool) {
	name, ok := NRWHolidays(d.Year)[d]
	return name, ok
}

// easterSunday uses the Meeus/Jones/Butcher algorithm.
func easterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return Date{Year: year, Month: time.Month(month), Day: day}
}

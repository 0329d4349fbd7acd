package ephemeris

import (
	"math"
	"time"
)

// JulianDay converts a UTC moment to a Julian day on the proleptic Gregorian calendar.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	hour := float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600
	return julday(t.Year(), int(t.Month()), t.Day(), hour)
}

// julday is the calendar to day count conversion with the Gregorian branch always taken.
func julday(year, month, day int, hour float64) float64 {
	y := float64(year)
	m := float64(month)
	if month <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + b - 1524.5 + hour/24
}

// MomentFromJulianDay is the inverse of JulianDay, rounded to the millisecond.
func MomentFromJulianDay(jd float64) time.Time {
	const unixEpochJD = 2440587.5
	ms := math.Round((jd - unixEpochJD) * 86400000)
	return time.UnixMilli(int64(ms)).UTC()
}

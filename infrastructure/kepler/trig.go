package kepler

import (
	"chart-lab/domain"
	"math"
)

const (
	j2000        = 2451545.0
	daysCentury  = 36525.0
	auKm         = 149597870.7
	precessionPC = 1.396971 // general precession in longitude, degrees per Julian century
)

func centuries(jd float64) float64 {
	return (jd - j2000) / daysCentury
}

func sind(x float64) float64 { return math.Sin(x * math.Pi / 180) }
func cosd(x float64) float64 { return math.Cos(x * math.Pi / 180) }
func tand(x float64) float64 { return math.Tan(x * math.Pi / 180) }

func atan2d(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }

func asind(x float64) float64 { return math.Asin(clamp(x)) * 180 / math.Pi }

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// signedDelta is b-a folded into [-180,180).
func signedDelta(a, b float64) float64 {
	return domain.Normalize(b-a+180) - 180
}

// obliquity is the mean obliquity of the ecliptic in degrees.
func obliquity(t float64) float64 {
	return 23.439291 - 0.0130042*t
}

// siderealTime is Greenwich mean sidereal time in degrees (IAU 1982).
func siderealTime(jd float64) float64 {
	t := centuries(jd)
	return domain.Normalize(280.46061837 +
		360.98564736629*(jd-j2000) +
		0.000387933*t*t -
		t*t*t/38710000.0)
}

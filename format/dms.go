package format

import "math"

// MaxPrecision caps rounding decimals. Beyond it the scale factor loses float64 precision.
const MaxPrecision = 15

// DMS is an angle split into degrees, minutes and seconds. The sign lives in Negative.
type DMS struct {
	Degrees  int
	Minutes  int
	Seconds  float64
	Negative bool
}

// DegreesToDMS splits x, rounding seconds to precision decimals and carrying into minutes and degrees.
// Non-finite input yields the zero DMS.
func DegreesToDMS(x float64, precision int) DMS {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return DMS{}
	}
	precision = min(max(precision, 0), MaxPrecision)
	scale := math.Pow(10, float64(precision))
	abs := math.Abs(x)

	deg := math.Floor(abs)
	minutesFloat := (abs - deg) * 60
	minutes := math.Floor(minutesFloat)
	seconds := math.Round((minutesFloat-minutes)*60*scale) / scale

	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		deg++
	}
	return DMS{
		Degrees:  int(deg),
		Minutes:  int(minutes),
		Seconds:  seconds,
		Negative: x < 0 && (deg != 0 || minutes != 0 || seconds != 0),
	}
}

func DMSToDegrees(d DMS) float64 {
	v := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600
	if d.Negative {
		return -v
	}
	return v
}

// Package lunar derives the moon phase from Sun and Moon longitudes.
package lunar

import (
	"chart-lab/domain"
	"math"
)

type phaseRange struct {
	from float64 // inclusive
	to   float64 // exclusive
	name domain.PhaseName
}

// Contiguous half-open ranges, checked in order. New Moon wraps around 0°.
var phaseRanges = []phaseRange{
	{2, 88, domain.WaxingCrescent},
	{88, 92, domain.FirstQuarter},
	{92, 178, domain.WaxingGibbous},
	{178, 182, domain.FullMoon},
	{182, 268, domain.WaningGibbous},
	{268, 272, domain.ThirdQuarter},
	{272, 358, domain.WaningCrescent},
}

func Calculate(sunLongitude, moonLongitude float64) domain.MoonPhase {
	angle := domain.Normalize(moonLongitude - sunLongitude)
	illumination := 50 * (1 - math.Cos(angle*math.Pi/180))
	return domain.MoonPhase{
		Angle:        angle,
		Illumination: math.Round(illumination*10) / 10,
		Name:         PhaseName(angle),
	}
}

// PhaseName names the phase of a Sun-Moon elongation in degrees.
func PhaseName(angle float64) domain.PhaseName {
	a := domain.Normalize(angle)
	for _, r := range phaseRanges {
		if a >= r.from && a < r.to {
			return r.name
		}
	}
	return domain.NewMoon
}

// FromChart reads the phase off a chart's Sun and Moon.
func FromChart(chart domain.ChartData) (domain.MoonPhase, bool) {
	sun, okSun := chart.Body(domain.Sun)
	moon, okMoon := chart.Body(domain.Moon)
	if !okSun || !okMoon {
		return domain.MoonPhase{}, false
	}
	return Calculate(sun.Longitude, moon.Longitude), true
}

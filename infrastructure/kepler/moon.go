package kepler

import "chart-lab/domain"

const (
	meanLunarDistanceAU = 384399.0 / auKm
	lunarInclination    = 5.145396
)

// lunarArgs are the fundamental arguments of the lunar theory, degrees.
type lunarArgs struct {
	l, d, m, mp, f float64
}

func lunarArguments(t float64) lunarArgs {
	return lunarArgs{
		l:  218.3164477 + 481267.88123421*t, // mean longitude
		d:  297.8501921 + 445267.1114034*t,  // mean elongation
		m:  357.5291092 + 35999.0502909*t,   // solar mean anomaly
		mp: 134.9633964 + 477198.8675055*t,  // lunar mean anomaly
		f:  93.2720950 + 483202.0175233*t,   // argument of latitude
	}
}

// moonPosition evaluates a truncated periodic series for the Moon, ecliptic of date.
func moonPosition(jd float64) (float64, float64, float64) {
	a := lunarArguments(centuries(jd))
	lon := a.l +
		6.288774*sind(a.mp) +
		1.274027*sind(2*a.d-a.mp) +
		0.658314*sind(2*a.d) +
		0.213618*sind(2*a.mp) -
		0.185116*sind(a.m) -
		0.114332*sind(2*a.f) +
		0.058793*sind(2*a.d-2*a.mp) +
		0.057066*sind(2*a.d-a.m-a.mp) +
		0.053322*sind(2*a.d+a.mp) +
		0.045758*sind(2*a.d-a.m) -
		0.040923*sind(a.m-a.mp) -
		0.034720*sind(a.d) -
		0.030383*sind(a.m+a.mp)
	lat := 5.128122*sind(a.f) +
		0.280602*sind(a.mp+a.f) +
		0.277693*sind(a.mp-a.f) +
		0.173237*sind(2*a.d-a.f) +
		0.055413*sind(2*a.d-a.mp+a.f) +
		0.046271*sind(2*a.d-a.mp-a.f)
	km := 385000.56 -
		20905.355*cosd(a.mp) -
		3699.111*cosd(2*a.d-a.mp) -
		2955.968*cosd(2*a.d) -
		569.925*cosd(2*a.mp)
	return domain.Normalize(lon), lat, km / auKm
}

func meanNode(t float64) float64 {
	return domain.Normalize(125.0445479 - 1934.1362891*t)
}

func trueNode(jd float64) (float64, float64, float64) {
	t := centuries(jd)
	a := lunarArguments(t)
	lon := meanNode(t) -
		1.4979*sind(2*(a.d-a.f)) -
		0.1500*sind(a.m) -
		0.1226*sind(2*a.d) +
		0.1176*sind(2*a.f) -
		0.0801*sind(2*(a.mp-a.f))
	return domain.Normalize(lon), 0, meanLunarDistanceAU
}

// meanApogee is the mean lunar apogee (mean Lilith), latitude taken on the mean lunar orbit.
func meanApogee(jd float64) (float64, float64, float64) {
	t := centuries(jd)
	lon := domain.Normalize(83.3532465 + 4069.0137287*t + 180)
	lat := atan2d(sind(lon-meanNode(t))*tand(lunarInclination), 1)
	return lon, lat, meanLunarDistanceAU * 1.0549
}

// trueApogee adds the dominant evection-driven oscillation to the mean apogee.
// It is a degree-class approximation of the osculating apogee.
func trueApogee(jd float64) (float64, float64, float64) {
	lon, lat, dist := meanApogee(jd)
	a := lunarArguments(centuries(jd))
	return domain.Normalize(lon - 15.448*sind(2*(a.d-a.mp))), lat, dist
}

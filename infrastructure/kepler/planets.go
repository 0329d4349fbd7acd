package kepler

import (
	"chart-lab/domain"
	"math"
)

// elements are mean Keplerian elements referred to the J2000 ecliptic and equinox,
// each given as value at J2000 and rate per Julian century.
type elements struct {
	a, aDot       float64 // AU
	e, eDot       float64
	i, iDot       float64 // degrees
	l, lDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

// Approximate planetary elements valid 1800-2050, Chiron from its 1996 perihelion orbit.
var (
	earthMoonBary = elements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}
	mercury       = elements{0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081}
	venus         = elements{0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418}
	mars          = elements{1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, -4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343}
	jupiter       = elements{5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106}
	saturn        = elements{9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794}
	uranus        = elements{19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939, 313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589}
	neptune       = elements{30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372, -55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664}
	pluto         = elements{39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818, 238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482}
	chiron        = elements{13.6481, 0, 0.38152, 0, 6.9349, 0, 216.53, 714.0, 188.827, 0, 209.3834, 0}
)

type vec3 struct{ x, y, z float64 }

func (v vec3) sub(u vec3) vec3 { return vec3{v.x - u.x, v.y - u.y, v.z - u.z} }

func (v vec3) neg() vec3 { return vec3{-v.x, -v.y, -v.z} }

// spherical returns longitude, latitude (degrees) and distance.
func (v vec3) spherical() (float64, float64, float64) {
	r := math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
	return domain.Normalize(atan2d(v.y, v.x)), atan2d(v.z, math.Hypot(v.x, v.y)), r
}

// heliocentric solves Kepler's equation and rotates the orbit into the J2000 ecliptic frame.
func heliocentric(el elements, t float64) vec3 {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := el.i + el.iDot*t
	l := el.l + el.lDot*t
	peri := el.peri + el.periDot*t
	node := el.node + el.nodeDot*t

	argPeri := peri - node
	m := domain.Normalize(l-peri+180) - 180
	mRad := m * math.Pi / 180

	ecc := mRad + e*math.Sin(mRad)
	for k := 0; k < 12; k++ {
		delta := (ecc - e*math.Sin(ecc) - mRad) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}

	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := cosd(argPeri), sind(argPeri)
	cn, sn := cosd(node), sind(node)
	ci, si := cosd(inc), sind(inc)
	return vec3{
		x: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		z: (sw*si)*xp + (cw*si)*yp,
	}
}

// geocentric returns ecliptic-of-date longitude, latitude and distance of a planet, or of the Sun when el is nil.
func geocentric(el *elements, jd float64) (float64, float64, float64) {
	t := centuries(jd)
	earth := heliocentric(earthMoonBary, t)
	v := earth.neg()
	if el != nil {
		v = heliocentric(*el, t).sub(earth)
	}
	lon, lat, dist := v.spherical()
	return domain.Normalize(lon + precessionPC*t), lat, dist
}

package kepler

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"fmt"
	"math"
)

type houseFrame struct {
	ramc, eps, lat float64
	asc, mc        float64
}

func newHouseFrame(jd, latitude, longitude float64) houseFrame {
	eps := obliquity(centuries(jd))
	ramc := domain.Normalize(siderealTime(jd) + longitude)
	f := houseFrame{ramc: ramc, eps: eps, lat: latitude}
	f.mc = f.eclipticFromRA(ramc)
	f.asc = f.cuspAt(ramc, latitude)
	return f
}

// cuspAt intersects the ecliptic with the house circle of pole height pole, for a sidereal angle r.
// r = RAMC and pole = latitude gives the Ascendant.
func (f houseFrame) cuspAt(r, pole float64) float64 {
	return domain.Normalize(atan2d(cosd(r), -(sind(r)*cosd(f.eps) + tand(pole)*sind(f.eps))))
}

// eclipticFromRA is the ecliptic point with right ascension ra.
func (f houseFrame) eclipticFromRA(ra float64) float64 {
	return domain.Normalize(atan2d(sind(ra), cosd(ra)*cosd(f.eps)))
}

// ascensionalDifference of an ecliptic longitude, ok=false when the point is circumpolar.
func (f houseFrame) ascensionalDifference(lon float64) (float64, bool) {
	dec := asind(sind(f.eps) * sind(lon))
	x := tand(dec) * tand(f.lat)
	if math.Abs(x) >= 1 {
		return 0, false
	}
	return asind(x), true
}

// quadrant assembles twelve cusps from the MC-ASC and ASC-IC intermediates.
func (f houseFrame) quadrant(c11, c12, c2, c3 float64) [12]float64 {
	return [12]float64{
		f.asc, c2, c3, domain.Opposite(f.mc),
		domain.Opposite(c11), domain.Opposite(c12), domain.Opposite(f.asc), domain.Opposite(c2),
		domain.Opposite(c3), f.mc, c11, c12,
	}
}

func (f houseFrame) rotated(project func(ra float64) float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		house := i + 1
		cusps[i] = project(f.ramc + 30*float64(house-10))
	}
	return cusps
}

func (f houseFrame) equal(start float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = domain.Normalize(start + 30*float64(i))
	}
	return cusps
}

func (f houseFrame) porphyrius() [12]float64 {
	q1 := domain.Normalize(f.asc - f.mc)
	q2 := 180 - q1
	return f.quadrant(
		domain.Normalize(f.mc+q1/3), domain.Normalize(f.mc+2*q1/3),
		domain.Normalize(f.asc+q2/3), domain.Normalize(f.asc+2*q2/3),
	)
}

func (f houseFrame) regiomontanus() [12]float64 {
	cusp := func(h float64) float64 {
		pole := atan2d(tand(f.lat)*sind(h), 1)
		return f.cuspAt(f.ramc+h-90, pole)
	}
	return f.quadrant(cusp(30), cusp(60), cusp(120), cusp(150))
}

func (f houseFrame) campanus() [12]float64 {
	cusp := func(a float64) float64 {
		h := atan2d(sind(a)*cosd(f.lat), cosd(a))
		pole := asind(sind(f.lat) * sind(a))
		return f.cuspAt(f.ramc+h-90, pole)
	}
	return f.quadrant(cusp(30), cusp(60), cusp(120), cusp(150))
}

// placidus trisects the semi-arcs of each cusp itself, solved by fixed point iteration.
func (f houseFrame) placidus() ([12]float64, bool) {
	solve := func(fraction float64, diurnal bool) (float64, bool) {
		ra := f.ramc + 90*fraction
		if !diurnal {
			ra = f.ramc + 180 - 90*fraction
		}
		lon := f.eclipticFromRA(ra)
		for k := 0; k < 50; k++ {
			ad, ok := f.ascensionalDifference(lon)
			if !ok {
				return 0, false
			}
			if diurnal {
				ra = f.ramc + fraction*(90+ad)
			} else {
				ra = f.ramc + 180 - fraction*(90-ad)
			}
			next := f.eclipticFromRA(ra)
			if math.Abs(signedDelta(lon, next)) < 1e-9 {
				return next, true
			}
			lon = next
		}
		return lon, true
	}
	c11, ok11 := solve(1.0/3, true)
	c12, ok12 := solve(2.0/3, true)
	c2, ok2 := solve(2.0/3, false)
	c3, ok3 := solve(1.0/3, false)
	if !ok11 || !ok12 || !ok2 || !ok3 {
		return [12]float64{}, false
	}
	return f.quadrant(c11, c12, c2, c3), true
}

// koch trisects the diurnal semi-arc of the MC and takes ascendants of the shifted sidereal angles.
func (f houseFrame) koch() ([12]float64, bool) {
	ad, ok := f.ascensionalDifference(f.mc)
	if !ok {
		return [12]float64{}, false
	}
	third := (90 + ad) / 3
	return f.quadrant(
		f.cuspAt(f.ramc-2*third, f.lat), f.cuspAt(f.ramc-third, f.lat),
		f.cuspAt(f.ramc+third, f.lat), f.cuspAt(f.ramc+2*third, f.lat),
	), true
}

// alcabitus trisects the Ascendant's semi-arcs along the equator.
func (f houseFrame) alcabitus() ([12]float64, bool) {
	ad, ok := f.ascensionalDifference(f.asc)
	if !ok {
		return [12]float64{}, false
	}
	dsa := 90 + ad
	nsa := 180 - dsa
	return f.quadrant(
		f.eclipticFromRA(f.ramc+dsa/3), f.eclipticFromRA(f.ramc+2*dsa/3),
		f.eclipticFromRA(f.ramc+dsa+nsa/3), f.eclipticFromRA(f.ramc+dsa+2*nsa/3),
	), true
}

// houseGeometry computes cusps for a system code. Semi-arc systems fall back to Porphyrius
// inside the polar circles, where some ecliptic degrees never rise.
func houseGeometry(jd, latitude, longitude float64, code byte) (contract.HouseGeometry, error) {
	f := newHouseFrame(jd, latitude, longitude)
	var cusps [12]float64
	ok := true
	switch code {
	case 'P':
		cusps, ok = f.placidus()
	case 'K':
		cusps, ok = f.koch()
	case 'O':
		cusps = f.porphyrius()
	case 'R':
		cusps = f.regiomontanus()
	case 'C':
		cusps = f.campanus()
	case 'A':
		cusps = f.equal(f.asc)
	case 'W':
		cusps = f.equal(math.Floor(f.asc/30) * 30)
	case 'X':
		cusps = f.rotated(f.eclipticFromRA)
	case 'M':
		cusps = f.rotated(func(ra float64) float64 {
			return domain.Normalize(atan2d(sind(ra)*cosd(f.eps), cosd(ra)))
		})
	case 'B':
		cusps, ok = f.alcabitus()
	default:
		return contract.HouseGeometry{}, fmt.Errorf("%w: code %q", errors.ErrUnknownHouseSystem, code)
	}
	if !ok {
		cusps = f.porphyrius()
	}
	return contract.HouseGeometry{Cusps: cusps, Ascendant: f.asc, Midheaven: f.mc}, nil
}

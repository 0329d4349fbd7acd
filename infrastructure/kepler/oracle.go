// Package kepler is a self-contained approximate ephemeris implementing contract.IOracle.
// Planets come from mean Keplerian elements, the Moon from a truncated periodic series,
// houses from spherical trigonometry on the mean obliquity. Accuracy is arc-minute class for
// the Sun and planets near the present epoch, degree class for Chiron and the true apogee.
package kepler

import (
	"chart-lab/contract"
	"chart-lab/errors"
	"context"
	"fmt"
	"math"
)

// speedStep is the half width, in days, of the central difference used for speeds.
const speedStep = 1.0 / 24

type positionFunc func(jd float64) (lon, lat, dist float64)

var bodyFuncs = map[contract.BodyID]positionFunc{
	contract.BodySun:        func(jd float64) (float64, float64, float64) { return geocentric(nil, jd) },
	contract.BodyMoon:       moonPosition,
	contract.BodyMercury:    planet(&mercury),
	contract.BodyVenus:      planet(&venus),
	contract.BodyMars:       planet(&mars),
	contract.BodyJupiter:    planet(&jupiter),
	contract.BodySaturn:     planet(&saturn),
	contract.BodyUranus:     planet(&uranus),
	contract.BodyNeptune:    planet(&neptune),
	contract.BodyPluto:      planet(&pluto),
	contract.BodyChiron:     planet(&chiron),
	contract.BodyTrueNode:   trueNode,
	contract.BodyMeanNode:   func(jd float64) (float64, float64, float64) { return meanNode(centuries(jd)), 0, meanLunarDistanceAU },
	contract.BodyMeanApogee: meanApogee,
	contract.BodyOscuApogee: trueApogee,
}

func planet(el *elements) positionFunc {
	return func(jd float64) (float64, float64, float64) { return geocentric(el, jd) }
}

type Oracle struct{}

func NewOracle() *Oracle {
	return &Oracle{}
}

func (o *Oracle) Position(ctx context.Context, jd float64, body contract.BodyID, flags contract.Flag) (contract.Position, error) {
	if err := ctx.Err(); err != nil {
		return contract.Position{}, err
	}
	fn, ok := bodyFuncs[body]
	if !ok {
		return contract.Position{}, fmt.Errorf("body %d not supported", body)
	}
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return contract.Position{}, fmt.Errorf("invalid julian day %v", jd)
	}

	lon, lat, dist := fn(jd)
	p := contract.Position{Longitude: lon, Latitude: lat, Distance: dist}
	if flags&contract.FlagSpeed != 0 {
		lon0, lat0, dist0 := fn(jd - speedStep)
		lon1, lat1, dist1 := fn(jd + speedStep)
		p.LongitudeSpeed = signedDelta(lon0, lon1) / (2 * speedStep)
		p.LatitudeSpeed = (lat1 - lat0) / (2 * speedStep)
		p.DistanceSpeed = (dist1 - dist0) / (2 * speedStep)
	}
	return p, nil
}

func (o *Oracle) Houses(ctx context.Context, jd float64, latitude, longitude float64, system byte) (contract.HouseGeometry, error) {
	if err := ctx.Err(); err != nil {
		return contract.HouseGeometry{}, err
	}
	if math.Abs(latitude) > 90 || math.Abs(longitude) > 180 {
		return contract.HouseGeometry{}, fmt.Errorf("%w: %.4f, %.4f", errors.ErrInvalidCoordinates, latitude, longitude)
	}
	return houseGeometry(jd, latitude, longitude, system)
}

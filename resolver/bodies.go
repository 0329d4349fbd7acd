// Package resolver turns raw oracle answers into chart records.
package resolver

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// ResolveBody validates one oracle position and derives sign, sign degree and retrograde status.
// A luminary moving backwards means the oracle is broken, so it fails instead of being flagged.
func ResolveBody(name domain.Body, p contract.Position) (domain.CelestialBody, error) {
	values := []float64{p.Longitude, p.Latitude, p.Distance, p.LongitudeSpeed, p.LatitudeSpeed, p.DistanceSpeed}
	if lo.SomeBy(values, isNotFinite) {
		return domain.CelestialBody{}, errors.NewEphemerisFailure(string(name), fmt.Errorf("non-finite value in %+v", p))
	}
	if name.Luminary() && p.LongitudeSpeed < 0 {
		return domain.CelestialBody{}, errors.NewEphemerisFailure(string(name),
			fmt.Errorf("negative longitude speed %.6f for a luminary", p.LongitudeSpeed))
	}
	return domain.NewCelestialBody(name,
		p.Longitude, p.Latitude, p.Distance,
		p.LongitudeSpeed, p.LatitudeSpeed, p.DistanceSpeed,
	), nil
}

// SouthNode mirrors the North Node: longitude rotated by 180°, latitude negated, every speed inherited.
func SouthNode(north domain.CelestialBody) domain.CelestialBody {
	return domain.NewCelestialBody(domain.SouthNode,
		north.Longitude+180, -north.Latitude, north.Distance,
		north.LongitudeSpeed, north.LatitudeSpeed, north.DistanceSpeed,
	)
}

// ResolveBodies resolves every queried body and appends the derived South Node.
// It fails on the first missing or invalid body; no partial set is returned.
func ResolveBodies(positions map[domain.Body]contract.Position) ([]domain.CelestialBody, error) {
	bodies := make([]domain.CelestialBody, 0, len(domain.AllBodies))
	for _, name := range domain.QueriedBodies {
		p, ok := positions[name]
		if !ok {
			return nil, errors.NewEphemerisFailure(string(name), fmt.Errorf("no position returned"))
		}
		b, err := ResolveBody(name, p)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	north, _ := lo.Find(bodies, func(b domain.CelestialBody) bool { return b.Name == domain.NorthNode })
	return append(bodies, SouthNode(north)), nil
}

func isNotFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

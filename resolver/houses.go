package resolver

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

// ResolveHouses extracts the angles and cusps of one house query.
// Descendant and IC come from domain.NewAngles, so the opposite-point relations hold by construction.
// Cusp 1 and cusp 10 are pinned to the Ascendant and Midheaven for every system.
func ResolveHouses(g contract.HouseGeometry, system domain.HouseSystem) (domain.Angles, domain.Houses, error) {
	values := append([]float64{g.Ascendant, g.Midheaven}, g.Cusps[:]...)
	if lo.SomeBy(values, isNotFinite) {
		return domain.Angles{}, domain.Houses{}, errors.NewEphemerisFailure(errors.TargetHouses,
			fmt.Errorf("non-finite value in %s geometry", system))
	}

	angles := domain.NewAngles(g.Ascendant, g.Midheaven)
	houses := domain.Houses{System: system}
	for i, c := range g.Cusps {
		houses.Cusps[i] = domain.Normalize(c)
	}
	houses.Cusps[0] = angles.Ascendant
	houses.Cusps[9] = angles.Midheaven
	return angles, houses, nil
}

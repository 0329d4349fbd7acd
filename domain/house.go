package domain

import (
	"chart-lab/errors"
	"fmt"
	"strings"
)

type HouseSystem string

const (
	Placidus      HouseSystem = "placidus"
	Koch          HouseSystem = "koch"
	Porphyrius    HouseSystem = "porphyrius"
	Regiomontanus HouseSystem = "regiomontanus"
	Campanus      HouseSystem = "campanus"
	Equal         HouseSystem = "equal"
	WholeSign     HouseSystem = "whole-sign"
	Meridian      HouseSystem = "meridian"
	Morinus       HouseSystem = "morinus"
	Alcabitus     HouseSystem = "alcabitus"
)

var AllHouseSystems = []HouseSystem{
	Placidus, Koch, Porphyrius, Regiomontanus, Campanus,
	Equal, WholeSign, Meridian, Morinus, Alcabitus,
}

// ParseHouseSystem accepts a system name case-insensitively, ignoring '-', '_' and spaces.
func ParseHouseSystem(name string) (HouseSystem, error) {
	key := compactName(name)
	for _, hs := range AllHouseSystems {
		if compactName(string(hs)) == key {
			return hs, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownHouseSystem, name)
}

func compactName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Angles holds the four cardinal points.
// Descendant and ImumCoeli are only ever produced by NewAngles.
type Angles struct {
	Ascendant  float64
	Midheaven  float64
	Descendant float64
	ImumCoeli  float64
}

func NewAngles(ascendant, midheaven float64) Angles {
	asc := Normalize(ascendant)
	mc := Normalize(midheaven)
	return Angles{
		Ascendant:  asc,
		Midheaven:  mc,
		Descendant: Opposite(asc),
		ImumCoeli:  Opposite(mc),
	}
}

// Houses holds the twelve cusps, Cusps[0] being the first house.
type Houses struct {
	System HouseSystem
	Cusps  [12]float64
}

// House returns the 1-based house number containing longitude.
func (h Houses) House(longitude float64) int {
	lon := Normalize(longitude)
	for i := 0; i < 12; i++ {
		start := h.Cusps[i]
		width := Normalize(h.Cusps[(i+1)%12] - start)
		if Normalize(lon-start) < width {
			return i + 1
		}
	}
	return 1
}

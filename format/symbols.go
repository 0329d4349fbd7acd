package format

import (
	"chart-lab/domain"
	"strings"
)

// Fallback is returned for any name no table knows.
const Fallback = "?"

var planetSymbols = map[string]string{
	"sun":     "☉",
	"moon":    "☽",
	"mercury": "☿",
	"venus":   "♀",
	"mars":    "♂",
	"jupiter": "♃",
	"saturn":  "♄",
	"uranus":  "♅",
	"neptune": "♆",
	"pluto":   "♇",
	// special points
	"northnode": "☊",
	"southnode": "☋",
	"chiron":    "⚷",
	"lilith":    "⚸",
	"ascendant": "AC",
	"midheaven": "MC",
}

var pointAliases = map[string]string{
	"meanlilith": "lilith",
	"truenode":   "northnode",
	"asc":        "ascendant",
	"ac":         "ascendant",
	"mc":         "midheaven",
}

var zodiacSymbols = [...]string{"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓"}

var moonPhaseSymbols = map[string]string{
	"newmoon":        "🌑",
	"waxingcrescent": "🌒",
	"firstquarter":   "🌓",
	"waxinggibbous":  "🌔",
	"fullmoon":       "🌕",
	"waninggibbous":  "🌖",
	"thirdquarter":   "🌗",
	"lastquarter":    "🌗",
	"waningcrescent": "🌘",
}

var houseSystemNames = map[domain.HouseSystem]string{
	domain.Placidus:      "Placidus",
	domain.Koch:          "Koch",
	domain.Porphyrius:    "Porphyrius",
	domain.Regiomontanus: "Regiomontanus",
	domain.Campanus:      "Campanus",
	domain.Equal:         "Equal",
	domain.WholeSign:     "Whole Sign",
	domain.Meridian:      "Meridian",
	domain.Morinus:       "Morinus",
	domain.Alcabitus:     "Alcabitus",
}

// lookupKey folds case and drops separators so "North Node", "north_node" and "northNode" agree.
func lookupKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// PlanetSymbol covers the ten bodies and the special points (nodes, Chiron, Lilith, Ascendant, Midheaven).
func PlanetSymbol(name string) string {
	key := lookupKey(name)
	if alias, ok := pointAliases[key]; ok {
		key = alias
	}
	if s, ok := planetSymbols[key]; ok {
		return s
	}
	return Fallback
}

// ZodiacSymbol accepts a sign name or its three-letter abbreviation.
func ZodiacSymbol(name string) string {
	key := lookupKey(name)
	for _, sign := range domain.ZodiacSigns {
		full := strings.ToLower(sign.String())
		if key == full || key == full[:3] {
			return zodiacSymbols[sign]
		}
	}
	return Fallback
}

// ZodiacSymbolByIndex takes the 0-based sign index, Aries being 0.
func ZodiacSymbolByIndex(i int) string {
	if i < 0 || i >= len(zodiacSymbols) {
		return Fallback
	}
	return zodiacSymbols[i]
}

func MoonPhaseSymbol(name string) string {
	if s, ok := moonPhaseSymbols[lookupKey(name)]; ok {
		return s
	}
	return Fallback
}

func HouseSystemName(hs domain.HouseSystem) string {
	if n, ok := houseSystemNames[hs]; ok {
		return n
	}
	return string(hs)
}

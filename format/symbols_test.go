package format

import (
	"chart-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanetSymbol(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"should resolve a planet", "sun", "☉"},
		{"should ignore case", "SATURN", "♄"},
		{"should resolve a camel case point", "northNode", "☊"},
		{"should resolve a spaced point", "South Node", "☋"},
		{"should resolve an alias", "meanLilith", "⚸"},
		{"should resolve the true node alias", "true_node", "☊"},
		{"should resolve the angles", "ASC", "AC"},
		{"should resolve the midheaven", "mc", "MC"},
		{"should fall back on unknown names", "vulcan", Fallback},
		{"should fall back on empty input", "", Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PlanetSymbol(tt.in))
		})
	}
}

func TestPlanetSymbol_CoversEveryBody(t *testing.T) {
	for _, b := range domain.AllBodies {
		require.NotEqual(t, Fallback, PlanetSymbol(string(b)), "body %s", b)
	}
}

func TestZodiacSymbol(t *testing.T) {
	req := require.New(t)
	req.Equal("♈", ZodiacSymbol("Aries"))
	req.Equal("♓", ZodiacSymbol("pisces"))
	req.Equal("♑", ZodiacSymbol("CAP"))
	req.Equal(Fallback, ZodiacSymbol("Ophiuchus"))
	req.Equal(Fallback, ZodiacSymbol(""))

	req.Equal("♌", ZodiacSymbolByIndex(int(domain.Leo)))
	req.Equal(Fallback, ZodiacSymbolByIndex(-1))
	req.Equal(Fallback, ZodiacSymbolByIndex(12))
}

func TestMoonPhaseSymbol(t *testing.T) {
	req := require.New(t)
	req.Equal("🌑", MoonPhaseSymbol(string(domain.NewMoon)))
	req.Equal("🌕", MoonPhaseSymbol("full moon"))
	req.Equal("🌗", MoonPhaseSymbol("Last Quarter"))
	req.Equal(MoonPhaseSymbol("third quarter"), MoonPhaseSymbol("last_quarter"))
	req.Equal(Fallback, MoonPhaseSymbol("blue moon"))
}

func TestHouseSystemName(t *testing.T) {
	req := require.New(t)
	req.Equal("Whole Sign", HouseSystemName(domain.WholeSign))
	req.Equal("Placidus", HouseSystemName(domain.Placidus))
	req.Equal("topocentric", HouseSystemName(domain.HouseSystem("topocentric")))
}

package domain

import (
	"chart-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHouseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want HouseSystem
	}{
		{"placidus", Placidus},
		{"Placidus", Placidus},
		{"KOCH", Koch},
		{"whole-sign", WholeSign},
		{"whole_sign", WholeSign},
		{"Whole Sign", WholeSign},
		{"wholesign", WholeSign},
		{" alcabitus ", Alcabitus},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHouseSystem(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown systems", func(t *testing.T) {
		_, err := ParseHouseSystem("topocentric")
		require.ErrorIs(t, err, errors.ErrUnknownHouseSystem)
	})
	require.Len(t, AllHouseSystems, 10)
}

func TestNewAngles(t *testing.T) {
	req := require.New(t)

	a := NewAngles(200.5, 110.25)
	req.Equal(200.5, a.Ascendant)
	req.Equal(110.25, a.Midheaven)
	req.Equal(20.5, a.Descendant)
	req.Equal(290.25, a.ImumCoeli)

	wrapped := NewAngles(-10, 370)
	req.InDelta(350, wrapped.Ascendant, 1e-9)
	req.InDelta(170, wrapped.Descendant, 1e-9)
	req.InDelta(10, wrapped.Midheaven, 1e-9)
	req.InDelta(190, wrapped.ImumCoeli, 1e-9)
}

func TestHouses_House(t *testing.T) {
	req := require.New(t)
	var h Houses
	for i := range h.Cusps {
		h.Cusps[i] = Normalize(350 + 30*float64(i))
	}

	req.Equal(1, h.House(350))
	req.Equal(1, h.House(5))
	req.Equal(2, h.House(20))
	req.Equal(12, h.House(349.9))
	req.Equal(7, h.House(175))
}

package format

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestFormatDegree(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		opts []DegreeOptions
		want string
	}{
		{"default", 45, nil, "15.00° Taurus"},
		{"zero", 0, nil, "0.00° Aries"},
		{"negative wraps", -30, nil, "0.00° Pisces"},
		{"rounding rolls into the next sign", 59.999, nil, "0.00° Gemini"},
		{"rounding rolls past 360", 359.9999, nil, "0.00° Aries"},
		{"precision is capped", 45, []DegreeOptions{{Precision: lo.ToPtr(400)}}, "15.000000000000000° Taurus"},
		{"precision", 123.45678, []DegreeOptions{{Precision: lo.ToPtr(3)}}, "3.457° Leo"},
		{"zero precision", 123.6, []DegreeOptions{{Precision: lo.ToPtr(0)}}, "4° Leo"},
		{"abbreviated", 200, []DegreeOptions{{SignFormat: SignAbbreviated}}, "20.00° Lib"},
		{"symbol", 45, []DegreeOptions{{SignFormat: SignSymbol}}, "15.00° ♉"},
		{"dms", 45.5, []DegreeOptions{{IncludeDMS: true}}, "15°30' Taurus"},
		{"dms with seconds", 45.5125, []DegreeOptions{{IncludeDMS: true, IncludeSeconds: true}}, "15°30'45\" Taurus"},
		{"dms minute carry", 29.9999, []DegreeOptions{{IncludeDMS: true}}, "0°00' Taurus"},
		{"dms seconds carry", 359.99999, []DegreeOptions{{IncludeDMS: true, IncludeSeconds: true}}, "0°00'00\" Aries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatDegree(tt.lon, tt.opts...))
		})
	}
}

func TestFormatDegree_Invalid(t *testing.T) {
	req := require.New(t)
	req.Equal(InvalidDegree, FormatDegree(math.NaN()))
	req.Equal(InvalidDegree, FormatDegree(math.Inf(1)))
	req.Equal(InvalidDegree, FormatDegree(math.Inf(-1), DegreeOptions{IncludeDMS: true}))
}

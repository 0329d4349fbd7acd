// Package format renders angles and coordinates for display and maps names to glyphs.
// Every function is total: out of domain input yields a sentinel string, never an error.
package format

import (
	"chart-lab/domain"
	"fmt"
	"math"

	"github.com/samber/lo"
)

const (
	InvalidDegree      = "Invalid degree"
	InvalidCoordinates = "Invalid coordinates"
)

type SignFormat string

const (
	SignFull        SignFormat = "full"
	SignAbbreviated SignFormat = "abbreviated"
	SignSymbol      SignFormat = "symbol"
)

type DegreeOptions struct {
	Precision      *int // decimals in decimal mode, default 2
	SignFormat     SignFormat
	IncludeDMS     bool
	IncludeSeconds bool
}

type degreeSettings struct {
	precision      int
	signFormat     SignFormat
	includeDMS     bool
	includeSeconds bool
}

func resolveDegreeOptions(opts []DegreeOptions) degreeSettings {
	o := lo.FirstOr(opts, DegreeOptions{})
	return degreeSettings{
		precision:      min(max(lo.FromPtrOr(o.Precision, 2), 0), MaxPrecision),
		signFormat:     lo.Ternary(o.SignFormat == "", SignFull, o.SignFormat),
		includeDMS:     o.IncludeDMS,
		includeSeconds: o.IncludeSeconds,
	}
}

// FormatDegree renders an ecliptic longitude as an in-sign position, e.g. "15.00° Taurus".
func FormatDegree(longitude float64, opts ...DegreeOptions) string {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return InvalidDegree
	}
	s := resolveDegreeOptions(opts)
	lon := domain.Normalize(longitude)

	if s.includeDMS {
		return formatDegreeDMS(lon, s)
	}
	// Round on the full longitude so 29.999° rolls into the next sign instead of printing 30.00.
	scale := math.Pow(10, float64(s.precision))
	rounded := domain.Normalize(math.Round(lon*scale) / scale)
	sign := domain.SignOf(rounded)
	inSign := math.Max(rounded-float64(sign)*30, 0)
	return fmt.Sprintf("%.*f° %s", s.precision, inSign, SignLabel(sign, s.signFormat))
}

func formatDegreeDMS(lon float64, s degreeSettings) string {
	if s.includeSeconds {
		dms := DegreesToDMS(lon, 0)
		sign, deg := splitSign(dms.Degrees)
		return fmt.Sprintf("%d°%02d'%02d\" %s", deg, dms.Minutes, int(dms.Seconds), SignLabel(sign, s.signFormat))
	}
	totalMinutes := int(math.Round(lon * 60))
	sign, deg := splitSign(totalMinutes / 60)
	return fmt.Sprintf("%d°%02d' %s", deg, totalMinutes%60, SignLabel(sign, s.signFormat))
}

// splitSign turns whole ecliptic degrees into a sign and the degree within it, wrapping 360 to Aries.
func splitSign(degrees int) (domain.ZodiacSign, int) {
	degrees %= 360
	return domain.ZodiacSign(degrees / 30), degrees % 30
}

// SignLabel renders a sign as its full name, three-letter abbreviation or glyph.
func SignLabel(sign domain.ZodiacSign, f SignFormat) string {
	switch f {
	case SignAbbreviated:
		return SignAbbreviation(sign)
	case SignSymbol:
		return ZodiacSymbolByIndex(int(sign))
	default:
		return sign.String()
	}
}

func SignAbbreviation(sign domain.ZodiacSign) string {
	name := sign.String()
	if sign < domain.Aries || sign > domain.Pisces {
		return name
	}
	return name[:3]
}

package format

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

type CoordinateFormat string

const (
	CoordinateDecimal CoordinateFormat = "decimal"
	CoordinateDMS     CoordinateFormat = "dms"
)

type CoordinateOptions struct {
	Precision *int // decimals in decimal mode, default 4
	Format    CoordinateFormat
}

// FormatCoordinates renders a latitude/longitude pair, e.g. "40.7128°N, 74.0060°W".
func FormatCoordinates(latitude, longitude float64, opts ...CoordinateOptions) string {
	if !validLatitude(latitude) || !validLongitude(longitude) {
		return InvalidCoordinates
	}
	o := lo.FirstOr(opts, CoordinateOptions{})

	if o.Format == CoordinateDMS {
		return dmsString(latitude, "N", "S") + ", " + dmsString(longitude, "E", "W")
	}
	p := min(max(lo.FromPtrOr(o.Precision, 4), 0), MaxPrecision)
	return decimalString(latitude, p, "N", "S") + ", " + decimalString(longitude, p, "E", "W")
}

// The hemisphere follows the printed value, so a tiny negative that rounds to zero reads N or E.
func decimalString(x float64, precision int, positive, negative string) string {
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(x*scale) / scale
	return fmt.Sprintf("%.*f°%s", precision, math.Abs(rounded), lo.Ternary(rounded < 0, negative, positive))
}

func dmsString(x float64, positive, negative string) string {
	d := DegreesToDMS(x, 0)
	return fmt.Sprintf("%d°%02d'%02d\"%s", d.Degrees, d.Minutes, int(d.Seconds), lo.Ternary(d.Negative, negative, positive))
}

func validLatitude(x float64) bool {
	return !math.IsNaN(x) && x >= -90 && x <= 90
}

func validLongitude(x float64) bool {
	return !math.IsNaN(x) && x >= -180 && x <= 180
}

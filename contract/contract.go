//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chart-lab/domain"
	"context"
	"time"
)

// BodyID is the oracle's numeric body identifier (Swiss Ephemeris numbering).
type BodyID int

const (
	BodySun        BodyID = 0
	BodyMoon       BodyID = 1
	BodyMercury    BodyID = 2
	BodyVenus      BodyID = 3
	BodyMars       BodyID = 4
	BodyJupiter    BodyID = 5
	BodySaturn     BodyID = 6
	BodyUranus     BodyID = 7
	BodyNeptune    BodyID = 8
	BodyPluto      BodyID = 9
	BodyMeanNode   BodyID = 10
	BodyTrueNode   BodyID = 11
	BodyMeanApogee BodyID = 12
	BodyOscuApogee BodyID = 13
	BodyChiron     BodyID = 15
)

// Flag selects oracle computation options.
type Flag int

const (
	FlagSwissEph Flag = 2
	FlagSpeed    Flag = 256
)

// Position is the raw oracle answer for one body. Longitude and latitude are ecliptic of date, degrees.
type Position struct {
	Longitude      float64
	Latitude       float64
	Distance       float64
	LongitudeSpeed float64
	LatitudeSpeed  float64
	DistanceSpeed  float64
}

// HouseGeometry is the raw oracle answer for a house system query.
type HouseGeometry struct {
	Cusps     [12]float64
	Ascendant float64
	Midheaven float64
}

// IOracle performs the orbital mechanics. jd is a Julian day in UT.
// Implementations wrap errors.ErrTransientOracle for failures worth retrying.
type IOracle interface {
	Position(ctx context.Context, jd float64, body BodyID, flags Flag) (Position, error)
	Houses(ctx context.Context, jd float64, latitude, longitude float64, system byte) (HouseGeometry, error)
}

type IClock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type IChartService interface {
	Compute(ctx context.Context, moment any, location domain.GeoCoordinates, opts domain.ChartOptions) (domain.ChartData, error)
	ProgressedChart(ctx context.Context, birth, target any, location domain.GeoCoordinates, opts domain.ChartOptions) (domain.ChartData, domain.ProgressionResult, error)
}

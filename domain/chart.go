package domain

import (
	"time"

	"github.com/samber/lo"
)

// ChartOptions is the caller-facing option set. Nil fields take their default.
type ChartOptions struct {
	HouseSystem   *HouseSystem
	IncludeChiron *bool
	IncludeLilith *bool
	IncludeNodes  *bool
}

// ChartSettings is ChartOptions with every default applied.
type ChartSettings struct {
	HouseSystem   HouseSystem
	IncludeChiron bool
	IncludeLilith bool
	IncludeNodes  bool
}

const DefaultHouseSystem = Placidus

// ResolveChartOptions is the only place chart defaults are applied.
//
//	HouseSystem   -> which cusps are returned (default placidus)
//	IncludeChiron -> Chiron listed by VisibleBodies (default true)
//	IncludeLilith -> Lilith and MeanLilith listed by VisibleBodies (default true)
//	IncludeNodes  -> NorthNode and SouthNode listed by VisibleBodies (default true)
//
// The Include flags never change what is computed.
func ResolveChartOptions(opts ChartOptions) ChartSettings {
	return ChartSettings{
		HouseSystem:   lo.FromPtrOr(opts.HouseSystem, DefaultHouseSystem),
		IncludeChiron: lo.FromPtrOr(opts.IncludeChiron, true),
		IncludeLilith: lo.FromPtrOr(opts.IncludeLilith, true),
		IncludeNodes:  lo.FromPtrOr(opts.IncludeNodes, true),
	}
}

// ChartData is a fully resolved chart. It is built in one piece by NewChartData and never mutated afterwards.
type ChartData struct {
	ID        string
	Timestamp time.Time
	Location  GeoCoordinates
	JulianDay float64
	Angles    Angles
	Houses    Houses
	Settings  ChartSettings
	bodies    map[Body]CelestialBody
}

func NewChartData(
	id string,
	timestamp time.Time,
	location GeoCoordinates,
	julianDay float64,
	bodies []CelestialBody,
	angles Angles,
	houses Houses,
	settings ChartSettings,
) ChartData {
	return ChartData{
		ID:        id,
		Timestamp: timestamp.UTC(),
		Location:  location,
		JulianDay: julianDay,
		Angles:    angles,
		Houses:    houses,
		Settings:  settings,
		bodies:    lo.KeyBy(bodies, func(b CelestialBody) Body { return b.Name }),
	}
}

func (c ChartData) Body(name Body) (CelestialBody, bool) {
	b, ok := c.bodies[name]
	return b, ok
}

// Bodies returns every computed body in AllBodies order.
func (c ChartData) Bodies() []CelestialBody {
	present := lo.Filter(AllBodies, func(name Body, _ int) bool {
		_, ok := c.bodies[name]
		return ok
	})
	return lo.Map(present, func(name Body, _ int) CelestialBody {
		return c.bodies[name]
	})
}

// VisibleBodies filters Bodies through the display flags of Settings.
func (c ChartData) VisibleBodies() []CelestialBody {
	return lo.Filter(c.Bodies(), func(b CelestialBody, _ int) bool {
		switch b.Name {
		case Chiron:
			return c.Settings.IncludeChiron
		case Lilith, MeanLilith:
			return c.Settings.IncludeLilith
		case NorthNode, SouthNode:
			return c.Settings.IncludeNodes
		default:
			return true
		}
	})
}

package domain

// Body names one of the fifteen points carried by every chart.
type Body string

const (
	Sun        Body = "sun"
	Moon       Body = "moon"
	Mercury    Body = "mercury"
	Venus      Body = "venus"
	Mars       Body = "mars"
	Jupiter    Body = "jupiter"
	Saturn     Body = "saturn"
	Uranus     Body = "uranus"
	Neptune    Body = "neptune"
	Pluto      Body = "pluto"
	Chiron     Body = "chiron"
	Lilith     Body = "lilith" // true (osculating) lunar apogee
	MeanLilith Body = "meanLilith"
	NorthNode  Body = "northNode" // true node
	SouthNode  Body = "southNode"
)

// TraditionalBodies are the Sun, Moon and eight planets.
var TraditionalBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// QueriedBodies are resolved from the oracle. SouthNode is always derived from NorthNode.
var QueriedBodies = append(append([]Body{}, TraditionalBodies...), Chiron, Lilith, MeanLilith, NorthNode)

// AllBodies is the display order of a chart.
var AllBodies = append(append([]Body{}, QueriedBodies...), SouthNode)

// Luminary reports whether b is the Sun or the Moon, which are never retrograde.
func (b Body) Luminary() bool {
	return b == Sun || b == Moon
}

// CelestialBody is a resolved position.
// Sign, SignDegree and Retrograde are always derived from Longitude and LongitudeSpeed.
type CelestialBody struct {
	Name           Body
	Longitude      float64 // [0,360)
	Latitude       float64
	Distance       float64 // AU
	LongitudeSpeed float64 // degrees/day
	LatitudeSpeed  float64
	DistanceSpeed  float64
	Sign           ZodiacSign
	SignDegree     float64 // [0,30)
	Retrograde     bool
}

// NewCelestialBody builds a body record from raw values, deriving the sign fields.
func NewCelestialBody(name Body, longitude, latitude, distance, lonSpeed, latSpeed, distSpeed float64) CelestialBody {
	lon := Normalize(longitude)
	return CelestialBody{
		Name:           name,
		Longitude:      lon,
		Latitude:       latitude,
		Distance:       distance,
		LongitudeSpeed: lonSpeed,
		LatitudeSpeed:  latSpeed,
		DistanceSpeed:  distSpeed,
		Sign:           SignOf(lon),
		SignDegree:     SignDegree(lon),
		Retrograde:     !name.Luminary() && lonSpeed < 0,
	}
}

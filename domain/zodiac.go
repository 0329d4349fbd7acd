// Package domain contains the value types of the chart engine.
// This file defines zodiac signs and the longitude arithmetic every other component relies on.
package domain

import "math"

type ZodiacSign int

const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// ZodiacSigns lists the signs in ecliptic order, Aries starting at 0°.
var ZodiacSigns = []ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s ZodiacSign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// Normalize maps any finite angle into [0,360).
// Non-finite input yields 0: validation rejects it upstream, this layer stays total.
func Normalize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	n := math.Mod(x, 360)
	if n < 0 {
		n += 360
	}
	// A tiny negative remainder can round up to exactly 360.
	if n >= 360 {
		return 0
	}
	return n
}

// Opposite returns the point 180° away.
func Opposite(longitude float64) float64 {
	return Normalize(longitude + 180)
}

func SignOf(longitude float64) ZodiacSign {
	idx := int(math.Floor(Normalize(longitude) / 30))
	if idx > int(Pisces) {
		idx = int(Pisces)
	}
	return ZodiacSigns[idx]
}

// SignDegree is the residual offset of longitude within its sign, in [0,30).
func SignDegree(longitude float64) float64 {
	return math.Mod(Normalize(longitude), 30)
}

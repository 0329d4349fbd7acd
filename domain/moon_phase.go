package domain

type PhaseName string

const (
	NewMoon        PhaseName = "New Moon"
	WaxingCrescent PhaseName = "Waxing Crescent"
	FirstQuarter   PhaseName = "First Quarter"
	WaxingGibbous  PhaseName = "Waxing Gibbous"
	FullMoon       PhaseName = "Full Moon"
	WaningGibbous  PhaseName = "Waning Gibbous"
	ThirdQuarter   PhaseName = "Third Quarter"
	WaningCrescent PhaseName = "Waning Crescent"
)

// MoonPhase is derived from the Sun-Moon elongation and never stored.
type MoonPhase struct {
	Angle        float64 // [0,360)
	Illumination float64 // percent, one decimal
	Name         PhaseName
}

package domain

import "time"

// ProgressionResult maps a lived age onto ephemeris time: one day after birth per year of life.
// AgeInDays always equals AgeInYears.
type ProgressionResult struct {
	BirthMoment      time.Time
	ProgressedMoment time.Time
	AgeInYears       float64
	AgeInDays        float64
}

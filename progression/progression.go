// Package progression implements secondary progressions: one day of ephemeris time after birth per year of life.
package progression

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"chart-lab/validation"
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// maxAgeYears keeps the progressed offset, one day per year, within a time.Duration.
const maxAgeYears = float64(math.MaxInt64 / int64(day))

type Calculator struct {
	clock contract.IClock
}

func NewCalculator(clock contract.IClock) *Calculator {
	if clock == nil {
		clock = contract.SystemClock{}
	}
	return &Calculator{clock: clock}
}

// Calculate progresses birth to target. Neither may lie after the calculator's clock.
func (c *Calculator) Calculate(birth, target any) (domain.ProgressionResult, error) {
	b, err := validation.ParseMoment(birth)
	if err != nil {
		return domain.ProgressionResult{}, err
	}
	t, err := validation.ParseMoment(target)
	if err != nil {
		return domain.ProgressionResult{}, err
	}
	now := c.clock.Now()
	if b.After(now) {
		return domain.ProgressionResult{}, fmt.Errorf("%w: birth %s", errors.ErrFutureMoment, b.Format(time.RFC3339))
	}
	if t.After(now) {
		return domain.ProgressionResult{}, fmt.Errorf("%w: target %s", errors.ErrFutureMoment, t.Format(time.RFC3339))
	}
	if t.Before(b) {
		return domain.ProgressionResult{}, fmt.Errorf("%w: target %s precedes birth %s",
			errors.ErrInvalidMoment, t.Format(time.RFC3339), b.Format(time.RFC3339))
	}
	return progress(b, YearsBetween(b, t)), nil
}

// FromAge progresses birth by an explicit age in years.
func (c *Calculator) FromAge(birth any, ageInYears float64) (domain.ProgressionResult, error) {
	b, err := validation.ParseMoment(birth)
	if err != nil {
		return domain.ProgressionResult{}, err
	}
	if b.After(c.clock.Now()) {
		return domain.ProgressionResult{}, fmt.Errorf("%w: birth %s", errors.ErrFutureMoment, b.Format(time.RFC3339))
	}
	if math.IsNaN(ageInYears) || math.IsInf(ageInYears, 0) || ageInYears < 0 || ageInYears >= maxAgeYears {
		return domain.ProgressionResult{}, fmt.Errorf("%w: %v", errors.ErrInvalidAge, ageInYears)
	}
	return progress(b, ageInYears), nil
}

func progress(birth time.Time, years float64) domain.ProgressionResult {
	ageInDays := years
	return domain.ProgressionResult{
		BirthMoment:      birth,
		ProgressedMoment: birth.Add(time.Duration(ageInDays * float64(day))),
		AgeInYears:       years,
		AgeInDays:        ageInDays,
	}
}

// YearsBetween counts whole calendar years from start, then adds the elapsed share of the current year.
// The fraction uses the real length of that year (365 or 366 days), not 365.25.
// A Feb 29 start is anniversaried on Mar 1 in common years.
func YearsBetween(start, end time.Time) float64 {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return -YearsBetween(end, start)
	}
	years := end.Year() - start.Year()
	anniversary := start.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
		anniversary = start.AddDate(years, 0, 0)
	}
	next := start.AddDate(years+1, 0, 0)
	fraction := float64(end.Sub(anniversary)) / float64(next.Sub(anniversary))
	return float64(years) + fraction
}

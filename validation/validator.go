// Package validation normalizes and checks moments and coordinates before any oracle call is made.
package validation

import (
	"chart-lab/domain"
	"chart-lab/errors"
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones resolve even on hosts without a zoneinfo database

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Accepted textual layouts. Layouts without an offset are read as UTC.
var momentLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Moments are bounded to the years 1 through 9999.
var (
	minMoment = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	maxMoment = time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC)
)

// ParseMoment turns an instant, a Unix epoch in milliseconds or a textual timestamp into a UTC moment.
func ParseMoment(v any) (time.Time, error) {
	switch m := v.(type) {
	case time.Time:
		return checkMoment(m)
	case *time.Time:
		if m == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", errors.ErrInvalidMoment)
		}
		return checkMoment(*m)
	case int64:
		return checkMoment(time.UnixMilli(m))
	case int:
		return checkMoment(time.UnixMilli(int64(m)))
	case float64:
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return time.Time{}, fmt.Errorf("%w: non-finite epoch", errors.ErrInvalidMoment)
		}
		ms := math.Round(m)
		if ms < float64(minMoment.UnixMilli()) || ms > float64(maxMoment.UnixMilli()) {
			return time.Time{}, fmt.Errorf("%w: epoch %v out of range", errors.ErrInvalidMoment, m)
		}
		return checkMoment(time.UnixMilli(int64(ms)))
	case string:
		return parseText(m)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", errors.ErrInvalidMoment, v)
	}
}

func parseText(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range momentLayouts {
		// time.Parse rejects out of range fields (Feb 30, hour 25), which is what makes the instant real.
		if t, err := time.Parse(layout, s); err == nil {
			return checkMoment(t)
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errors.ErrInvalidMoment, s)
}

func checkMoment(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%w: zero time", errors.ErrInvalidMoment)
	}
	if t.Before(minMoment) || t.After(maxMoment) {
		return time.Time{}, fmt.Errorf("%w: %s out of range", errors.ErrInvalidMoment, t.UTC().Format(time.RFC3339))
	}
	return t.UTC(), nil
}

// ParseLocalMoment resolves a profile tuple (date "2006-01-02", clock "15:04[:05]", IANA zone) to UTC.
// An empty zone means UTC.
func ParseLocalMoment(date, clock, timezone string) (time.Time, error) {
	loc := time.UTC
	if tz := strings.TrimSpace(timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown timezone %q", errors.ErrInvalidMoment, timezone)
		}
		loc = l
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}
	value := strings.TrimSpace(date) + " " + clock
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return checkMoment(t)
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errors.ErrInvalidMoment, value)
}

// ValidateCoordinates checks latitude in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(c domain.GeoCoordinates) (domain.GeoCoordinates, error) {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) || !isFinite(c.Altitude) {
		return domain.GeoCoordinates{}, fmt.Errorf("%w: non-finite value", errors.ErrInvalidCoordinates)
	}
	if err := validate.Struct(c); err != nil {
		return domain.GeoCoordinates{}, fmt.Errorf("%w: %v", errors.ErrInvalidCoordinates, err)
	}
	return c, nil
}

// Validate checks both inputs of a chart computation.
func Validate(moment any, location domain.GeoCoordinates) (time.Time, domain.GeoCoordinates, error) {
	t, err := ParseMoment(moment)
	if err != nil {
		return time.Time{}, domain.GeoCoordinates{}, err
	}
	loc, err := ValidateCoordinates(location)
	if err != nil {
		return time.Time{}, domain.GeoCoordinates{}, err
	}
	return t, loc, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package services

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/infrastructure/ephemeris"
	"chart-lab/progression"
	"chart-lab/resolver"
	"chart-lab/validation"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ChartService struct {
	log         *slog.Logger
	adapter     *ephemeris.Adapter
	progression *progression.Calculator
	parallelism int
}

// NewChartService wires the engine. parallelism bounds concurrent oracle queries per chart, 0 means unbounded.
func NewChartService(
	log *slog.Logger,
	adapter *ephemeris.Adapter,
	progression *progression.Calculator,
	parallelism int,
) contract.IChartService {
	return &ChartService{
		log:         log,
		adapter:     adapter,
		progression: progression,
		parallelism: parallelism,
	}
}

// Compute builds a chart for one moment and location.
// Inputs are validated before any oracle call. The chart is returned whole or not at all.
func (s *ChartService) Compute(
	ctx context.Context,
	moment any,
	location domain.GeoCoordinates,
	opts domain.ChartOptions,
) (domain.ChartData, error) {
	// 1. Resolve options and validate everything up front
	settings := domain.ResolveChartOptions(opts)
	if _, err := ephemeris.SystemCode(settings.HouseSystem); err != nil {
		return domain.ChartData{}, err
	}
	t, loc, err := validation.Validate(moment, location)
	if err != nil {
		return domain.ChartData{}, err
	}
	jd := ephemeris.JulianDay(t)
	id := uuid.NewString()
	s.log.Debug("Computing chart", "chart_id", id, "julian_day", jd, "system", settings.HouseSystem)

	// 2. Query the oracle: one call per body plus the house geometry, all independent
	positions := make([]struct {
		body domain.Body
		pos  contract.Position
	}, len(domain.QueriedBodies))
	var geometry contract.HouseGeometry

	g, gctx := errgroup.WithContext(ctx)
	if s.parallelism > 0 {
		g.SetLimit(s.parallelism)
	}
	for i, body := range domain.QueriedBodies {
		g.Go(func() error {
			p, err := s.adapter.Position(gctx, jd, body)
			if err != nil {
				return err
			}
			positions[i].body = body
			positions[i].pos = p
			return nil
		})
	}
	g.Go(func() error {
		h, err := s.adapter.Houses(gctx, jd, loc, settings.HouseSystem)
		if err != nil {
			return err
		}
		geometry = h
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Debug("Chart aborted", "chart_id", id, "error", err)
		return domain.ChartData{}, fmt.Errorf("chart %s: %w", id, err)
	}

	// 3. Resolve raw answers into the chart
	raw := make(map[domain.Body]contract.Position, len(positions))
	for _, p := range positions {
		raw[p.body] = p.pos
	}
	bodies, err := resolver.ResolveBodies(raw)
	if err != nil {
		return domain.ChartData{}, fmt.Errorf("chart %s: %w", id, err)
	}
	angles, houses, err := resolver.ResolveHouses(geometry, settings.HouseSystem)
	if err != nil {
		return domain.ChartData{}, fmt.Errorf("chart %s: %w", id, err)
	}

	return domain.NewChartData(id, t, loc, jd, bodies, angles, houses, settings), nil
}

// ProgressedChart progresses birth to target and computes the chart of the progressed moment.
func (s *ChartService) ProgressedChart(
	ctx context.Context,
	birth, target any,
	location domain.GeoCoordinates,
	opts domain.ChartOptions,
) (domain.ChartData, domain.ProgressionResult, error) {
	result, err := s.progression.Calculate(birth, target)
	if err != nil {
		return domain.ChartData{}, domain.ProgressionResult{}, err
	}
	chart, err := s.Compute(ctx, result.ProgressedMoment, location, opts)
	if err != nil {
		return domain.ChartData{}, domain.ProgressionResult{}, err
	}
	s.log.Debug("Progressed chart computed",
		"chart_id", chart.ID, "age_years", result.AgeInYears, "progressed", result.ProgressedMoment)
	return chart, result, nil
}

package services

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"chart-lab/infrastructure/ephemeris"
	"chart-lab/mocks"
	"chart-lab/progression"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	evaluationTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paris          = domain.GeoCoordinates{Latitude: 48.8566, Longitude: 2.3522, Name: "Paris"}
)

// fakePosition gives every body a distinct longitude. Mars moves backwards.
func fakePosition(_ context.Context, _ float64, body contract.BodyID, _ contract.Flag) (contract.Position, error) {
	speed := 0.5
	if body == contract.BodyMars {
		speed = -0.2
	}
	return contract.Position{
		Longitude:      float64(body)*20 + 7.5,
		Latitude:       1,
		Distance:       1,
		LongitudeSpeed: speed,
	}, nil
}

func fakeHouses(_ context.Context, _ float64, _, _ float64, _ byte) (contract.HouseGeometry, error) {
	g := contract.HouseGeometry{Ascendant: 100.25, Midheaven: 10.5}
	for i := range g.Cusps {
		g.Cusps[i] = domain.Normalize(100 + float64(i)*30)
	}
	return g, nil
}

func newService(t *testing.T) (contract.IChartService, *mocks.MockIOracle) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	oracle := mocks.NewMockIOracle(ctrl)
	clock := mocks.NewMockIClock(ctrl)
	clock.EXPECT().Now().Return(evaluationTime).AnyTimes()

	cfg := ephemeris.Config{MaxRetries: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
	adapter, err := ephemeris.NewAdapter(cfg, oracle, log)
	require.NoError(t, err)
	return NewChartService(log, adapter, progression.NewCalculator(clock), 4), oracle
}

func TestChartService_Compute(t *testing.T) {
	t.Run("should resolve fifteen bodies and the houses", func(t *testing.T) {
		req := require.New(t)
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), contract.FlagSwissEph|contract.FlagSpeed).
			DoAndReturn(fakePosition).Times(len(domain.QueriedBodies))
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), paris.Latitude, paris.Longitude, byte('K')).
			DoAndReturn(fakeHouses).Times(1)

		chart, err := svc.Compute(context.Background(), "1990-03-10T12:00:00Z", paris,
			domain.ChartOptions{HouseSystem: lo.ToPtr(domain.Koch)})
		req.NoError(err)
		req.NotEmpty(chart.ID)
		req.Equal(domain.Koch, chart.Settings.HouseSystem)
		req.Equal(domain.Koch, chart.Houses.System)
		req.InDelta(ephemeris.JulianDay(time.Date(1990, 3, 10, 12, 0, 0, 0, time.UTC)), chart.JulianDay, 1e-9)
		req.Len(chart.Bodies(), len(domain.AllBodies))

		sun, ok := chart.Body(domain.Sun)
		req.True(ok)
		req.Equal(7.5, sun.Longitude)
		req.False(sun.Retrograde)
		mars, _ := chart.Body(domain.Mars)
		req.True(mars.Retrograde)

		north, _ := chart.Body(domain.NorthNode)
		south, _ := chart.Body(domain.SouthNode)
		req.Equal(domain.Opposite(north.Longitude), south.Longitude)
		req.Equal(-north.Latitude, south.Latitude)

		req.Equal(100.25, chart.Angles.Ascendant)
		req.Equal(280.25, chart.Angles.Descendant)
		req.Equal(190.5, chart.Angles.ImumCoeli)
		req.Equal(chart.Angles.Ascendant, chart.Houses.Cusps[0])
		req.Equal(chart.Angles.Midheaven, chart.Houses.Cusps[9])
	})

	t.Run("should hide display flagged bodies without dropping them", func(t *testing.T) {
		req := require.New(t)
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakePosition).AnyTimes()
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), byte('P')).DoAndReturn(fakeHouses)

		chart, err := svc.Compute(context.Background(), time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), paris,
			domain.ChartOptions{IncludeNodes: lo.ToPtr(false), IncludeChiron: lo.ToPtr(false)})
		req.NoError(err)
		req.Len(chart.Bodies(), 15)
		req.Len(chart.VisibleBodies(), 12)
		_, ok := chart.Body(domain.SouthNode)
		req.True(ok)
	})

	t.Run("should reject invalid input before any oracle call", func(t *testing.T) {
		svc, _ := newService(t)
		tests := []struct {
			name     string
			moment   any
			location domain.GeoCoordinates
			opts     domain.ChartOptions
			want     error
		}{
			{"bad moment", "not a date", paris, domain.ChartOptions{}, errors.ErrInvalidMoment},
			{"latitude out of range", "2000-01-01", domain.GeoCoordinates{Latitude: 91}, domain.ChartOptions{}, errors.ErrInvalidCoordinates},
			{"longitude out of range", "2000-01-01", domain.GeoCoordinates{Longitude: -181}, domain.ChartOptions{}, errors.ErrInvalidCoordinates},
			{"unknown system", "2000-01-01", paris, domain.ChartOptions{HouseSystem: lo.ToPtr(domain.HouseSystem("topocentric"))}, errors.ErrUnknownHouseSystem},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Compute(context.Background(), tt.moment, tt.location, tt.opts)
				require.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("should abort the whole chart when one body fails", func(t *testing.T) {
		req := require.New(t)
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, jd float64, body contract.BodyID, flags contract.Flag) (contract.Position, error) {
				if body == contract.BodySaturn {
					return contract.Position{}, fmt.Errorf("file not found: sepl_18.se1")
				}
				return fakePosition(ctx, jd, body, flags)
			}).AnyTimes()
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakeHouses).AnyTimes()

		chart, err := svc.Compute(context.Background(), "2000-01-01", paris, domain.ChartOptions{})
		req.ErrorIs(err, errors.ErrEphemerisFailure)
		req.ErrorContains(err, string(domain.Saturn))
		req.Empty(chart.ID)
		req.Empty(chart.Bodies())
	})

	t.Run("should abort the whole chart when the houses fail", func(t *testing.T) {
		req := require.New(t)
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakePosition).AnyTimes()
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(contract.HouseGeometry{}, fmt.Errorf("polar circle")).Times(1)

		_, err := svc.Compute(context.Background(), "2000-01-01", paris, domain.ChartOptions{})
		req.ErrorIs(err, errors.ErrEphemerisFailure)
		req.ErrorContains(err, errors.TargetHouses)
	})

	t.Run("should reject a retrograde luminary", func(t *testing.T) {
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, jd float64, body contract.BodyID, flags contract.Flag) (contract.Position, error) {
				p, _ := fakePosition(ctx, jd, body, flags)
				if body == contract.BodyMoon {
					p.LongitudeSpeed = -13
				}
				return p, nil
			}).AnyTimes()
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakeHouses).AnyTimes()

		_, err := svc.Compute(context.Background(), "2000-01-01", paris, domain.ChartOptions{})
		require.ErrorIs(t, err, errors.ErrEphemerisFailure)
	})
}

func TestChartService_ProgressedChart(t *testing.T) {
	t.Run("should compute the chart of the progressed moment", func(t *testing.T) {
		req := require.New(t)
		svc, oracle := newService(t)
		oracle.EXPECT().Position(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakePosition).AnyTimes()
		oracle.EXPECT().Houses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakeHouses).Times(1)

		chart, result, err := svc.ProgressedChart(context.Background(),
			"1990-03-10T00:00:00Z", "2025-11-19T00:00:00Z", paris, domain.ChartOptions{})
		req.NoError(err)
		req.InDelta(35.696, result.AgeInYears, 0.0005)
		req.True(result.ProgressedMoment.Equal(chart.Timestamp))
		req.InDelta(ephemeris.JulianDay(result.ProgressedMoment), chart.JulianDay, 1e-9)
	})

	t.Run("should not query the oracle for a future target", func(t *testing.T) {
		svc, _ := newService(t)
		_, _, err := svc.ProgressedChart(context.Background(), "1990-03-10", "2030-01-01", paris, domain.ChartOptions{})
		require.ErrorIs(t, err, errors.ErrFutureMoment)
	})
}

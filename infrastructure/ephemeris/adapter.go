// Package ephemeris translates engine requests into oracle queries.
// It owns the time conversion, the body and house system code tables and the retry rule for transient oracle errors.
package ephemeris

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is built once per process and handed to NewAdapter.
type Config struct {
	Path            string        // ephemeris data location, informative for oracles that need files
	MaxRetries      uint64        `validate:"lte=10"`
	InitialInterval time.Duration `validate:"gte=0"`
	MaxInterval     time.Duration `validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

var houseSystemCodes = map[domain.HouseSystem]byte{
	domain.Placidus:      'P',
	domain.Koch:          'K',
	domain.Porphyrius:    'O',
	domain.Regiomontanus: 'R',
	domain.Campanus:      'C',
	domain.Equal:         'A',
	domain.WholeSign:     'W',
	domain.Meridian:      'X',
	domain.Morinus:       'M',
	domain.Alcabitus:     'B',
}

var bodyIDs = map[domain.Body]contract.BodyID{
	domain.Sun:        contract.BodySun,
	domain.Moon:       contract.BodyMoon,
	domain.Mercury:    contract.BodyMercury,
	domain.Venus:      contract.BodyVenus,
	domain.Mars:       contract.BodyMars,
	domain.Jupiter:    contract.BodyJupiter,
	domain.Saturn:     contract.BodySaturn,
	domain.Uranus:     contract.BodyUranus,
	domain.Neptune:    contract.BodyNeptune,
	domain.Pluto:      contract.BodyPluto,
	domain.Chiron:     contract.BodyChiron,
	domain.Lilith:     contract.BodyOscuApogee,
	domain.MeanLilith: contract.BodyMeanApogee,
	domain.NorthNode:  contract.BodyTrueNode,
}

const positionFlags = contract.FlagSwissEph | contract.FlagSpeed

func SystemCode(hs domain.HouseSystem) (byte, error) {
	code, ok := houseSystemCodes[hs]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errors.ErrUnknownHouseSystem, hs)
	}
	return code, nil
}

func BodyID(b domain.Body) (contract.BodyID, bool) {
	id, ok := bodyIDs[b]
	return id, ok
}

type Adapter struct {
	oracle contract.IOracle
	config Config
	log    *slog.Logger
}

func NewAdapter(config Config, oracle contract.IOracle, log *slog.Logger) (*Adapter, error) {
	if oracle == nil {
		return nil, fmt.Errorf("%w: nil oracle", errors.ErrInvalidConfig)
	}
	if log == nil {
		return nil, fmt.Errorf("%w: nil logger", errors.ErrInvalidConfig)
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if config.MaxInterval < config.InitialInterval {
		return nil, fmt.Errorf("%w: max interval %s below initial interval %s",
			errors.ErrInvalidConfig, config.MaxInterval, config.InitialInterval)
	}
	log.Debug("Ephemeris adapter ready", "path", config.Path, "max_retries", config.MaxRetries)
	return &Adapter{oracle: oracle, config: config, log: log}, nil
}

// Position queries one body. South Node has no oracle identifier and is rejected here.
func (a *Adapter) Position(ctx context.Context, jd float64, body domain.Body) (contract.Position, error) {
	id, ok := BodyID(body)
	if !ok {
		return contract.Position{}, errors.NewEphemerisFailure(string(body), fmt.Errorf("no oracle identifier"))
	}
	var pos contract.Position
	err := a.retry(ctx, string(body), func() error {
		p, err := a.oracle.Position(ctx, jd, id, positionFlags)
		if err != nil {
			return err
		}
		pos = p
		return nil
	})
	if err != nil {
		return contract.Position{}, errors.NewEphemerisFailure(string(body), err)
	}
	return pos, nil
}

func (a *Adapter) Houses(ctx context.Context, jd float64, location domain.GeoCoordinates, system domain.HouseSystem) (contract.HouseGeometry, error) {
	code, err := SystemCode(system)
	if err != nil {
		return contract.HouseGeometry{}, err
	}
	var geometry contract.HouseGeometry
	err = a.retry(ctx, errors.TargetHouses, func() error {
		g, err := a.oracle.Houses(ctx, jd, location.Latitude, location.Longitude, code)
		if err != nil {
			return err
		}
		geometry = g
		return nil
	})
	if err != nil {
		return contract.HouseGeometry{}, errors.NewEphemerisFailure(errors.TargetHouses, err)
	}
	return geometry, nil
}

// retry runs op with bounded exponential backoff, only for errors classified as transient.
func (a *Adapter) retry(ctx context.Context, target string, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = a.config.InitialInterval
	policy.MaxInterval = a.config.MaxInterval
	policy.MaxElapsedTime = 0

	operation := func() error {
		err := op()
		if err != nil && !errors.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		a.log.Warn("Transient oracle error, retrying", "target", target, "wait", wait, "error", err)
	}
	return backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, a.config.MaxRetries), ctx),
		notify,
	)
}

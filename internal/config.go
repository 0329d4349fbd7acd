package internal

import (
	"chart-lab/domain"
	"chart-lab/infrastructure/ephemeris"
	"time"
)

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	EphemerisPath        string        `env:"EPHEMERIS_PATH"`
	DefaultHouseSystem   string        `env:"DEFAULT_HOUSE_SYSTEM,default=placidus"`
	OracleMaxRetries     int           `env:"ORACLE_MAX_RETRIES,default=3"`
	OracleInitialBackoff time.Duration `env:"ORACLE_INITIAL_BACKOFF,default=50ms"`
	OracleMaxBackoff     time.Duration `env:"ORACLE_MAX_BACKOFF,default=1s"`
	OracleParallelism    int           `env:"ORACLE_PARALLELISM,default=0"`
}

// EphemerisConfig is the oracle configuration handed to ephemeris.NewAdapter once per process.
func (c Config) EphemerisConfig() ephemeris.Config {
	return ephemeris.Config{
		Path:            c.EphemerisPath,
		MaxRetries:      uint64(max(c.OracleMaxRetries, 0)),
		InitialInterval: c.OracleInitialBackoff,
		MaxInterval:     c.OracleMaxBackoff,
	}
}

func (c Config) HouseSystem() (domain.HouseSystem, error) {
	return domain.ParseHouseSystem(c.DefaultHouseSystem)
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Engine EngineConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=optiifreight"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// EngineConfig holds every pricing-policy tunable. These are deployment
// policy, deliberately kept out of the engine code so operators can
// recalibrate without a release.
type EngineConfig struct {
	// DensityThreshold is the lb/ft³ cutoff between volume-based and
	// weight-based pricing.
	DensityThreshold float64 `env:"DENSITY_THRESHOLD, default=12.5"`

	// Default rates substitute field-by-field for carriers with incomplete
	// rate schedules.
	DefaultRatePerMile      float64 `env:"DEFAULT_RATE_PER_MILE,       default=2.00"`
	DefaultRatePerCubicFoot float64 `env:"DEFAULT_RATE_PER_CUBIC_FOOT, default=0.50"`
	DefaultRatePerPound     float64 `env:"DEFAULT_RATE_PER_POUND,      default=0.10"`

	// MinTotalCharge is the post-calculation price floor per offer.
	MinTotalCharge float64 `env:"MIN_TOTAL_CHARGE, default=200"`

	// AvgSpeedMph feeds the transit time estimate.
	AvgSpeedMph float64 `env:"AVG_SPEED_MPH, default=50"`

	// QuoteCacheTTL bounds how long a ranked result may be replayed.
	QuoteCacheTTL time.Duration `env:"QUOTE_CACHE_TTL, default=5m"`

	// AuditWorkers sizes the async audit dispatcher pool.
	AuditWorkers int `env:"AUDIT_WORKERS, default=8"`

	// Scoring selects and weights the offer ranking strategy.
	ScoringStrategy     string  `env:"SCORING_STRATEGY,      default=weighted"`
	ScoringPriceWeight  float64 `env:"SCORING_PRICE_WEIGHT,  default=1.0"`
	ScoringRatingWeight float64 `env:"SCORING_RATING_WEIGHT, default=25"`
	ScoringTenureWeight float64 `env:"SCORING_TENURE_WEIGHT, default=5"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

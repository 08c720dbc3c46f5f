package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// AuthServiceConfig holds the configuration for the auth service.
type AuthServiceConfig struct {
	HTTPPort      int    `env:"HTTP_PORT"      envDefault:"8081"`
	HealthPort    int    `env:"HEALTH_PORT"    envDefault:"9081"`
	AdvertiseAddr string `env:"ADVERTISE_ADDR" envDefault:"127.0.0.1"`

	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"shopping_mall_auth"`

	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	ConsulAddr string `env:"CONSUL_ADDR" envDefault:"localhost:8500"`

	// VerificationCodeTTL bounds how long an issued password-reset code stays
	// redeemable. Single-use consumption is enforced independently of the TTL.
	VerificationCodeTTL time.Duration `env:"VERIFICATION_CODE_TTL" envDefault:"5m"`

	Token TokenConfig `envPrefix:"TOKEN_"`
}

// TokenConfig holds the JWT signing configuration.
type TokenConfig struct {
	Issuer                string        `env:"ISSUER"             envDefault:"shopping-mall-api"`
	AccessTokenSecret     string        `env:"ACCESS_SECRET,required"`
	AccessTokenExpiresIn  time.Duration `env:"ACCESS_EXPIRES_IN"  envDefault:"15m"`
	RefreshTokenSecret    string        `env:"REFRESH_SECRET,required"`
	RefreshTokenExpiresIn time.Duration `env:"REFRESH_EXPIRES_IN" envDefault:"720h"`
}

// NewAuthServiceConfig creates an AuthServiceConfig from environment variables.
func NewAuthServiceConfig(logger *zerolog.Logger) *AuthServiceConfig {
	cfg, err := env.ParseAs[AuthServiceConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

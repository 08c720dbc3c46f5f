package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// UserServiceConfig holds the configuration for the user service.
type UserServiceConfig struct {
	HTTPPort      int    `env:"HTTP_PORT"      envDefault:"8082"`
	HealthPort    int    `env:"HEALTH_PORT"    envDefault:"9082"`
	AdvertiseAddr string `env:"ADVERTISE_ADDR" envDefault:"127.0.0.1"`

	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"shopping_mall_user"`

	ConsulAddr string `env:"CONSUL_ADDR" envDefault:"localhost:8500"`

	MileageServiceURL string `env:"MILEAGE_SERVICE_URL" envDefault:"http://localhost:8083"`

	Token TokenConfig `envPrefix:"TOKEN_"`
}

// TokenConfig holds what the service needs to validate access tokens issued
// by the auth service.
type TokenConfig struct {
	Issuer            string `env:"ISSUER" envDefault:"shopping-mall-api"`
	AccessTokenSecret string `env:"ACCESS_SECRET,required"`
}

// NewUserServiceConfig creates a UserServiceConfig from environment variables.
func NewUserServiceConfig(logger *zerolog.Logger) *UserServiceConfig {
	cfg, err := env.ParseAs[UserServiceConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

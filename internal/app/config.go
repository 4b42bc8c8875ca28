package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	StateKey  string `envconfig:"STORE_STATE_KEY" default:"erp_demo_v1"`
	AuthKey   string `envconfig:"STORE_AUTH_KEY" default:"erp_auth_v1"`

	GeocoderURL     string `envconfig:"GEOCODER_URL" default:"https://nominatim.openstreetmap.org"`
	GeocoderCountry string `envconfig:"GEOCODER_COUNTRY" default:"mx"`

	// Dealership coordinates, the origin for every distance estimate.
	OriginLat float64 `envconfig:"ORIGIN_LAT" default:"20.6736"`
	OriginLng float64 `envconfig:"ORIGIN_LNG" default:"-103.3440"`

	ShippingBaseCost  float64 `envconfig:"SHIPPING_BASE_COST" default:"350"`
	ShippingCostPerKm float64 `envconfig:"SHIPPING_COST_PER_KM" default:"18"`
	DefaultTaxPercent float64 `envconfig:"DEFAULT_TAX_PERCENT" default:"16"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

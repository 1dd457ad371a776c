package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Pricing PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUICKBITE_APP_ENV" required:"true"`
	Port         string `envconfig:"QUICKBITE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUICKBITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUICKBITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	CookieName string `envconfig:"QUICKBITE_SESSION_COOKIE" default:"qb_session"`
	CookiePath string `envconfig:"QUICKBITE_SESSION_COOKIE_PATH" default:"/"`
	MaxAgeSecs int    `envconfig:"QUICKBITE_SESSION_MAX_AGE_SECS" default:"86400"`
}

// PricingConfig carries the checkout formula constants. Defaults mirror the
// storefront's published fee schedule.
type PricingConfig struct {
	TaxRate       decimal.Decimal `envconfig:"QUICKBITE_TAX_RATE" default:"0.08"`
	DeliveryFee   decimal.Decimal `envconfig:"QUICKBITE_DELIVERY_FEE" default:"3.99"`
	PromoCode     string          `envconfig:"QUICKBITE_PROMO_CODE" default:"WELCOME"`
	PromoDiscount decimal.Decimal `envconfig:"QUICKBITE_PROMO_DISCOUNT" default:"5"`
}

func (p PricingConfig) validate() error {
	if p.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative")
	}
	if p.DeliveryFee.IsNegative() {
		return fmt.Errorf("delivery fee cannot be negative")
	}
	if p.PromoDiscount.IsNegative() {
		return fmt.Errorf("promo discount cannot be negative")
	}
	if strings.TrimSpace(p.PromoCode) == "" {
		return fmt.Errorf("promo code cannot be blank")
	}
	return nil
}

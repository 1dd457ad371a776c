package config

// EnvPrefix is passed to envconfig; individual keys carry the full prefix in
// their tags so the prefix itself stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv        = "QUICKBITE_APP_ENV"
	EnvPort          = "QUICKBITE_APP_PORT"
	EnvLogLevel      = "QUICKBITE_LOG_LEVEL"
	EnvTaxRate       = "QUICKBITE_TAX_RATE"
	EnvDeliveryFee   = "QUICKBITE_DELIVERY_FEE"
	EnvPromoCode     = "QUICKBITE_PROMO_CODE"
	EnvPromoDiscount = "QUICKBITE_PROMO_DISCOUNT"
)

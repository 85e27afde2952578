package config

// EnvPrefix is passed to envconfig; explicit envconfig tags on every
// field keep the variable names stable regardless of struct layout.
const EnvPrefix = "BASKETLINE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                 = "BASKETLINE_APP_ENV"
	EnvPort                   = "BASKETLINE_APP_PORT"
	EnvDBDSN                  = "BASKETLINE_DB_DSN"
	EnvDBHost                 = "BASKETLINE_DB_HOST"
	EnvDBUser                 = "BASKETLINE_DB_USER"
	EnvDBName                 = "BASKETLINE_DB_NAME"
	EnvRedisURL               = "BASKETLINE_REDIS_URL"
	EnvJWTSecret              = "BASKETLINE_JWT_SECRET"
	EnvJWTIssuer              = "BASKETLINE_JWT_ISSUER"
	EnvJWTExpMins             = "BASKETLINE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "BASKETLINE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

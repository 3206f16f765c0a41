package config

// EnvPrefix scopes every environment variable consumed by envconfig.
const EnvPrefix = "BELLAVITTA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "BELLAVITTA_DB_DSN"
	EnvDBHost = "BELLAVITTA_DB_HOST"
	EnvDBUser = "BELLAVITTA_DB_USER"
	EnvDBName = "BELLAVITTA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

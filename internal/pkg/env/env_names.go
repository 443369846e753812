package env

const (
	EnvHttpPort = "HTTP_PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvDatabaseHost       = "DB_HOST"
	EnvDatabasePort       = "DB_PORT"
	EnvDatabaseUser       = "DB_USER"
	EnvDatabasePassword   = "DB_PASSWORD"
	EnvDatabaseName       = "DB_NAME"
	EnvDatabaseSSLEnabled = "DB_SSL_ENABLED"

	EnvJwtSecret = "JWT_SECRET"
)

package constants

// viper keys
const (
	ViperAppEnv = "app.env"

	ViperServerPort        = "server.port"
	ViperServerCORSOrigins = "server.cors_origins"

	ViperDBDriver   = "database.driver"
	ViperDBHost     = "database.host"
	ViperDBPort     = "database.port"
	ViperDBUser     = "database.username"
	ViperDBPassword = "database.password"
	ViperDBName     = "database.name"
	ViperDBDSN      = "database.dsn"
	ViperDBRetries  = "database.connect_retries"
	ViperDBSchema   = "database.schema"
	ViperDBInit     = "database.init_script"

	ViperLogLevel  = "logging.level"
	ViperLogFormat = "logging.format"
	ViperLogOutput = "logging.output"

	ViperDashboardAPIURL   = "dashboard.api_url"
	ViperDashboardUnits    = "dashboard.coverage_units"
	ViperDashboardCap      = "dashboard.coverage_cap"
	ViperDashboardTopN     = "dashboard.top_n"
	ViperDashboardTimezone = "dashboard.timezone"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	CtxKeyRequestID = "request_id"
)

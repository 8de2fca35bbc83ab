// Package config loads the service configuration from defaults, an optional config
// file, a .env file and the process environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/store/xpgx"
)

type Config struct {
	App       App       `mapstructure:"app"`
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Logging   Logging   `mapstructure:"logging"`
	Dashboard Dashboard `mapstructure:"dashboard"`
}

type App struct {
	Env string `mapstructure:"env"`
}

type Server struct {
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type Database struct {
	Driver         string `mapstructure:"driver"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	DSN            string `mapstructure:"dsn"`
	Schema         string `mapstructure:"schema"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
	// InitScript is a SQL file run against sqlite databases on startup.
	InitScript string `mapstructure:"init_script"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type Dashboard struct {
	APIURL        string `mapstructure:"api_url"`
	CoverageUnits int    `mapstructure:"coverage_units"`
	CoverageCap   int    `mapstructure:"coverage_cap"`
	TopN          int    `mapstructure:"top_n"`
	Timezone      string `mapstructure:"timezone"`
}

var envNames = map[string][]string{
	constants.ViperAppEnv:     {"APP_ENV", "NODE_ENV"},
	constants.ViperServerPort: {"PORT"},
	constants.ViperDBHost:     {"DB_HOST"},
	constants.ViperDBPort:     {"DB_PORT"},
	constants.ViperDBUser:     {"DB_USERNAME"},
	constants.ViperDBPassword: {"DB_PASSWORD"},
	constants.ViperDBName:     {"DB_DATABASE"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperAppEnv, "development")
	v.SetDefault(constants.ViperServerPort, 3001)
	v.SetDefault(constants.ViperServerCORSOrigins, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperDBDriver, constants.DriverPostgres)
	v.SetDefault(constants.ViperDBHost, "localhost")
	v.SetDefault(constants.ViperDBPort, 5442)
	v.SetDefault(constants.ViperDBUser, "postgres")
	v.SetDefault(constants.ViperDBPassword, "")
	v.SetDefault(constants.ViperDBName, "pro_gerencia")
	v.SetDefault(constants.ViperDBDSN, "file:gerencia.db")
	v.SetDefault(constants.ViperDBSchema, "report")
	v.SetDefault(constants.ViperDBRetries, 5)
	v.SetDefault(constants.ViperDBInit, "")
	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogFormat, "console")
	v.SetDefault(constants.ViperLogOutput, "stdout")
	v.SetDefault(constants.ViperDashboardAPIURL, "http://localhost:3001/api")
	v.SetDefault(constants.ViperDashboardUnits, 33)
	v.SetDefault(constants.ViperDashboardCap, 10)
	v.SetDefault(constants.ViperDashboardTopN, 8)
	v.SetDefault(constants.ViperDashboardTimezone, "America/Bogota")
}

// Load reads the configuration. file may be empty. A missing .env file is not an
// error.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envNames {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("BindEnv %s: %w", key, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case constants.DriverPostgres:
	case constants.DriverSQLite:
		c.Database.Schema = ""
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Dashboard.CoverageCap <= 0 || c.Dashboard.CoverageUnits <= 0 {
		return fmt.Errorf("coverage units and cap must be positive, got %d x %d",
			c.Dashboard.CoverageUnits, c.Dashboard.CoverageCap)
	}
	return nil
}

// DataSource returns the connection string of the configured driver.
func (d Database) DataSource() string {
	if d.Driver == constants.DriverSQLite {
		return d.DSN
	}
	return xpgx.DSN(d.Host, d.Port, d.Username, d.Password, d.Name)
}

func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string `mapstructure:"-"`
		AppName      string `mapstructure:"app_name"`
		Build        string `mapstructure:"build"`
		Debug        bool   `mapstructure:"debug"`
		TestMode     bool   `mapstructure:"test_mode"`
		SecretKey    string `mapstructure:"secret_key"`
		RollbarToken string `mapstructure:"rollbar_token"`

		Server   ServerConfig   `mapstructure:"server"`
		Auth     AuthConfig     `mapstructure:"auth"`
		Database DatabaseConfig `mapstructure:"database"`
		Log      LogConfig      `mapstructure:"log"`
	}

	ServerConfig struct {
		Address         string        `mapstructure:"address"`
		Host            string        `mapstructure:"host"`
		DebugHost       string        `mapstructure:"debug_host"` // empty disables the debug server
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		DisableReqLogs  bool          `mapstructure:"disable_req_logs"`
	}

	AuthConfig struct {
		TokenMode          string        `mapstructure:"token_mode"` // placeholder | jwt
		PlaceholderToken   string        `mapstructure:"placeholder_token"`
		DefaultRole        string        `mapstructure:"default_role"`
		JWTExpirationDelta time.Duration `mapstructure:"jwt_expiration_delta"`
	}

	DatabaseConfig struct {
		Engine       string `mapstructure:"engine"` // inmem | sqlite3 | postgres | redis
		DSN          string `mapstructure:"dsn"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
	}

	LogConfig struct {
		Level  string `mapstructure:"level"`
		Pretty bool   `mapstructure:"pretty"`
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", true)
	v.SetDefault("test_mode", false)
	v.SetDefault("app_name", "LMS")
	v.SetDefault("build", "develop")
	v.SetDefault("secret_key", "x9t!l3m$-q0c^8rz=kd2(ouw)v&h7#e1_lms+ay6b*pn4jf")
	v.SetDefault("rollbar_token", "")

	v.SetDefault("server.address", ":3002")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debug_host", "")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.disable_req_logs", false)

	v.SetDefault("auth.token_mode", TokenModePlaceholder)
	v.SetDefault("auth.placeholder_token", "jwt_token_here")
	v.SetDefault("auth.default_role", "student")
	v.SetDefault("auth.jwt_expiration_delta", 7*24*time.Hour)

	v.SetDefault("database.engine", EngineInMem)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Token modes
const (
	TokenModePlaceholder = "placeholder"
	TokenModeJWT         = "jwt"
)

// Storage engines
const (
	EngineInMem    = "inmem"
	EngineSQLite   = "sqlite3"
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
)

// NewConfig loads the configuration of the current environment.
// ENV selects it: DEV (local; default), TEST, QA, PROD.
// Values come from defaults, then `config/.env.<env>` (if present), then the environment
// (e.g. DEV_SERVER_ADDRESS). PORT, when set, overrides the port of server.address.
func NewConfig() (*Config, error) {
	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	v := viper.New()
	setDefaults(v)
	if env == "TEST" {
		v.SetDefault("test_mode", true)
		v.SetDefault("server.disable_req_logs", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	conf.Env = env

	if port := os.Getenv("PORT"); port != "" {
		conf.Server.Address = ":" + port
	}
	return conf, nil
}

// NewTestConfig returns the defaults with test mode on; nothing is read from the environment.
func NewTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	v.Set("debug", false)
	v.Set("test_mode", true)
	v.Set("server.disable_req_logs", true)

	conf := new(Config)
	_ = v.Unmarshal(conf)
	conf.Env = "TEST"
	return conf
}

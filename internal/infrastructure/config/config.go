package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/corycamp/support-ticket-backend/internal/shared/config"
)

const envPrefix = "SUPPORTDESK"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
}

// Load reads configs/config.yaml (or configPath when given) and the
// environment. A missing config file is not an error; defaults cover every
// setting.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindLegacyEnv keeps the unprefixed variable names working.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"database.url":                  "DATABASE_URL",
		"auth.jwt.secret":               "SECRET_KEY",
		"server.app_name":               "APP_NAME",
		"server.debug":                  "DEBUG",
		"storage.backend":               "STORAGE_BACKEND",
		"redis.enabled":                 "REDIS_ENABLED",
		"auth.enabled":                  "AUTH_ENABLED",
		"email.smtp_host":               "SMTP_HOST",
		"logger.level":                  "LOG_LEVEL",
		"server.timezone":               "TZ_NAME",
		"ratelimit.requests_per_minute": "RATE_LIMIT_PER_MINUTE",
	}
	for key, legacy := range bindings {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", legacy, err)
		}
	}
	return nil
}

func (c *Config) applyDerived() {
	if c.Server.Debug {
		c.Server.Mode = "debug"
	}
	// A database URL with no explicit backend means the database is wanted.
	if c.Storage.Backend == "" {
		if c.Database.URL != "" {
			c.Storage.Backend = sharedConfig.BackendDatabase
		} else {
			c.Storage.Backend = sharedConfig.BackendMemory
		}
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case sharedConfig.BackendMemory, sharedConfig.BackendDatabase:
	default:
		return fmt.Errorf("invalid storage.backend %q: want memory or database", c.Storage.Backend)
	}
	switch c.Database.MigrationStrategy {
	case sharedConfig.MigrationAuto, sharedConfig.MigrationGoose, sharedConfig.MigrationGolangMigrate:
	default:
		return fmt.Errorf("invalid database.migration_strategy %q", c.Database.MigrationStrategy)
	}
	if c.Auth.Enabled && c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required when auth is enabled")
	}
	for i, acct := range c.Auth.Accounts {
		if acct.Username == "" || acct.PasswordHash == "" {
			return fmt.Errorf("auth.accounts[%d] needs username and password_hash", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.app_name", "Support Ticket Backend")
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// storage.backend is derived when unset, see applyDerived.
	v.SetDefault("storage.fallback_to_memory", false)

	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.path", "./supportdesk.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "supportdesk")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", sharedConfig.MigrationAuto)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 30)

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@supportdesk.local")
	v.SetDefault("email.from_name", "Support Desk")
	v.SetDefault("email.notify_address", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.requests_per_minute", 20)
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Events  EventsConfig  `mapstructure:"events"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	Mode      string `mapstructure:"mode"`
	StaticDir string `mapstructure:"static_dir"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Secure     bool          `mapstructure:"secure"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EventsConfig controls the optional purchase event publisher. An empty
// AMQPURL disables publishing.
type EventsConfig struct {
	AMQPURL string `mapstructure:"amqp_url"`
	Queue   string `mapstructure:"queue"`
}

// MinSecretLength is the shortest session secret Validate accepts.
const MinSecretLength = 16

// Load reads configuration from path, or from the default search locations
// when path is empty. Environment variables prefixed with GEARSHOP_ override
// file values; a .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./deploy/")
		v.AddConfigPath("./")
		v.AddConfigPath("$HOME/.gearshop/")
		v.AddConfigPath("/etc/gearshop/")
	}

	v.SetEnvPrefix("GEARSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.static_dir", "")

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "gearshop_session")
	v.SetDefault("session.max_age", 7*24*time.Hour)
	v.SetDefault("session.secure", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("events.amqp_url", "")
	v.SetDefault("events.queue", "purchases")
}

// Validate reports the first missing or malformed required setting.
func (c *Config) Validate() error {
	if c.DB.DSN == "" {
		return errors.New("db.dsn is required")
	}
	if len(c.Session.Secret) < MinSecretLength {
		return fmt.Errorf("session.secret must be at least %d bytes", MinSecretLength)
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name must not be empty")
	}
	return nil
}

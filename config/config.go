package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	Messaging  Messaging
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	MetricsPort string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	EventChannel string
}

// Messaging holds the policy knobs for the key directory and the relay.
type Messaging struct {
	ProtocolVersion      int
	MaxOneTimePreKeys    int
	LowPreKeyWatermark   int
	RequireOneTimePreKey bool

	SignedPreKeyMaxAge  time.Duration
	UsedPreKeyRetention time.Duration
	DeviceRetention     time.Duration
	DeletedRetention    time.Duration
	SweepInterval       time.Duration
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Messaging.ProtocolVersion == 0 {
		c.Messaging.ProtocolVersion = 1
	}
	if c.Messaging.MaxOneTimePreKeys == 0 {
		c.Messaging.MaxOneTimePreKeys = 100
	}
	if c.Messaging.LowPreKeyWatermark == 0 {
		c.Messaging.LowPreKeyWatermark = 20
	}
	if c.Messaging.SignedPreKeyMaxAge == 0 {
		c.Messaging.SignedPreKeyMaxAge = 30 * 24 * time.Hour
	}
	if c.Messaging.UsedPreKeyRetention == 0 {
		c.Messaging.UsedPreKeyRetention = 30 * 24 * time.Hour
	}
	if c.Messaging.DeviceRetention == 0 {
		c.Messaging.DeviceRetention = 90 * 24 * time.Hour
	}
	if c.Messaging.DeletedRetention == 0 {
		c.Messaging.DeletedRetention = 30 * 24 * time.Hour
	}
	if c.Messaging.SweepInterval == 0 {
		c.Messaging.SweepInterval = time.Hour
	}
}
